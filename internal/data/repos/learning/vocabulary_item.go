package learning

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type VocabularyItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.VocabularyItem) ([]*types.VocabularyItem, error)
	GetByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uuid.UUID) ([]*types.VocabularyItem, error)
}

type vocabularyItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVocabularyItemRepo(db *gorm.DB, baseLog *logger.Logger) VocabularyItemRepo {
	repoLog := baseLog.With("repo", "VocabularyItemRepo")
	return &vocabularyItemRepo{db: db, log: repoLog}
}

func (r *vocabularyItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.VocabularyItem) ([]*types.VocabularyItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(items) == 0 {
		return []*types.VocabularyItem{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *vocabularyItemRepo) GetByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uuid.UUID) ([]*types.VocabularyItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.VocabularyItem
	if len(lessonIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Scopes(insertionOrder).
		Where("lesson_id IN ?", lessonIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
