package learning

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error)
	// GetByID loads the lesson with vocabulary and questions in insertion order.
	// Returns gorm.ErrRecordNotFound when absent.
	GetByID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) (*types.Lesson, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	repoLog := baseLog.With("repo", "LessonRepo")
	return &lessonRepo{db: db, log: repoLog}
}

func (r *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(lessons) == 0 {
		return []*types.Lesson{}, nil
	}
	if err := transaction.WithContext(ctx).Omit("VocabularyItems", "Questions").Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) (*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var l types.Lesson
	if err := transaction.WithContext(ctx).
		Preload("VocabularyItems", insertionOrder).
		Preload("Questions", insertionOrder).
		Where("id = ?", lessonID).
		First(&l).Error; err != nil {
		return nil, err
	}
	if l.VocabularyItems == nil {
		l.VocabularyItems = []types.VocabularyItem{}
	}
	if l.Questions == nil {
		l.Questions = []types.Question{}
	}
	return &l, nil
}

func (r *lessonRepo) DeleteByID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", lessonID).
		Delete(&types.Lesson{}).Error
}
