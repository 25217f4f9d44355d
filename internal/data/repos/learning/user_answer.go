package learning

import (
	"context"

	"github.com/google/uuid"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserAnswerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, answers []*types.UserAnswer) ([]*types.UserAnswer, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserAnswer, error)
}

type userAnswerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserAnswerRepo(db *gorm.DB, baseLog *logger.Logger) UserAnswerRepo {
	repoLog := baseLog.With("repo", "UserAnswerRepo")
	return &userAnswerRepo{db: db, log: repoLog}
}

func (r *userAnswerRepo) Create(ctx context.Context, tx *gorm.DB, answers []*types.UserAnswer) ([]*types.UserAnswer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(answers) == 0 {
		return []*types.UserAnswer{}, nil
	}
	if err := transaction.WithContext(ctx).Omit("User", "Question").Create(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *userAnswerRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserAnswer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.UserAnswer
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("answered_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
