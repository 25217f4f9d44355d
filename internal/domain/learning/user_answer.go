package learning

import (
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/englishai-backend/internal/domain/user"
	"gorm.io/gorm"
)

// UserAnswer is append-only. IsCorrect is fixed at write time.
type UserAnswer struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	QuestionID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"question_id"`
	Question       *Question  `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuestionID;references:ID" json:"-"`
	SelectedOption string     `gorm:"column:selected_option;not null" json:"selected_option"`
	IsCorrect      bool       `gorm:"column:is_correct;not null" json:"is_correct"`
	AnsweredAt     time.Time  `gorm:"column:answered_at;not null;autoCreateTime" json:"answered_at"`
}

func (UserAnswer) TableName() string { return "user_answer" }

func (a *UserAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
