package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types persisted in question_type.
const (
	QuestionTypeComprehension = "comprehension_mcq"
)

// Question is a multiple choice item. LessonID is nil for standalone grammar exercises.
// Membership of CorrectOption in Options is checked before insert, not by the table.
type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID      *uuid.UUID                  `gorm:"type:uuid;index" json:"lesson_id"`
	Index         int                         `gorm:"column:index;not null;default:0" json:"index"`
	QuestionText  string                      `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Options       datatypes.JSONSlice[string] `gorm:"column:options;not null" json:"options"`
	CorrectOption string                      `gorm:"column:correct_option;not null" json:"correct_option"`
	QuestionType  *string                     `gorm:"column:question_type;index" json:"question_type"`
	CreatedAt     time.Time                   `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Question) TableName() string { return "question" }

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
