package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson is an AI generated reading passage. Its vocabulary items and comprehension
// questions are removed with it.
type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Level       string    `gorm:"column:level;not null;index" json:"level"`
	Topic       string    `gorm:"column:topic;not null;index" json:"topic"`
	TextPassage string    `gorm:"column:text_passage;type:text;not null" json:"text_passage"`

	VocabularyItems []VocabularyItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"vocabulary_items"`
	Questions       []Question       `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"questions"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Lesson) TableName() string { return "lesson" }

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
