package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabularyItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID      uuid.UUID `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Index         int       `gorm:"column:index;not null" json:"index"`
	Word          string    `gorm:"column:word;not null" json:"word"`
	PhoneticGuide *string   `gorm:"column:phonetic_guide" json:"phonetic_guide"`
	Translation   *string   `gorm:"column:translation" json:"translation"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (VocabularyItem) TableName() string { return "vocabulary_item" }

func (v *VocabularyItem) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
