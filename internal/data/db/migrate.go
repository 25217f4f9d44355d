package db

import (
	types "github.com/yungbote/englishai-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},

		&types.Lesson{},
		&types.VocabularyItem{},
		&types.Question{},
		&types.UserAnswer{},
	)
}
