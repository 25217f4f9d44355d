package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/englishai-backend/internal/data/repos"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type Repos struct {
	User           repos.UserRepo
	Lesson         repos.LessonRepo
	VocabularyItem repos.VocabularyItemRepo
	Question       repos.QuestionRepo
	UserAnswer     repos.UserAnswerRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		Lesson:         repos.NewLessonRepo(db, log),
		VocabularyItem: repos.NewVocabularyItemRepo(db, log),
		Question:       repos.NewQuestionRepo(db, log),
		UserAnswer:     repos.NewUserAnswerRepo(db, log),
	}
}
