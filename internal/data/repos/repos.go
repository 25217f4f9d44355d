package repos

import (
	"github.com/yungbote/englishai-backend/internal/data/repos/learning"
	"github.com/yungbote/englishai-backend/internal/data/repos/user"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type LessonRepo = learning.LessonRepo
type VocabularyItemRepo = learning.VocabularyItemRepo
type QuestionRepo = learning.QuestionRepo
type UserAnswerRepo = learning.UserAnswerRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return learning.NewLessonRepo(db, baseLog)
}

func NewVocabularyItemRepo(db *gorm.DB, baseLog *logger.Logger) VocabularyItemRepo {
	return learning.NewVocabularyItemRepo(db, baseLog)
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return learning.NewQuestionRepo(db, baseLog)
}

func NewUserAnswerRepo(db *gorm.DB, baseLog *logger.Logger) UserAnswerRepo {
	return learning.NewUserAnswerRepo(db, baseLog)
}
