package domain

import (
	"github.com/yungbote/englishai-backend/internal/domain/learning"
	"github.com/yungbote/englishai-backend/internal/domain/user"
)

const QuestionTypeComprehension = learning.QuestionTypeComprehension

type (
	User = user.User

	Lesson         = learning.Lesson
	VocabularyItem = learning.VocabularyItem
	Question       = learning.Question
	UserAnswer     = learning.UserAnswer
)
