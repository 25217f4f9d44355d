package app

import (
	"fmt"

	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"github.com/yungbote/englishai-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Exercise services.ExerciseService
	Lesson   services.LessonService
	Quiz     services.QuizService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log, repos.User, services.AuthConfig{
		JWTSecretKey: cfg.Auth.JWTSecretKey,
		AccessTTL:    cfg.Auth.AccessTokenTTL,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	ai := services.NewAIClient(clients.AI, cfg.AI.Timeout, log)

	var lessonCache services.LessonCache
	if clients.LessonCache != nil {
		lessonCache = services.NewRedisLessonCache(clients.LessonCache)
	}

	return Services{
		Auth:     auth,
		User:     services.NewUserService(log, repos.User),
		Exercise: services.NewExerciseService(log, ai, repos.Question),
		Lesson:   services.NewLessonService(log, ai, repos.Lesson, repos.VocabularyItem, repos.Question, lessonCache),
		Quiz:     services.NewQuizService(log, repos.Question, repos.UserAnswer),
	}, nil
}
