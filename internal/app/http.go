package app

import (
	httpserver "github.com/yungbote/englishai-backend/internal/http"
	httpH "github.com/yungbote/englishai-backend/internal/http/handlers"
	httpMW "github.com/yungbote/englishai-backend/internal/http/middleware"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Exercise *httpH.ExerciseHandler
	Lesson   *httpH.LessonHandler
	Quiz     *httpH.QuizHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		User:     httpH.NewUserHandler(services.User),
		Exercise: httpH.NewExerciseHandler(services.Exercise),
		Lesson:   httpH.NewLessonHandler(services.Lesson),
		Quiz:     httpH.NewQuizHandler(services.Quiz),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *httpserver.Server {
	return httpserver.NewServer(cfg.Addr(), httpserver.RouterConfig{
		Log:             log,
		ServiceName:     cfg.Otel.ServiceName,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		UserHandler:     handlers.User,
		ExerciseHandler: handlers.Exercise,
		LessonHandler:   handlers.Lesson,
		QuizHandler:     handlers.Quiz,
	})
}
