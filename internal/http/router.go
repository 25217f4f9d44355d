package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/englishai-backend/internal/http/handlers"
	httpMW "github.com/yungbote/englishai-backend/internal/http/middleware"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	UserHandler    *httpH.UserHandler

	ExerciseHandler *httpH.ExerciseHandler
	LessonHandler   *httpH.LessonHandler
	QuizHandler     *httpH.QuizHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "englishai-backend"
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log.With("component", "http")))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Auth (public)
	if cfg.AuthHandler != nil {
		r.POST("/register", cfg.AuthHandler.Register)
		r.POST("/token", cfg.AuthHandler.Token)
	}

	// Generation (public)
	if cfg.ExerciseHandler != nil {
		r.POST("/generate-test", cfg.ExerciseHandler.GenerateTest)
		r.POST("/generate/exercise", cfg.ExerciseHandler.GenerateExercise)
	}
	if cfg.LessonHandler != nil {
		r.POST("/lessons", cfg.LessonHandler.CreateLesson)
		r.GET("/lessons/:id", cfg.LessonHandler.GetLesson)
	}

	protected := r.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/users/me", cfg.UserHandler.GetMe)
		}

		// Quiz
		if cfg.QuizHandler != nil {
			protected.POST("/submit-answers", cfg.QuizHandler.SubmitAnswers)
		}
	}

	return r
}
