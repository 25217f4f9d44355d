package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/englishai-backend/internal/http/response"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/services"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

func (lh *LessonHandler) CreateLesson(c *gin.Context) {
	var req struct {
		Topic         string `json:"topic" binding:"required"`
		Level         string `json:"level" binding:"required"`
		NumQuestions  int    `json:"num_questions"`
		NumVocabulary int    `json:"num_vocabulary"`
		Context       string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
		return
	}
	res, err := lh.lessonService.GenerateLesson(c.Request.Context(), services.LessonRequest{
		Topic:         req.Topic,
		Level:         req.Level,
		NumQuestions:  req.NumQuestions,
		NumVocabulary: req.NumVocabulary,
		Context:       req.Context,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, res.Lesson)
}

// GetLesson treats an unparsable id like a missing lesson.
func (lh *LessonHandler) GetLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, apierr.NotFound("Lesson not found"))
		return
	}
	lesson, err := lh.lessonService.GetLesson(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, lesson)
}
