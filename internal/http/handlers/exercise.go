package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/englishai-backend/internal/http/response"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/services"
)

type ExerciseHandler struct {
	exerciseService services.ExerciseService
}

func NewExerciseHandler(exerciseService services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// GenerateExercise answers with the stored exercises and how many generated items were
// dropped, so the list can be shorter than num_questions.
func (eh *ExerciseHandler) GenerateExercise(c *gin.Context) {
	var req struct {
		Topic        string `json:"topic" binding:"required"`
		Level        string `json:"level" binding:"required"`
		ExerciseType string `json:"exercise_type" binding:"required"`
		NumQuestions int    `json:"num_questions" binding:"required"`
		Context      string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
		return
	}
	res, err := eh.exerciseService.GenerateExercises(c.Request.Context(), services.ExerciseRequest{
		Topic:        req.Topic,
		Level:        req.Level,
		ExerciseType: req.ExerciseType,
		NumQuestions: req.NumQuestions,
		Context:      req.Context,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"exercises": res.Exercises, "skipped": res.Skipped})
}

func (eh *ExerciseHandler) GenerateTest(c *gin.Context) {
	text, err := eh.exerciseService.GenerateTestText(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"generated_text": text})
}
