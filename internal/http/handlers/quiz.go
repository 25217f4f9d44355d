package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/englishai-backend/internal/http/response"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/services"
)

type QuizHandler struct {
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (qh *QuizHandler) SubmitAnswers(c *gin.Context) {
	var req struct {
		Answers []struct {
			QuestionID     uuid.UUID `json:"question_id"`
			SelectedOption string    `json:"selected_option"`
		} `json:"answers" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
		return
	}
	answers := make([]services.AnswerSubmission, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, services.AnswerSubmission{QuestionID: a.QuestionID, SelectedOption: a.SelectedOption})
	}
	res, err := qh.quizService.SubmitAnswers(c.Request.Context(), answers)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}
