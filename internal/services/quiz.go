package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/englishai-backend/internal/data/repos"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type AnswerSubmission struct {
	QuestionID     uuid.UUID
	SelectedOption string
}

type QuizResult struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

type QuizService interface {
	// SubmitAnswers scores answers for the authenticated user. Unknown question ids are
	// skipped and do not count towards the total.
	SubmitAnswers(ctx context.Context, answers []AnswerSubmission) (*QuizResult, error)
}

type quizService struct {
	log            *logger.Logger
	questionRepo   repos.QuestionRepo
	userAnswerRepo repos.UserAnswerRepo
}

func NewQuizService(log *logger.Logger, questionRepo repos.QuestionRepo, userAnswerRepo repos.UserAnswerRepo) QuizService {
	return &quizService{
		log:            log.With("service", "QuizService"),
		questionRepo:   questionRepo,
		userAnswerRepo: userAnswerRepo,
	}
}

func (qs *quizService) SubmitAnswers(ctx context.Context, answers []AnswerSubmission) (*QuizResult, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(msgBadToken)
	}
	result := &QuizResult{}
	if len(answers) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(answers))
	seen := make(map[uuid.UUID]struct{}, len(answers))
	for _, a := range answers {
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}
	found, err := qs.questionRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	byID := make(map[uuid.UUID]*types.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	log := qs.log.With(ctxutil.TraceFields(ctx)...)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			log.Warn("Question not found, skipping answer", "question_id", a.QuestionID)
			continue
		}
		isCorrect := a.SelectedOption == q.CorrectOption
		result.TotalQuestions++
		if isCorrect {
			result.Score++
		}
		if _, err := qs.userAnswerRepo.Create(ctx, nil, []*types.UserAnswer{{
			UserID:         rd.UserID,
			QuestionID:     q.ID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      isCorrect,
		}}); err != nil {
			// the answer was scored; only the audit row is lost
			log.Error("Failed to save user answer", "question_id", q.ID, "user_id", rd.UserID, "error", err)
		}
	}
	log.Info("Answers scored", "user_id", rd.UserID, "score", result.Score, "total_questions", result.TotalQuestions)
	return result, nil
}
