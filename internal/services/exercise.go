package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/englishai-backend/internal/data/repos"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/modules/learning/aiparse"
	"github.com/yungbote/englishai-backend/internal/modules/learning/ingest"
	"github.com/yungbote/englishai-backend/internal/modules/learning/prompts"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type ExerciseRequest struct {
	Topic        string
	Level        string
	ExerciseType string
	NumQuestions int
	Context      string
}

type ExerciseResult struct {
	Exercises []*types.Question
	// Skipped counts generated items that failed validation or storage.
	Skipped int
}

type ExerciseService interface {
	GenerateExercises(ctx context.Context, req ExerciseRequest) (*ExerciseResult, error)
	// GenerateTestText sends a fixed prompt to check the model is reachable.
	GenerateTestText(ctx context.Context) (string, error)
}

type exerciseService struct {
	log          *logger.Logger
	ai           TextGenerator
	questionRepo repos.QuestionRepo
}

func NewExerciseService(log *logger.Logger, ai TextGenerator, questionRepo repos.QuestionRepo) ExerciseService {
	return &exerciseService{
		log:          log.With("service", "ExerciseService"),
		ai:           ai,
		questionRepo: questionRepo,
	}
}

func (es *exerciseService) GenerateTestText(ctx context.Context) (string, error) {
	return es.ai.GenerateText(ctx, prompts.ConnectivityPrompt())
}

func (es *exerciseService) GenerateExercises(ctx context.Context, req ExerciseRequest) (*ExerciseResult, error) {
	exerciseType := strings.TrimSpace(req.ExerciseType)
	prompt, err := prompts.BuildExercisePrompt(prompts.Input{
		Topic:         req.Topic,
		Level:         req.Level,
		ExerciseType:  exerciseType,
		NumQuestions:  req.NumQuestions,
		LessonContext: req.Context,
	})
	if err != nil {
		return nil, promptError(err)
	}

	log := es.log.With(ctxutil.TraceFields(ctx)...)
	log.Info("Generating exercises", "topic", req.Topic, "level", req.Level, "exercise_type", exerciseType, "num_questions", req.NumQuestions)

	text, err := es.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	items, err := aiparse.ParseExerciseList(text).Unwrap()
	if err != nil {
		logParseFailure(log, err)
		return nil, apierr.Malformed(fmt.Errorf("Invalid data structure from AI: %w", err))
	}

	out := ingest.Fold(ctx, items, func(ctx context.Context, i int, raw json.RawMessage) (*types.Question, error) {
		item, err := ingest.DecodeQuestion(raw)
		if err != nil {
			return nil, err
		}
		return storeQuestion(ctx, es.questionRepo, i, item, &exerciseType, nil)
	})
	logFailures(log, "exercise", out.Failures)

	if out.Empty() {
		return nil, apierr.Malformed(fmt.Errorf("%w: failed to process or save any valid exercises from AI response", ingest.ErrNoValidItems))
	}
	log.Info("Exercises stored", "stored", len(out.Successes), "skipped", len(out.Failures))
	return &ExerciseResult{Exercises: out.Successes, Skipped: len(out.Failures)}, nil
}

// storeQuestion commits one question on its own; lessonID is nil for standalone exercises.
func storeQuestion(ctx context.Context, repo repos.QuestionRepo, index int, item ingest.QuestionItem, questionType *string, lessonID *uuid.UUID) (*types.Question, error) {
	created, err := repo.Create(ctx, nil, []*types.Question{{
		LessonID:      lessonID,
		Index:         index,
		QuestionText:  item.QuestionText,
		Options:       datatypes.JSONSlice[string](item.Options),
		CorrectOption: item.CorrectOption,
		QuestionType:  questionType,
	}})
	if err != nil {
		return nil, fmt.Errorf("store question: %w", err)
	}
	return created[0], nil
}

func promptError(err error) error {
	if errors.Is(err, prompts.ErrInvalidInput) {
		return apierr.InvalidArgument(err)
	}
	return err
}

func logParseFailure(log *logger.Logger, err error) {
	var pe *aiparse.ParseError
	if errors.As(err, &pe) {
		log.Error("AI response rejected", "reason", pe.Reason, "detail", pe.Detail, "raw", truncateRaw(pe.Raw))
		return
	}
	log.Error("AI response rejected", "error", err)
}

func logFailures[T any](log *logger.Logger, kind string, failures []ingest.Failure[T]) {
	for _, f := range failures {
		log.Warn("Skipping generated item", "kind", kind, "index", f.Index, "reason", f.Reason)
	}
}

func truncateRaw(s string) string {
	const max = 2000
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
