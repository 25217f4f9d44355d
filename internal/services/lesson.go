package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/yungbote/englishai-backend/internal/data/repos"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/modules/learning/aiparse"
	"github.com/yungbote/englishai-backend/internal/modules/learning/ingest"
	"github.com/yungbote/englishai-backend/internal/modules/learning/prompts"
	"github.com/yungbote/englishai-backend/internal/pkg/pointers"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

const lessonReadTimeout = 10 * time.Second

type LessonRequest struct {
	Topic         string
	Level         string
	NumQuestions  int
	NumVocabulary int
	Context       string
}

type LessonResult struct {
	Lesson            *types.Lesson
	SkippedVocabulary int
	SkippedQuestions  int
}

type LessonService interface {
	GenerateLesson(ctx context.Context, req LessonRequest) (*LessonResult, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error)
}

type lessonService struct {
	log          *logger.Logger
	ai           TextGenerator
	lessonRepo   repos.LessonRepo
	vocabRepo    repos.VocabularyItemRepo
	questionRepo repos.QuestionRepo
	cache        LessonCache
	reads        singleflight.Group
}

// NewLessonService builds the service; cache may be nil.
func NewLessonService(
	log *logger.Logger,
	ai TextGenerator,
	lessonRepo repos.LessonRepo,
	vocabRepo repos.VocabularyItemRepo,
	questionRepo repos.QuestionRepo,
	cache LessonCache,
) LessonService {
	return &lessonService{
		log:          log.With("service", "LessonService"),
		ai:           ai,
		lessonRepo:   lessonRepo,
		vocabRepo:    vocabRepo,
		questionRepo: questionRepo,
		cache:        cache,
	}
}

func (ls *lessonService) GenerateLesson(ctx context.Context, req LessonRequest) (*LessonResult, error) {
	prompt, err := prompts.BuildLessonPrompt(prompts.Input{
		Topic:         req.Topic,
		Level:         req.Level,
		NumQuestions:  req.NumQuestions,
		NumVocabulary: req.NumVocabulary,
		LessonContext: req.Context,
	})
	if err != nil {
		return nil, promptError(err)
	}

	log := ls.log.With(ctxutil.TraceFields(ctx)...)
	log.Info("Generating lesson", "topic", req.Topic, "level", req.Level)

	text, err := ls.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	obj, err := aiparse.ParseLessonObject(text).Unwrap()
	if err != nil {
		logParseFailure(log, err)
		return nil, apierr.Malformed(fmt.Errorf("Invalid data structure from AI: %w", err))
	}
	if len(obj.ExtraKeys) > 0 {
		log.Info("Ignoring unexpected lesson keys", "keys", obj.ExtraKeys)
	}

	created, err := ls.lessonRepo.Create(ctx, nil, []*types.Lesson{{
		Title:       obj.Title,
		Level:       req.Level,
		Topic:       req.Topic,
		TextPassage: obj.TextPassage,
	}})
	if err != nil {
		return nil, fmt.Errorf("store lesson: %w", err)
	}
	lesson := created[0]
	lessonID := lesson.ID

	vocab := ingest.Fold(ctx, obj.Vocabulary, func(ctx context.Context, i int, raw json.RawMessage) (*types.VocabularyItem, error) {
		entry, err := ingest.DecodeVocabulary(raw)
		if err != nil {
			return nil, err
		}
		items, err := ls.vocabRepo.Create(ctx, nil, []*types.VocabularyItem{{
			LessonID:      lessonID,
			Index:         i,
			Word:          entry.Word,
			PhoneticGuide: entry.PhoneticGuide,
			Translation:   entry.Translation,
		}})
		if err != nil {
			return nil, fmt.Errorf("store vocabulary item: %w", err)
		}
		return items[0], nil
	})
	logFailures(log, "vocabulary", vocab.Failures)

	questions := ingest.Fold(ctx, obj.Comprehension, func(ctx context.Context, i int, raw json.RawMessage) (*types.Question, error) {
		item, err := ingest.DecodeQuestion(raw)
		if err != nil {
			return nil, err
		}
		return storeQuestion(ctx, ls.questionRepo, i, item, pointers.Ptr(types.QuestionTypeComprehension), &lessonID)
	})
	logFailures(log, "comprehension_question", questions.Failures)

	if questions.Empty() {
		// a lesson without questions is not usable; remove it and its vocabulary
		cleanupCtx := context.WithoutCancel(ctx)
		if delErr := ls.lessonRepo.DeleteByID(cleanupCtx, nil, lessonID); delErr != nil {
			log.Error("Failed to remove lesson without questions", "lesson_id", lessonID, "error", delErr)
		}
		if ls.cache != nil {
			if delErr := ls.cache.DeleteLesson(cleanupCtx, lessonID); delErr != nil {
				log.Warn("Lesson cache delete failed", "lesson_id", lessonID, "error", delErr)
			}
		}
		return nil, apierr.Malformed(fmt.Errorf("%w: AI lesson contained no valid comprehension questions", ingest.ErrNoValidItems))
	}

	full, err := ls.lessonRepo.GetByID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("reload lesson: %w", err)
	}
	ls.cacheLesson(ctx, full)

	log.Info("Lesson stored",
		"lesson_id", lessonID,
		"vocabulary", len(vocab.Successes),
		"questions", len(questions.Successes),
		"skipped", len(vocab.Failures)+len(questions.Failures),
	)
	return &LessonResult{
		Lesson:            full,
		SkippedVocabulary: len(vocab.Failures),
		SkippedQuestions:  len(questions.Failures),
	}, nil
}

// GetLesson reads through the cache; concurrent misses for one id share a query.
func (ls *lessonService) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error) {
	if ls.cache != nil {
		cached, ok, err := ls.cache.GetLesson(ctx, id)
		if err != nil {
			ls.log.Warn("Lesson cache read failed", "lesson_id", id, "error", err)
		}
		if ok {
			return cached, nil
		}
	}

	// The shared query outlives any one caller; each caller only waits on its own ctx.
	ch := ls.reads.DoChan(id.String(), func() (interface{}, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lessonReadTimeout)
		defer cancel()
		l, err := ls.lessonRepo.GetByID(qctx, nil, id)
		if err != nil {
			return nil, err
		}
		ls.cacheLesson(qctx, l)
		return l, nil
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	v, err := res.Val, res.Err
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("Lesson not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}
	return v.(*types.Lesson), nil
}

func (ls *lessonService) cacheLesson(ctx context.Context, l *types.Lesson) {
	if ls.cache == nil || l == nil {
		return
	}
	if err := ls.cache.SetLesson(ctx, l); err != nil {
		ls.log.Warn("Lesson cache write failed", "lesson_id", l.ID, "error", err)
	}
}
