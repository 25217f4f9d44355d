package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/englishai-backend/internal/data/repos/testutil"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/modules/learning/ingest"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
)

func newTestExerciseService(t *testing.T, f *fixture, gen *fakeGenerator) ExerciseService {
	t.Helper()
	log := testutil.Logger(t)
	return NewExerciseService(log, NewAIClient(gen, time.Second, log), f.questions)
}

func exerciseRequest() ExerciseRequest {
	return ExerciseRequest{Topic: "travel", Level: "A2", ExerciseType: "fill_in_the_blank", NumQuestions: 2}
}

func TestGenerateExercisesStoresValidItems(t *testing.T) {
	f := newFixture(t)
	gen := &fakeGenerator{text: "```json\n" + `[
		{"question_text": "I ___ to Paris last year.", "options": ["go", "went", "gone"], "correct_option": "went"},
		{"question_text": "Broken", "options": ["a", "b"], "correct_option": "c"}
	]` + "\n```"}
	svc := newTestExerciseService(t, f, gen)

	res, err := svc.GenerateExercises(context.Background(), exerciseRequest())
	if err != nil {
		t.Fatalf("GenerateExercises: %v", err)
	}
	if len(res.Exercises) != 1 || res.Skipped != 1 {
		t.Fatalf("exercises=%d skipped=%d", len(res.Exercises), res.Skipped)
	}
	q := res.Exercises[0]
	if q.CorrectOption != "went" || q.LessonID != nil {
		t.Fatalf("unexpected question %+v", q)
	}
	if q.QuestionType == nil || *q.QuestionType != "fill_in_the_blank" {
		t.Fatalf("question type=%v", q.QuestionType)
	}
	if n := f.count(t, &types.Question{}); n != 1 {
		t.Fatalf("stored=%d want 1", n)
	}
	if !strings.Contains(gen.prompts[0], "travel") {
		t.Fatalf("prompt missing topic")
	}
}

func TestGenerateExercisesRejectsNonJSON(t *testing.T) {
	f := newFixture(t)
	svc := newTestExerciseService(t, f, &fakeGenerator{text: "Sure! Here are your exercises."})

	_, err := svc.GenerateExercises(context.Background(), exerciseRequest())
	assertCode(t, err, apierr.CodeMalformed)
	if n := f.count(t, &types.Question{}); n != 0 {
		t.Fatalf("stored=%d want 0", n)
	}
}

func TestGenerateExercisesAllInvalid(t *testing.T) {
	f := newFixture(t)
	svc := newTestExerciseService(t, f, &fakeGenerator{text: `[{"question_text": "x"}]`})

	_, err := svc.GenerateExercises(context.Background(), exerciseRequest())
	assertCode(t, err, apierr.CodeMalformed)
	if !errors.Is(err, ingest.ErrNoValidItems) {
		t.Fatalf("expected ErrNoValidItems, got %v", err)
	}
}

func TestGenerateExercisesValidatesInput(t *testing.T) {
	f := newFixture(t)
	gen := &fakeGenerator{text: "[]"}
	svc := newTestExerciseService(t, f, gen)

	req := exerciseRequest()
	req.NumQuestions = 0
	_, err := svc.GenerateExercises(context.Background(), req)
	assertCode(t, err, apierr.CodeInvalidArgument)
	if gen.calls() != 0 {
		t.Fatalf("model called for invalid input")
	}
}

func TestGenerateTestText(t *testing.T) {
	f := newFixture(t)
	svc := newTestExerciseService(t, f, &fakeGenerator{text: "Hello from the model"})
	text, err := svc.GenerateTestText(context.Background())
	if err != nil || text != "Hello from the model" {
		t.Fatalf("text=%q err=%v", text, err)
	}
}
