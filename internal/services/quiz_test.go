package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/englishai-backend/internal/data/repos/testutil"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
)

func TestSubmitAnswersScores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewQuizService(testutil.Logger(t), f.questions, f.userAnswers)

	u := testutil.SeedUser(t, ctx, f.db, "quiz@example.com")
	q1 := testutil.SeedQuestion(t, ctx, f.db, nil, 0, "b", "a", "b")
	q2 := testutil.SeedQuestion(t, ctx, f.db, nil, 1, "Yes", "Yes", "No")

	res, err := svc.SubmitAnswers(asUser(ctx, u), []AnswerSubmission{
		{QuestionID: q1.ID, SelectedOption: "b"},
		{QuestionID: q2.ID, SelectedOption: "yes"},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if res.Score != 1 || res.TotalQuestions != 2 {
		t.Fatalf("result=%+v want {1 2}", res)
	}

	stored, err := f.userAnswers.GetByUserID(ctx, nil, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored answers=%d want 2", len(stored))
	}
	correct := 0
	for _, a := range stored {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		t.Fatalf("correct rows=%d want 1", correct)
	}
}

func TestSubmitAnswersSkipsUnknownQuestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewQuizService(testutil.Logger(t), f.questions, f.userAnswers)
	u := testutil.SeedUser(t, ctx, f.db, "skip@example.com")

	res, err := svc.SubmitAnswers(asUser(ctx, u), []AnswerSubmission{
		{QuestionID: uuid.New(), SelectedOption: "a"},
		{QuestionID: uuid.Nil, SelectedOption: "b"},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if res.Score != 0 || res.TotalQuestions != 0 {
		t.Fatalf("result=%+v want {0 0}", res)
	}
	if n := f.count(t, &types.UserAnswer{}); n != 0 {
		t.Fatalf("stored=%d want 0", n)
	}
}

func TestSubmitAnswersRequiresUser(t *testing.T) {
	f := newFixture(t)
	svc := NewQuizService(testutil.Logger(t), f.questions, f.userAnswers)
	_, err := svc.SubmitAnswers(context.Background(), nil)
	assertCode(t, err, apierr.CodeUnauthorized)
}
