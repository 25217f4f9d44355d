package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, topic string) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		ID:          uuid.New(),
		Title:       "lesson",
		Level:       "B1",
		Topic:       topic,
		TextPassage: "passage",
	}
	if err := tx.WithContext(ctx).Omit("VocabularyItems", "Questions").Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

// SeedQuestion inserts a question; lessonID may be nil for a standalone exercise.
func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, lessonID *uuid.UUID, index int, correct string, options ...string) *types.Question {
	tb.Helper()
	if len(options) == 0 {
		options = []string{"a", "b", "c", "d"}
	}
	q := &types.Question{
		ID:            uuid.New(),
		LessonID:      lessonID,
		Index:         index,
		QuestionText:  "question",
		Options:       datatypes.JSONSlice[string](options),
		CorrectOption: correct,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}
