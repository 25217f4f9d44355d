package learning

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/englishai-backend/internal/data/repos/testutil"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/pkg/pointers"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestLessonRepoRoundTripKeepsInsertionOrder(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	lessons := NewLessonRepo(gdb, log)
	vocab := NewVocabularyItemRepo(gdb, log)
	questions := NewQuestionRepo(gdb, log)

	created, err := lessons.Create(ctx, tx, []*types.Lesson{{
		Title:       "At the market",
		Level:       "A2",
		Topic:       "shopping",
		TextPassage: "Anna buys apples.",
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	lessonID := created[0].ID

	words := []string{"zebra", "apple", "market"}
	for i, w := range words {
		if _, err := vocab.Create(ctx, tx, []*types.VocabularyItem{{
			LessonID:    lessonID,
			Index:       i,
			Word:        w,
			Translation: pointers.Ptr(w + "-tr"),
		}}); err != nil {
			t.Fatalf("vocab.Create(%s): %v", w, err)
		}
	}
	texts := []string{"Q2", "Q1"}
	for i, text := range texts {
		if _, err := questions.Create(ctx, tx, []*types.Question{{
			LessonID:      pointers.Ptr(lessonID),
			Index:         i,
			QuestionText:  text,
			Options:       datatypes.JSONSlice[string]{"a", "b"},
			CorrectOption: "a",
		}}); err != nil {
			t.Fatalf("questions.Create(%s): %v", text, err)
		}
	}

	got, err := lessons.GetByID(ctx, tx, lessonID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.VocabularyItems) != len(words) {
		t.Fatalf("vocabulary: got=%d want=%d", len(got.VocabularyItems), len(words))
	}
	for i, w := range words {
		if got.VocabularyItems[i].Word != w {
			t.Fatalf("vocabulary[%d]: got=%q want=%q", i, got.VocabularyItems[i].Word, w)
		}
	}
	if len(got.Questions) != len(texts) {
		t.Fatalf("questions: got=%d want=%d", len(got.Questions), len(texts))
	}
	for i, text := range texts {
		if got.Questions[i].QuestionText != text {
			t.Fatalf("questions[%d]: got=%q want=%q", i, got.Questions[i].QuestionText, text)
		}
		if len(got.Questions[i].Options) != 2 {
			t.Fatalf("questions[%d]: options not decoded: %v", i, got.Questions[i].Options)
		}
	}
}

func TestLessonRepoGetByIDMissing(t *testing.T) {
	gdb := testutil.DB(t)
	repo := NewLessonRepo(gdb, testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), nil, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLessonRepoDeleteCascades(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)
	repo := NewLessonRepo(gdb, log)

	lesson := testutil.SeedLesson(t, ctx, gdb, "weather")
	testutil.SeedQuestion(t, ctx, gdb, pointers.Ptr(lesson.ID), 0, "a")
	if _, err := NewVocabularyItemRepo(gdb, log).Create(ctx, nil, []*types.VocabularyItem{{LessonID: lesson.ID, Word: "rain"}}); err != nil {
		t.Fatalf("vocab.Create: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, lesson.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}

	var questions, items int64
	gdb.Model(&types.Question{}).Where("lesson_id = ?", lesson.ID).Count(&questions)
	gdb.Model(&types.VocabularyItem{}).Where("lesson_id = ?", lesson.ID).Count(&items)
	if questions != 0 || items != 0 {
		t.Fatalf("expected cascade delete, got questions=%d items=%d", questions, items)
	}
}
