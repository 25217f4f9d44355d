package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/englishai-backend/internal/data/repos"
	"github.com/yungbote/englishai-backend/internal/data/repos/testutil"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type memLessonCache struct {
	mu      sync.Mutex
	lessons map[uuid.UUID]*types.Lesson
	gets    int
	deletes int
}

func newMemLessonCache() *memLessonCache {
	return &memLessonCache{lessons: map[uuid.UUID]*types.Lesson{}}
}

func (c *memLessonCache) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	l, ok := c.lessons[id]
	return l, ok, nil
}

func (c *memLessonCache) SetLesson(ctx context.Context, lesson *types.Lesson) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lessons[lesson.ID] = lesson
	return nil
}

func (c *memLessonCache) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	delete(c.lessons, id)
	return nil
}

type fixture struct {
	db          *gorm.DB
	users       repos.UserRepo
	lessons     repos.LessonRepo
	vocabulary  repos.VocabularyItemRepo
	questions   repos.QuestionRepo
	userAnswers repos.UserAnswerRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &fixture{
		db:          db,
		users:       repos.NewUserRepo(db, log),
		lessons:     repos.NewLessonRepo(db, log),
		vocabulary:  repos.NewVocabularyItemRepo(db, log),
		questions:   repos.NewQuestionRepo(db, log),
		userAnswers: repos.NewUserAnswerRepo(db, log),
	}
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func asUser(ctx context.Context, u *types.User) context.Context {
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: u.ID, Email: u.Email})
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.Error with code %q, got %v", code, err)
	}
	if ae.Code != code {
		t.Fatalf("code=%q want %q (err=%v)", ae.Code, code, err)
	}
}
