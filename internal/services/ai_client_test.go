package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/englishai-backend/internal/data/repos/testutil"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
)

type blockingGenerator struct{}

func (blockingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestAIClientDisabled(t *testing.T) {
	c := NewAIClient(nil, time.Second, testutil.Logger(t))
	_, err := c.GenerateText(context.Background(), "hi")
	assertCode(t, err, apierr.CodeUpstream)
	if !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestAIClientTimeout(t *testing.T) {
	c := NewAIClient(blockingGenerator{}, 20*time.Millisecond, testutil.Logger(t))
	_, err := c.GenerateText(context.Background(), "hi")
	assertCode(t, err, apierr.CodeUpstream)
}

func TestAIClientBlankAndError(t *testing.T) {
	log := testutil.Logger(t)

	_, err := NewAIClient(&fakeGenerator{text: "  \n"}, time.Second, log).GenerateText(context.Background(), "p")
	assertCode(t, err, apierr.CodeUpstream)

	_, err = NewAIClient(&fakeGenerator{err: errors.New("boom")}, time.Second, log).GenerateText(context.Background(), "p")
	assertCode(t, err, apierr.CodeUpstream)

	text, err := NewAIClient(&fakeGenerator{text: "pong"}, time.Second, log).GenerateText(context.Background(), "p")
	if err != nil || text != "pong" {
		t.Fatalf("text=%q err=%v", text, err)
	}
}
