package rediscache

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

func TestKeyAndDefaults(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	c := NewFromClient(rdb, "englishai:", 0, logger.Nop())
	if got := c.Key("lesson", "abc"); got != "englishai:lesson:abc" {
		t.Fatalf("Key: got=%q", got)
	}
	if c.ttl != 5*time.Minute {
		t.Fatalf("default ttl: got=%v", c.ttl)
	}
	if err := c.Delete(context.Background()); err != nil {
		t.Fatalf("Delete with no keys: %v", err)
	}
}

func TestNewRequiresAddr(t *testing.T) {
	if _, err := New(context.Background(), Config{}, logger.Nop()); err == nil {
		t.Fatalf("expected error without address")
	}
}
