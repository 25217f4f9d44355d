package services

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/rediscache"
)

// LessonCache stores fully assembled lessons by id.
type LessonCache interface {
	GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, bool, error)
	SetLesson(ctx context.Context, lesson *types.Lesson) error
	DeleteLesson(ctx context.Context, id uuid.UUID) error
}

type redisLessonCache struct {
	cache *rediscache.Cache
}

func NewRedisLessonCache(cache *rediscache.Cache) LessonCache {
	return &redisLessonCache{cache: cache}
}

func (c *redisLessonCache) key(id uuid.UUID) string {
	return c.cache.Key("lesson", id.String())
}

func (c *redisLessonCache) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, bool, error) {
	var l types.Lesson
	ok, err := c.cache.GetJSON(ctx, c.key(id), &l)
	if err != nil || !ok {
		return nil, false, err
	}
	return &l, true, nil
}

func (c *redisLessonCache) SetLesson(ctx context.Context, lesson *types.Lesson) error {
	return c.cache.SetJSON(ctx, c.key(lesson.ID), lesson)
}

func (c *redisLessonCache) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	return c.cache.Delete(ctx, c.key(id))
}
