package app

import (
	"context"
	"fmt"

	"github.com/yungbote/englishai-backend/internal/observability"
	"github.com/yungbote/englishai-backend/internal/platform/gemini"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
	"github.com/yungbote/englishai-backend/internal/platform/openai"
	"github.com/yungbote/englishai-backend/internal/platform/rediscache"
	"github.com/yungbote/englishai-backend/internal/services"
)

type closer interface {
	Close() error
}

type Clients struct {
	// AI is nil when no provider key is configured.
	AI           services.TextGenerator
	LessonCache  *rediscache.Cache
	OtelShutdown func(context.Context) error

	closers []closer
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	c := Clients{
		OtelShutdown: observability.InitOTel(ctx, log, observability.OtelConfig{
			Enabled:     cfg.Otel.Enabled,
			ServiceName: cfg.Otel.ServiceName,
			Environment: cfg.Environment,
			Endpoint:    cfg.Otel.Endpoint,
			Insecure:    cfg.Otel.Insecure,
			SampleRatio: cfg.Otel.SampleRatio,
		}),
	}

	// AI provider
	switch cfg.AI.Provider {
	case ProviderOpenAI:
		if cfg.AI.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY not set; AI generation endpoints will fail")
			break
		}
		cl, err := openai.New(openai.Config{
			APIKey:     cfg.AI.OpenAIAPIKey,
			BaseURL:    cfg.AI.OpenAIBaseURL,
			Model:      cfg.AI.OpenAIModel,
			Timeout:    cfg.AI.Timeout,
			MaxRetries: cfg.AI.MaxRetries,
		}, log)
		if err != nil {
			c.Close()
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		c.AI = cl
		c.closers = append(c.closers, cl)
	default:
		if cfg.AI.GeminiAPIKey == "" {
			log.Warn("GOOGLE_API_KEY not set; AI generation endpoints will fail")
			break
		}
		cl, err := gemini.New(ctx, gemini.Config{
			APIKey:     cfg.AI.GeminiAPIKey,
			Model:      cfg.AI.GeminiModel,
			MaxRetries: cfg.AI.MaxRetries,
		}, log)
		if err != nil {
			c.Close()
			return Clients{}, fmt.Errorf("init gemini client: %w", err)
		}
		c.AI = cl
		c.closers = append(c.closers, cl)
	}

	// Redis
	if cfg.Redis.Addr != "" {
		cache, err := rediscache.New(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   "englishai:",
			TTL:      cfg.Redis.LessonTTL,
		}, log)
		if err != nil {
			c.Close()
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
		c.LessonCache = cache
		c.closers = append(c.closers, cache)
	}

	return c, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i].Close()
	}
	c.closers = nil
}
