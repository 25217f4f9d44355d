package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/englishai-backend/internal/observability"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

// TextGenerator is the only capability the generation pipeline needs from a model.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// describedGenerator is implemented by the provider clients.
type describedGenerator interface {
	Provider() string
	Model() string
}

var ErrAIUnavailable = errors.New("AI features unavailable: no API key configured")

type aiClient struct {
	log     *logger.Logger
	gen     TextGenerator
	timeout time.Duration
}

// NewAIClient bounds every call with timeout, records a span and maps failures to
// upstream errors. A nil gen yields a client that always fails with ErrAIUnavailable.
func NewAIClient(gen TextGenerator, timeout time.Duration, log *logger.Logger) TextGenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &aiClient{
		log:     log.With("service", "AIClient"),
		gen:     gen,
		timeout: timeout,
	}
}

func (c *aiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.gen == nil {
		return "", apierr.Upstream(ErrAIUnavailable)
	}

	ctx, span := observability.Tracer().Start(ctx, "ai.generate_text")
	defer span.End()
	provider, model := "unknown", ""
	if d, ok := c.gen.(describedGenerator); ok {
		provider, model = d.Provider(), d.Model()
	}
	span.SetAttributes(
		attribute.String("ai.provider", provider),
		attribute.String("ai.model", model),
		attribute.Int("ai.prompt_chars", len(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.gen.GenerateText(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		c.log.Error("AI generation failed", "provider", provider, "duration_ms", elapsed.Milliseconds(), "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apierr.Upstream(fmt.Errorf("AI model timed out after %s", c.timeout))
		}
		return "", apierr.Upstream(fmt.Errorf("Failed to generate content due to an API error: %w", err))
	}
	if strings.TrimSpace(text) == "" {
		span.SetStatus(codes.Error, "empty response")
		return "", apierr.Upstream(errors.New("AI model did not return text content."))
	}
	span.SetAttributes(attribute.Int("ai.response_chars", len(text)))
	c.log.Debug("AI generation finished", "provider", provider, "duration_ms", elapsed.Milliseconds())
	return text, nil
}
