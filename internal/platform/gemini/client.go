package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/yungbote/englishai-backend/internal/pkg/httpx"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

const DefaultModel = "gemini-1.5-flash"

var ErrEmptyResponse = errors.New("gemini: response contained no text")

type Config struct {
	APIKey     string
	Model      string
	MaxRetries int
	// RetryBase is multiplied by the attempt number between retries.
	RetryBase time.Duration
}

// Client wraps one long-lived genai client; it is safe for concurrent use.
type Client struct {
	log        *logger.Logger
	cl         *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	maxRetries int
	retryBase  time.Duration
}

func New(ctx context.Context, cfg Config, baseLog *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = DefaultModel
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	retryBase := cfg.RetryBase
	if retryBase <= 0 {
		retryBase = 300 * time.Millisecond
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		log:        baseLog.With("client", "Gemini", "model", modelName),
		cl:         cl,
		model:      cl.GenerativeModel(modelName),
		modelName:  modelName,
		maxRetries: maxRetries,
		retryBase:  retryBase,
	}, nil
}

func (c *Client) Provider() string { return "gemini" }
func (c *Client) Model() string    { return c.modelName }

func (c *Client) Close() error {
	if c == nil || c.cl == nil {
		return nil
	}
	return c.cl.Close()
}

// GenerateText sends one user prompt and returns the concatenated text parts.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			sleepFor := httpx.Backoff(attempt, c.retryBase)
			c.log.Warn("Gemini request retrying",
				"attempt", attempt,
				"max_retries", c.maxRetries,
				"sleep", sleepFor.String(),
				"error", lastErr.Error(),
			)
			if err := httpx.Sleep(ctx, sleepFor); err != nil {
				return "", err
			}
		}
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			if !retryable(err) {
				return "", err
			}
			continue
		}
		text := firstText(resp)
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	}
	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == http.StatusTooManyRequests || gErr.Code == http.StatusRequestTimeout || gErr.Code >= 500
	}
	// transport failures carry no status; treat them as transient
	return true
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}
