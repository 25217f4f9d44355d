package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yungbote/englishai-backend/internal/pkg/httpx"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o-mini"
)

var ErrEmptyResponse = errors.New("openai: no output_text found in response")

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration
}

// Client calls the Responses API for plain text completions.
type Client struct {
	log   *logger.Logger
	rc    *resty.Client
	model string
}

func New(cfg Config, baseLog *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	log := baseLog.With("client", "OpenAI", "model", model)
	rc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return httpx.IsRetryableError(err)
			}
			return r != nil && httpx.IsRetryableHTTPStatus(r.StatusCode())
		}).
		AddRetryHook(func(r *resty.Response, err error) {
			status := 0
			if r != nil {
				status = r.StatusCode()
			}
			log.Warn("OpenAI request retrying", "status", status, "error", err)
		})

	return &Client{log: log, rc: rc, model: model}, nil
}

func (c *Client) Provider() string { return "openai" }
func (c *Client) Model() string    { return c.model }
func (c *Client) Close() error     { return nil }

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model string         `json:"model"`
	Input []inputMessage `json:"input"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
	Refusal string `json:"refusal,omitempty"`
}

// HTTPError is a non-2xx reply. It satisfies httpx.HTTPStatusCoder.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := responsesRequest{
		Model: c.model,
		Input: []inputMessage{{Role: "user", Content: prompt}},
	}
	var out responsesResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/v1/responses")
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	if resp.IsError() {
		return "", &HTTPError{StatusCode: resp.StatusCode(), Body: truncate(resp.String(), 512)}
	}
	if out.Refusal != "" {
		return "", fmt.Errorf("model refused: %s", out.Refusal)
	}
	text := extractOutputText(out)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func extractOutputText(resp responsesResponse) string {
	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" && c.Text != "" {
				out.WriteString(c.Text)
			}
		}
	}
	return out.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
