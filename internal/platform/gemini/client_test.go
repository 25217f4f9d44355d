package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

func TestFirstTextUsesFirstCandidateWithText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("[{"), genai.Text("}]")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	if got := firstText(resp); got != "[{}]" {
		t.Fatalf("firstText: got=%q", got)
	}
	if got := firstText(nil); got != "" {
		t.Fatalf("firstText(nil): got=%q", got)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{context.Canceled, false},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{&googleapi.Error{Code: 400}, false},
		{&googleapi.Error{Code: 429}, true},
		{&googleapi.Error{Code: 503}, true},
		{errors.New("connection reset"), true},
	}
	for i, tc := range cases {
		if got := retryable(tc.err); got != tc.want {
			t.Fatalf("case %d: got=%v want=%v", i, got, tc.want)
		}
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), Config{}, logger.Nop()); err == nil {
		t.Fatalf("expected error without api key")
	}
}
