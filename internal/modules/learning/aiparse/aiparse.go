// Package aiparse turns raw model text into shape-checked JSON without trusting it.
package aiparse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yungbote/englishai-backend/internal/modules/learning/prompts"
)

// ErrMalformed is matched by every *ParseError through errors.Is.
var ErrMalformed = errors.New("malformed upstream data")

type Reason string

const (
	ReasonEmpty      Reason = "empty_response"
	ReasonNotJSON    Reason = "not_json"
	ReasonWrongShape Reason = "wrong_shape"
	ReasonMissingKey Reason = "missing_key"
	ReasonWrongType  Reason = "wrong_type"
)

// ParseError keeps the offending text for logging. Raw must never be persisted.
type ParseError struct {
	Reason Reason
	Detail string
	Raw    string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ai response %s", e.Reason)
	}
	return fmt.Sprintf("ai response %s: %s", e.Reason, e.Detail)
}

func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// Result is either Parsed or Err, never both.
type Result[T any] struct {
	Parsed T
	Err    *ParseError
}

func (r Result[T]) OK() bool { return r.Err == nil }

// Unwrap returns the parsed value or the parse error as a plain error.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Parsed, nil
}

func fail[T any](reason Reason, detail, raw string) Result[T] {
	return Result[T]{Err: &ParseError{Reason: reason, Detail: detail, Raw: raw}}
}

// StripCodeFences removes a leading ```json / ``` fence and a trailing ``` fence.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 7 && strings.EqualFold(s[:7], "```json") {
		s = s[7:]
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseExerciseList expects a top-level JSON array. Items are returned undecoded so
// each can be validated on its own.
func ParseExerciseList(raw string) Result[[]json.RawMessage] {
	body := StripCodeFences(raw)
	if body == "" {
		return fail[[]json.RawMessage](ReasonEmpty, "", raw)
	}
	if !json.Valid([]byte(body)) {
		return fail[[]json.RawMessage](ReasonNotJSON, "", raw)
	}
	if firstByte(body) != '[' {
		return fail[[]json.RawMessage](ReasonWrongShape, "expected a JSON list", raw)
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return fail[[]json.RawMessage](ReasonNotJSON, err.Error(), raw)
	}
	return Result[[]json.RawMessage]{Parsed: items}
}

// LessonObject is a generated lesson with its required keys checked. Vocabulary and
// Comprehension are left undecoded for per-item validation.
type LessonObject struct {
	Title         string
	TextPassage   string
	Vocabulary    []json.RawMessage
	Comprehension []json.RawMessage
	// ExtraKeys lists unexpected top-level keys; they are ignored.
	ExtraKeys []string
}

func ParseLessonObject(raw string) Result[LessonObject] {
	body := StripCodeFences(raw)
	if body == "" {
		return fail[LessonObject](ReasonEmpty, "", raw)
	}
	if !json.Valid([]byte(body)) {
		return fail[LessonObject](ReasonNotJSON, "", raw)
	}
	if firstByte(body) != '{' {
		return fail[LessonObject](ReasonWrongShape, "expected a JSON object", raw)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return fail[LessonObject](ReasonNotJSON, err.Error(), raw)
	}
	for _, k := range prompts.LessonKeys {
		if _, ok := obj[k]; !ok {
			return fail[LessonObject](ReasonMissingKey, k, raw)
		}
	}

	var out LessonObject
	if err := decodeNonEmptyString(obj[prompts.KeyTitle], &out.Title); err != nil {
		return fail[LessonObject](ReasonWrongType, prompts.KeyTitle+": "+err.Error(), raw)
	}
	if err := decodeNonEmptyString(obj[prompts.KeyTextPassage], &out.TextPassage); err != nil {
		return fail[LessonObject](ReasonWrongType, prompts.KeyTextPassage+": "+err.Error(), raw)
	}
	if err := decodeList(obj[prompts.KeyVocabulary], &out.Vocabulary); err != nil {
		return fail[LessonObject](ReasonWrongType, prompts.KeyVocabulary+": "+err.Error(), raw)
	}
	if err := decodeList(obj[prompts.KeyComprehension], &out.Comprehension); err != nil {
		return fail[LessonObject](ReasonWrongType, prompts.KeyComprehension+": "+err.Error(), raw)
	}

	required := make(map[string]struct{}, len(prompts.LessonKeys))
	for _, k := range prompts.LessonKeys {
		required[k] = struct{}{}
	}
	for k := range obj {
		if _, ok := required[k]; !ok {
			out.ExtraKeys = append(out.ExtraKeys, k)
		}
	}
	sort.Strings(out.ExtraKeys)
	return Result[LessonObject]{Parsed: out}
}

func decodeNonEmptyString(raw json.RawMessage, dst *string) error {
	if firstByte(string(raw)) != '"' {
		return errors.New("expected a string")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if strings.TrimSpace(*dst) == "" {
		return errors.New("empty string")
	}
	return nil
}

func decodeList(raw json.RawMessage, dst *[]json.RawMessage) error {
	if firstByte(string(raw)) != '[' {
		return errors.New("expected a list")
	}
	return json.Unmarshal(raw, dst)
}

func firstByte(s string) byte {
	b := bytes.TrimSpace([]byte(s))
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
