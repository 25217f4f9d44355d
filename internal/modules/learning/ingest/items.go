package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/englishai-backend/internal/modules/learning/prompts"
)

// ErrInvalidItem wraps every per-item rejection.
var ErrInvalidItem = errors.New("invalid item")

// QuestionItem is a generated multiple choice question after shape checks.
type QuestionItem struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectOption string   `json:"correct_option" validate:"required"`
}

// VocabularyEntry is a generated vocabulary word. Optional fields stay nil when absent.
type VocabularyEntry struct {
	Word          string  `json:"word" validate:"required"`
	PhoneticGuide *string `json:"phonetic_guide"`
	Translation   *string `json:"translation"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		q := sl.Current().Interface().(QuestionItem)
		for _, o := range q.Options {
			if o == q.CorrectOption {
				return
			}
		}
		sl.ReportError(q.CorrectOption, "CorrectOption", "correct_option", "member_of_options", "")
	}, QuestionItem{})
	return v
}

// DecodeQuestion checks presence, JSON types and option membership of one item.
func DecodeQuestion(raw json.RawMessage) (QuestionItem, error) {
	var q QuestionItem
	if err := decodeObject(raw, prompts.QuestionKeys, &q); err != nil {
		return QuestionItem{}, err
	}
	q.QuestionText = strings.TrimSpace(q.QuestionText)
	if err := validate.Struct(q); err != nil {
		return QuestionItem{}, fmt.Errorf("%w: %s", ErrInvalidItem, describe(err))
	}
	return q, nil
}

func DecodeVocabulary(raw json.RawMessage) (VocabularyEntry, error) {
	var v VocabularyEntry
	if err := decodeObject(raw, []string{prompts.KeyWord}, &v); err != nil {
		return VocabularyEntry{}, err
	}
	v.Word = strings.TrimSpace(v.Word)
	if err := validate.Struct(v); err != nil {
		return VocabularyEntry{}, fmt.Errorf("%w: %s", ErrInvalidItem, describe(err))
	}
	return v, nil
}

func decodeObject(raw json.RawMessage, required []string, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: not an object", ErrInvalidItem)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	for _, k := range required {
		v, ok := keys[k]
		if !ok || string(bytes.TrimSpace(v)) == "null" {
			return fmt.Errorf("%w: missing %s", ErrInvalidItem, k)
		}
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %s has wrong type %s", ErrInvalidItem, typeErr.Field, typeErr.Value)
		}
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
