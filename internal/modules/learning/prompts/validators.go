package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks caller mistakes; services map it to a 400.
var ErrInvalidInput = errors.New("invalid prompt input")

type Validator func(Input) error

func RequireNonEmpty(field string, get func(Input) string) Validator {
	return func(in Input) error {
		if get == nil {
			return fmt.Errorf("validator for %s: getter is nil", field)
		}
		if strings.TrimSpace(get(in)) == "" {
			return fmt.Errorf("%w: %s required", ErrInvalidInput, field)
		}
		return nil
	}
}

func RequireIntRange(field string, min, max int, get func(Input) int) Validator {
	return func(in Input) error {
		v := get(in)
		if v < min || (max > 0 && v > max) {
			if max > 0 {
				return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, field, min, max)
			}
			return fmt.Errorf("%w: %s must be at least %d", ErrInvalidInput, field, min)
		}
		return nil
	}
}
