package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{Unauthorized("nope"), http.StatusUnauthorized, CodeUnauthorized},
		{Conflict("dup"), http.StatusBadRequest, CodeConflict},
		{NotFound("gone"), http.StatusNotFound, CodeNotFound},
		{InvalidArgument(errors.New("bad")), http.StatusBadRequest, CodeInvalidArgument},
		{Upstream(errors.New("down")), http.StatusInternalServerError, CodeUpstream},
		{Malformed(errors.New("junk")), http.StatusInternalServerError, CodeMalformed},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status || tc.err.Code != tc.code {
			t.Fatalf("got status=%d code=%q want status=%d code=%q", tc.err.Status, tc.err.Code, tc.status, tc.code)
		}
	}
}

func TestErrorsIsMatchesByCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get lesson: %w", NotFound("Lesson not found"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is to match ErrNotFound")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("did not expect a conflict match")
	}
	if got := StatusOf(err); got != http.StatusNotFound {
		t.Fatalf("StatusOf: got=%d", got)
	}
	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf plain: got=%d", got)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Upstream(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if err.Error() != cause.Error() {
		t.Fatalf("Error(): got=%q", err.Error())
	}
}
