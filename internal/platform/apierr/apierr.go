package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes rendered in the JSON error envelope.
const (
	CodeUnauthorized    = "unauthorized"
	CodeConflict        = "conflict"
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeUpstream        = "upstream_error"
	CodeMalformed       = "malformed_upstream_data"
	CodeInternal        = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by code so callers can write errors.Is(err, apierr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Sentinels for errors.Is checks.
var (
	ErrUnauthorized = &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized}
	ErrConflict     = &Error{Status: http.StatusBadRequest, Code: CodeConflict}
	ErrNotFound     = &Error{Status: http.StatusNotFound, Code: CodeNotFound}
	ErrInvalid      = &Error{Status: http.StatusBadRequest, Code: CodeInvalidArgument}
	ErrUpstream     = &Error{Status: http.StatusInternalServerError, Code: CodeUpstream}
	ErrMalformed    = &Error{Status: http.StatusInternalServerError, Code: CodeMalformed}
)

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, errors.New(msg))
}

// Conflict maps to 400 to keep the public contract of the registration endpoint.
func Conflict(msg string) *Error {
	return New(http.StatusBadRequest, CodeConflict, errors.New(msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

func InvalidArgument(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidArgument, err)
}

func Upstream(err error) *Error {
	return New(http.StatusInternalServerError, CodeUpstream, err)
}

func Malformed(err error) *Error {
	return New(http.StatusInternalServerError, CodeMalformed, err)
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}
