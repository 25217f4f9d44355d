package logger

import (
	"strings"
	"testing"
)

func TestSanitizeValueRedactsSecrets(t *testing.T) {
	cases := []struct {
		key  string
		val  interface{}
		want interface{}
	}{
		{key: "password", val: "hunter2", want: "[REDACTED]"},
		{key: "access_token", val: "abc", want: "[REDACTED]"},
		{key: "email", val: "a@b.c", want: "[REDACTED]"},
		{key: "topic", val: "past tense", want: "past tense"},
		{key: "count", val: 3, want: 3},
	}
	for _, tc := range cases {
		if got := sanitizeValue(tc.key, tc.val); got != tc.want {
			t.Fatalf("sanitizeValue(%q): got=%v want=%v", tc.key, got, tc.want)
		}
	}
}

func TestSanitizeValueHashesUserID(t *testing.T) {
	got, ok := sanitizeValue("user_id", "42").(string)
	if !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("expected hashed user id, got %v", got)
	}
	if got == "42" {
		t.Fatalf("user id leaked")
	}
}

func TestSanitizeValueRedactsJWTLookingStrings(t *testing.T) {
	jwt := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhQGIuYyJ9.signature"
	if got := sanitizeValue("detail", jwt); got != "[REDACTED]" {
		t.Fatalf("expected jwt redaction, got %v", got)
	}
}

func TestNewTestModeIsQuiet(t *testing.T) {
	log, err := New("test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.With("service", "x").Info("hello", "k", "v")
	log.Sync()
}
