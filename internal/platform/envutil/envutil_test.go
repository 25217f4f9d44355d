package envutil

import (
	"testing"
	"time"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	if got := Int("X_INT", 7); got != 7 {
		t.Fatalf("Int: got=%d", got)
	}
	t.Setenv("X_INT", " 12 ")
	if got := Int("X_INT", 7); got != 12 {
		t.Fatalf("Int: got=%d", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("X_BOOL", "off")
	if Bool("X_BOOL", true) {
		t.Fatalf("expected false")
	}
	t.Setenv("X_BOOL", "maybe")
	if !Bool("X_BOOL", true) {
		t.Fatalf("expected default")
	}
}

func TestSecondsAndFloat(t *testing.T) {
	t.Setenv("X_SECS", "5")
	if got := Seconds("X_SECS", time.Minute); got != 5*time.Second {
		t.Fatalf("Seconds: got=%v", got)
	}
	t.Setenv("X_SECS", "-1")
	if got := Seconds("X_SECS", time.Minute); got != time.Minute {
		t.Fatalf("Seconds negative: got=%v", got)
	}
	t.Setenv("X_RATIO", "0.25")
	if got := Float("X_RATIO", 1); got != 0.25 {
		t.Fatalf("Float: got=%v", got)
	}
}

func TestCSVAndFirst(t *testing.T) {
	t.Setenv("X_LIST", " a, ,b ,")
	got := CSV("X_LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("CSV: got=%v", got)
	}
	t.Setenv("X_A", "")
	t.Setenv("X_B", "bee")
	if got := First("X_A", "X_B"); got != "bee" {
		t.Fatalf("First: got=%q", got)
	}
	if got := String("X_A", "dflt"); got != "dflt" {
		t.Fatalf("String: got=%q", got)
	}
}
