package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "value")
	if got := envOrDefault("CFG_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
	if got := envOrDefault("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_DUR", "150ms")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Fatalf("expected 150ms, got %v", got)
	}

	t.Setenv("CFG_TEST_DUR_NEG", "-3s")
	if got := durationEnvOrDefault("CFG_TEST_DUR_NEG", time.Second); got != time.Second {
		t.Fatalf("expected non-positive duration to fall back, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "7")
	if got := intEnvOrDefault("CFG_TEST_INT", 1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	t.Setenv("CFG_TEST_INT_BAD", "seven")
	if got := intEnvOrDefault("CFG_TEST_INT_BAD", 1); got != 1 {
		t.Fatalf("expected fallback, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"no":    false,
	}
	for raw, want := range cases {
		t.Setenv("CFG_TEST_BOOL", raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", !want); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
}
