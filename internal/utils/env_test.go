package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "42")
	if got := GetEnvAsInt("TEST_INT_VAR", 7, nil); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := GetEnvAsInt("TEST_INT_MISSING", 7, nil); got != 7 {
		t.Fatalf("expected the default, got %d", got)
	}
	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := GetEnvAsInt("TEST_INT_BAD", 7, nil); got != 7 {
		t.Fatalf("unparseable values fall back to the default, got %d", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "90")
	if got := GetEnvAsDuration("TEST_TTL", time.Hour, nil); got != 90*time.Second {
		t.Fatalf("expected 90s, got %s", got)
	}
	if got := GetEnvAsDuration("TEST_TTL_MISSING", time.Hour, nil); got != time.Hour {
		t.Fatalf("expected the default, got %s", got)
	}
}
