package logging

import (
	"errors"
	"testing"
)

func TestExpandPath_BracedVar(t *testing.T) {
	t.Setenv("TRACEKIT_LOG_DIR", "/var/log/app")
	got, err := expandPath("${TRACEKIT_LOG_DIR}/trace.log")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	if got != "/var/log/app/trace.log" {
		t.Errorf("expected expanded path, got %q", got)
	}
}

func TestExpandPath_MissingVar(t *testing.T) {
	_, err := expandPath("${TRACEKIT_UNSET_VAR_FOR_TEST}/trace.log")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestExpandPath_DollarEscape(t *testing.T) {
	got, err := expandPath("/logs/$$weird/trace.log")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	if got != "/logs/$weird/trace.log" {
		t.Errorf("expected literal dollar, got %q", got)
	}
}

func TestExpandPath_NoVars(t *testing.T) {
	got, err := expandPath("trace.log")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	if got != "trace.log" {
		t.Errorf("expected unchanged path, got %q", got)
	}
}
