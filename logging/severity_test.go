package logging

import (
	"errors"
	"testing"
)

func TestParseSeverity_RecognizedSet(t *testing.T) {
	cases := map[string]Severity{
		"DEBUG":    SeverityDebug,
		"INFO":     SeverityInfo,
		"WARNING":  SeverityWarning,
		"ERROR":    SeverityError,
		"CRITICAL": SeverityCritical,
	}
	for name, want := range cases {
		got, err := ParseSeverity(name)
		if err != nil {
			t.Fatalf("ParseSeverity(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseSeverity_CaseInsensitive(t *testing.T) {
	got, err := ParseSeverity("warning")
	if err != nil {
		t.Fatalf("ParseSeverity failed: %v", err)
	}
	if got != SeverityWarning {
		t.Errorf("expected WARNING, got %v", got)
	}

	got, err = ParseSeverity("  Error ")
	if err != nil {
		t.Fatalf("ParseSeverity failed: %v", err)
	}
	if got != SeverityError {
		t.Errorf("expected ERROR, got %v", got)
	}
}

func TestParseSeverity_Unknown(t *testing.T) {
	if _, err := ParseSeverity("TRACE"); !errors.Is(err, ErrUnknownSeverity) {
		t.Errorf("expected ErrUnknownSeverity, got %v", err)
	}
}

func TestSeverity_Ordering(t *testing.T) {
	order := []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("%v should sort below %v", order[i-1], order[i])
		}
	}
}

func TestSeverity_String(t *testing.T) {
	if s := SeverityCritical.String(); s != "CRITICAL" {
		t.Errorf("expected CRITICAL, got %q", s)
	}
	if s := Severity(42).String(); s != "SEVERITY(42)" {
		t.Errorf("expected SEVERITY(42), got %q", s)
	}
}
