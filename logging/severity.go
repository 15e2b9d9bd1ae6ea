package logging

import (
	"fmt"
	"strings"
)

// Severity is the importance of a log event. Loggers and handlers drop
// events below their severity floor.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// DefaultSeverity is the floor applied when a specification leaves a level
// unset and when severity resolution finds no override.
const DefaultSeverity = SeverityInfo

// ParseSeverity parses a severity name. Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return SeverityDebug, nil
	case "INFO":
		return SeverityInfo, nil
	case "WARNING":
		return SeverityWarning, nil
	case "ERROR":
		return SeverityError, nil
	case "CRITICAL":
		return SeverityCritical, nil
	default:
		return DefaultSeverity, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// parseFloor parses an optional severity from a specification field,
// falling back to def when the field is empty.
func parseFloor(s string, def Severity) (Severity, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	sev, err := ParseSeverity(s)
	if err != nil {
		return def, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return sev, nil
}
