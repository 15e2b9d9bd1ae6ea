package logging

import "errors"

// Configuration errors. All validation failures wrap ErrInvalidConfig so
// callers can test with a single errors.Is.
var (
	// ErrInvalidConfig indicates a malformed or inconsistent specification.
	// Configure never installs partial state when this is returned.
	ErrInvalidConfig = errors.New("logging: invalid configuration")

	// ErrUnknownSeverity indicates a severity name outside the recognized set.
	ErrUnknownSeverity = errors.New("logging: unknown severity")
)

// Runtime errors.
var (
	// ErrSinkWrite indicates a sink failed to write an event. It is contained
	// inside the delivery path: the sink is disabled and a single warning is
	// routed through the root handlers. It never escapes to the application.
	ErrSinkWrite = errors.New("logging: sink write failed")
)

// Handler kinds accepted in a specification.
const (
	KindConsoleSimple   = "console-simple"
	KindConsoleDetailed = "console-detailed"
	KindFile            = "file"
)

// Stream targets accepted for console handlers.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)
