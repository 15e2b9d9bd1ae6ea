package instrument

import (
	"errors"
	"time"
)

var (
	// ErrNotInstrumentable indicates a target that cannot be wrapped: a nil
	// module or a nil callable binding. This is a programming error in the
	// caller; it is returned, never routed through the logging path.
	ErrNotInstrumentable = errors.New("instrument: target is not instrumentable")

	// ErrInvalidPattern indicates a malformed include/exclude glob.
	ErrInvalidPattern = errors.New("instrument: invalid match pattern")
)

// Placeholder replaces argument or result values that cannot be rendered.
// Summarization failures never escape the logging path.
const Placeholder = "<unprintable>"

// DefaultBriefLimit is the byte budget for argument and result summaries.
const DefaultBriefLimit = 280

// DefaultSlowThreshold is the elapsed duration beyond which an exit event's
// duration is flagged with SlowMarker.
const DefaultSlowThreshold = 10 * time.Second

// SlowMarker is appended to the rendered duration of a slow call.
const SlowMarker = " !! <== long process !!"

// DefaultLoggerName is the logging resolver name instrumentation events
// route under when no logger is supplied.
const DefaultLoggerName = "trace"
