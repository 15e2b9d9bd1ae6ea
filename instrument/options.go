package instrument

import (
	"fmt"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/tracekit/logging"
)

// EventLogger is the sink for instrumentation events. *logging.Logger
// satisfies it; tests substitute recorders.
type EventLogger interface {
	Debug(msg string, fields ...logging.Field)
	Error(msg string, fields ...logging.Field)
}

// Option configures one Instrument call.
type Option func(*options)

type options struct {
	logger        EventLogger
	include       []string
	exclude       []string
	quiet         map[string]bool
	briefLimit    int
	slowThreshold time.Duration
	tracer        trace.Tracer
	metrics       Metrics
	registry      *Registry

	qs *quietState
}

// quietState collapses consecutive repeats of the same quiet entry line.
// Shared by every wrapper built from one Instrument call.
type quietState struct {
	mu   sync.Mutex
	last string
}

// next returns the line to emit for a quiet entry, collapsing an immediate
// repeat to "..".
func (q *quietState) next(msg string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.last == msg {
		return ".."
	}
	q.last = msg
	return msg
}

func (q *quietState) clear() {
	q.mu.Lock()
	q.last = ""
	q.mu.Unlock()
}

func newOptions(opts []Option) *options {
	o := &options{
		quiet:         make(map[string]bool),
		briefLimit:    DefaultBriefLimit,
		slowThreshold: DefaultSlowThreshold,
		metrics:       noopMetrics{},
		registry:      defaultRegistry,
		qs:            &quietState{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.GetLogger(DefaultLoggerName)
	}
	return o
}

// WithLogger routes events through the given logger instead of the default
// logging handle.
func WithLogger(l EventLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithInclude wraps only names matching at least one glob pattern. Default:
// all names.
func WithInclude(patterns ...string) Option {
	return func(o *options) { o.include = append(o.include, patterns...) }
}

// WithExclude leaves names matching any glob pattern unwrapped.
func WithExclude(patterns ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, patterns...) }
}

// WithQuiet designates chatty helpers: their entry events render compactly
// as ..name.. (immediate repeats collapse to ..) and their exits carry no
// result summary.
func WithQuiet(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.quiet[n] = true
		}
	}
}

// WithBriefLimit sets the summary byte budget. Zero disables truncation.
func WithBriefLimit(n int) Option {
	return func(o *options) { o.briefLimit = n }
}

// WithSlowThreshold sets the duration beyond which exit events carry the
// slow-call marker.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *options) { o.slowThreshold = d }
}

// WithTracer opens one OpenTelemetry span per intercepted call.
func WithTracer(tr trace.Tracer) Option {
	return func(o *options) { o.tracer = tr }
}

// WithMetrics records per-call counters and durations.
func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRegistry substitutes a private wrapped-identity registry. Test use.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// validatePatterns rejects malformed globs before any wrapping happens.
func (o *options) validatePatterns() error {
	for _, p := range append(append([]string{}, o.include...), o.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

// matches reports whether a binding name is selected for wrapping.
func (o *options) matches(name string) bool {
	if len(o.include) > 0 {
		ok := false
		for _, p := range o.include {
			if m, _ := doublestar.Match(p, name); m {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, p := range o.exclude {
		if m, _ := doublestar.Match(p, name); m {
			return false
		}
	}
	return true
}
