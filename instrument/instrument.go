package instrument

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/tracekit/logging"
)

// Func is the callable shape the wrapper understands: context in, one value
// and one error out, arbitrary positional arguments between.
type Func func(ctx context.Context, args ...any) (any, error)

// Module is a target for instrumentation: a mapping from binding name to
// callable, the statically-typed equivalent of a module's public members.
type Module map[string]Func

// Instrument returns a module in which every binding selected by the
// include/exclude patterns is replaced with a tracing wrapper. Unselected
// bindings pass through untouched.
//
// Contract:
//   - Transparency: a wrapper returns exactly what its original returns and
//     propagates errors and panics unchanged.
//   - Idempotence: instrumenting an already-instrumented binding (or the
//     same original a second time) is a no-op, keyed on callable identity,
//     not name.
//   - Containment: failures in the event path (unrenderable arguments,
//     degraded sinks) never surface through the wrapped call.
//
// A nil module or nil binding returns ErrNotInstrumentable.
func Instrument(mod Module, opts ...Option) (Module, error) {
	if mod == nil {
		return nil, fmt.Errorf("%w: nil module", ErrNotInstrumentable)
	}

	o := newOptions(opts)
	if err := o.validatePatterns(); err != nil {
		return nil, err
	}

	out := make(Module, len(mod))
	for name, fn := range mod {
		if fn == nil {
			return nil, fmt.Errorf("%w: binding %q is nil", ErrNotInstrumentable, name)
		}
		if !o.matches(name) {
			out[name] = fn
			continue
		}
		out[name] = o.registry.wrapOnce(name, fn, func(orig Func) Func {
			return o.wrap(name, orig)
		})
	}
	return out, nil
}

// wrap builds the tracing wrapper for one binding.
func (o *options) wrap(name string, original Func) Func {
	return func(ctx context.Context, args ...any) (result any, err error) {
		if ctx == nil {
			ctx = context.Background()
		}
		depth := Depth(ctx)
		callCtx := withDepth(ctx, depth+1)

		if Silent() {
			return original(callCtx, args...)
		}

		o.emitEntry(name, depth, args)

		var span trace.Span
		if o.tracer != nil {
			callCtx, span = startSpan(o.tracer, callCtx, name, depth)
		}

		start := time.Now()
		defer func() {
			elapsed := time.Since(start)
			if p := recover(); p != nil {
				perr := fmt.Errorf("panic: %v", p)
				if span != nil {
					endSpan(span, perr)
				}
				o.metrics.Record(ctx, name, elapsed, perr)
				o.emitError(name, depth, elapsed, perr)
				panic(p)
			}

			if span != nil {
				endSpan(span, err)
			}
			o.metrics.Record(ctx, name, elapsed, err)
			if err != nil {
				o.emitError(name, depth, elapsed, err)
			} else {
				o.emitExit(name, depth, elapsed, result)
			}
		}()

		result, err = original(callCtx, args...)
		return result, err
	}
}

func (o *options) emitEntry(name string, depth int, args []any) {
	if o.quiet[name] {
		msg := o.qs.next(".." + name + "..")
		o.logger.Debug(indentation(depth)+msg, logging.Field{Key: "depth", Value: depth})
		return
	}
	o.qs.clear()

	msg := fmt.Sprintf("%s{ (%s)", name, summarizeArgs(args, o.briefLimit))
	o.logger.Debug(indentation(depth)+msg, logging.Field{Key: "depth", Value: depth})
}

func (o *options) emitExit(name string, depth int, elapsed time.Duration, result any) {
	if o.quiet[name] {
		o.logger.Debug(indentation(depth)+".."+name+"}..",
			logging.Field{Key: "depth", Value: depth})
		return
	}

	msg := fmt.Sprintf("%s} < result: %s>", name, summarize(result, o.briefLimit))
	o.logger.Debug(indentation(depth)+msg,
		logging.Field{Key: "depth", Value: depth},
		logging.Field{Key: "duration", Value: o.renderDuration(elapsed)},
	)
}

func (o *options) emitError(name string, depth int, elapsed time.Duration, err error) {
	msg := fmt.Sprintf("EXCEPTION in call to %s}", name)
	o.logger.Error(indentation(depth)+msg,
		logging.Field{Key: "depth", Value: depth},
		logging.Field{Key: "duration", Value: o.renderDuration(elapsed)},
		logging.Field{Key: "error", Value: summarize(err, o.briefLimit)},
	)
}

func (o *options) renderDuration(elapsed time.Duration) string {
	s := formatDuration(elapsed)
	if elapsed >= o.slowThreshold {
		s += SlowMarker
	}
	return s
}
