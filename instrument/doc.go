// Package instrument transparently wraps named callables to emit structured
// entry/exit trace events.
//
// It is the interception half of tracekit: callers hand Instrument a Module
// (named function bindings) and get back a module whose members log every
// invocation (arguments, nesting depth, duration, result or error) through
// the logging package, optionally alongside OpenTelemetry spans and
// metrics. Wrapped callables return exactly what the originals return and
// propagate errors and panics unchanged.
package instrument
