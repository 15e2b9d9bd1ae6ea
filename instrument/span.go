package instrument

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startSpan opens one span per intercepted call. Span names are
// deterministic: call.<name>.
func startSpan(tr trace.Tracer, ctx context.Context, name string, depth int) (context.Context, trace.Span) {
	return tr.Start(ctx, "call."+name,
		trace.WithAttributes(
			attribute.String("call.name", name),
			attribute.Int("call.depth", depth),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// endSpan closes the span, recording the call's error if any.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
