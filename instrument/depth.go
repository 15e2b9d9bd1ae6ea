package instrument

import "context"

type depthKey struct{}

// Depth reports the nesting depth of the current logical call stack: zero
// outside any instrumented call, incremented once per active wrapper frame.
// Depth travels through the context, so independent stacks (goroutines,
// tasks) never observe or perturb each other's counters.
func Depth(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	if d, ok := ctx.Value(depthKey{}).(int); ok {
		return d
	}
	return 0
}

func withDepth(ctx context.Context, d int) context.Context {
	return context.WithValue(ctx, depthKey{}, d)
}
