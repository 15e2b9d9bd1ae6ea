package instrument

import "sync/atomic"

var silent atomic.Bool

// SetSilent suppresses or restores instrumentation events process-wide.
// Wrapped callables keep forwarding (and keep depth accounting) while
// silent; only event emission stops. Returns the previous setting.
func SetSilent(on bool) bool {
	return silent.Swap(on)
}

// Silent reports whether event emission is currently suppressed.
func Silent() bool {
	return silent.Load()
}
