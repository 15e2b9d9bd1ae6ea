package instrument

import (
	"reflect"
	"sync"
)

// funcKey identifies a callable. Identity is the function's code pointer
// plus its bound name: two distinct callables sharing a name get distinct
// keys, and the same callable bound under two names is wrapped under each.
type funcKey struct {
	ptr  uintptr
	name string
}

func keyOf(name string, fn Func) funcKey {
	return funcKey{ptr: reflect.ValueOf(fn).Pointer(), name: name}
}

// Registry tracks which callables are already wrapped so that instrumenting
// a module twice never stacks wrappers. Entries live for the process
// lifetime; Reset exists strictly for test isolation.
type Registry struct {
	mu sync.Mutex
	// wrapped maps an original callable to its wrapper.
	wrapped map[funcKey]Func
	// wrappers records the identities of wrappers themselves, so a module
	// that already went through Instrument passes through untouched.
	wrappers map[funcKey]bool
}

// NewRegistry creates an empty registry. Most callers use the process-wide
// default; a private registry is for tests that need isolation from it.
func NewRegistry() *Registry {
	return &Registry{
		wrapped:  make(map[funcKey]Func),
		wrappers: make(map[funcKey]bool),
	}
}

// defaultRegistry is the process-wide wrapped-identity set.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when Instrument is
// called without WithRegistry.
func DefaultRegistry() *Registry { return defaultRegistry }

// wrapOnce returns the wrapper for fn under name, building it with mk at
// most once. If fn is itself a known wrapper it is returned as-is.
func (r *Registry) wrapOnce(name string, fn Func, mk func(Func) Func) Func {
	k := keyOf(name, fn)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wrappers[k] {
		return fn
	}
	if w, ok := r.wrapped[k]; ok {
		return w
	}

	w := mk(fn)
	r.wrapped[k] = w
	r.wrappers[keyOf(name, w)] = true
	return w
}

// Reset forgets every wrapped identity. Subsequent Instrument calls wrap
// afresh. Test use only; never call it in production code, or previously
// instrumented modules will be wrapped a second time.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wrapped = make(map[funcKey]Func)
	r.wrappers = make(map[funcKey]bool)
}

// Len reports the number of wrapped originals.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.wrapped)
}
