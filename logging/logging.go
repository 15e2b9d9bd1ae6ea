package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// route is a resolved LoggerSpec: the floor and handler set one logger name
// dispatches through.
type route struct {
	floor     Severity
	handlers  []*handler
	propagate bool
}

// state is one fully-resolved configuration. It is immutable after
// buildState returns; reconfiguration installs a whole new state, so readers
// observe either the old wiring or the new one, never a mix.
type state struct {
	cfg      *Config
	handlers map[string]*handler
	routes   map[string]route
	root     route
}

var (
	// configMu serializes Configure calls. Emitters never take it; they read
	// the current state through the atomic pointer.
	configMu sync.Mutex
	current  atomic.Pointer[state]
)

func init() {
	current.Store(defaultState())
}

// defaultState is in effect before the first Configure: a detailed console
// sink on stderr at INFO.
func defaultState() *state {
	h := &handler{
		name:      "default-console",
		kind:      KindConsoleDetailed,
		floor:     SeverityDebug,
		formatter: builtinFormatter(detailedFormat),
		w:         os.Stderr,
	}
	return &state{
		handlers: map[string]*handler{h.name: h},
		routes:   map[string]route{},
		root:     route{floor: DefaultSeverity, handlers: []*handler{h}},
	}
}

func buildState(cfg *Config) (*state, error) {
	fmts := make(map[string]*formatter, len(cfg.Formatters))
	for name, fs := range cfg.Formatters {
		f, err := newFormatter(fs)
		if err != nil {
			return nil, fmt.Errorf("formatter %q: %w", name, err)
		}
		fmts[name] = f
	}

	handlers := make(map[string]*handler, len(cfg.Handlers))
	for name, hs := range cfg.Handlers {
		h, err := newHandler(name, hs, fmts)
		if err != nil {
			return nil, fmt.Errorf("handler %q: %w", name, err)
		}
		handlers[name] = h
	}

	rootFloor, err := parseFloor(cfg.Root.Level, DefaultSeverity)
	if err != nil {
		return nil, err
	}
	root := route{floor: rootFloor}
	for _, name := range cfg.Root.Handlers {
		root.handlers = append(root.handlers, handlers[name])
	}

	routes := make(map[string]route, len(cfg.Loggers))
	for name, ls := range cfg.Loggers {
		floor, err := parseFloor(ls.Level, rootFloor)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", name, err)
		}
		rt := route{floor: floor, propagate: ls.propagate()}
		for _, h := range ls.Handlers {
			rt.handlers = append(rt.handlers, handlers[h])
		}
		routes[name] = rt
	}

	return &state{cfg: cfg, handlers: handlers, routes: routes, root: root}, nil
}

// Configure parses src and installs it as the process-wide configuration.
//
// The first successful call establishes routing for every logger handle;
// later calls with a different specification atomically swap it, and calls
// with a deep-equal specification are a no-op. A malformed specification
// returns an error wrapping ErrInvalidConfig and installs nothing. Sinks
// that cannot be opened degrade to no-ops with one warning through the root
// handlers; they never fail Configure.
func Configure(src []byte) error {
	cfg, err := Load(src)
	if err != nil {
		return err
	}
	return install(cfg)
}

// ConfigureFile is Configure reading the specification from a file.
func ConfigureFile(path string) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	return install(cfg)
}

func install(cfg *Config) error {
	configMu.Lock()
	defer configMu.Unlock()

	if old := current.Load(); old.cfg != nil && reflect.DeepEqual(old.cfg, cfg) {
		return nil
	}

	st, err := buildState(cfg)
	if err != nil {
		return err
	}

	old := current.Swap(st)

	for _, h := range st.handlers {
		if h.openErr != nil {
			st.warnRoot(h, h.openErr)
		}
	}

	old.closeAll()
	return nil
}

// reset restores the built-in default state. Test use only.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	old := current.Swap(defaultState())
	old.closeAll()
}

func (st *state) closeAll() {
	for _, h := range st.handlers {
		h.close()
	}
}

// dispatch routes one event by logger name. Unknown names fall back to the
// root handlers at INFO. A handler instance is written at most once per
// event, whether it repeats on one route or appears on both the named route
// and the root.
func (st *state) dispatch(name string, ev Event) {
	rt, ok := st.routes[name]
	switch {
	case ok:
	case name == "" || name == "root":
		rt = route{floor: st.root.floor, handlers: st.root.handlers}
	default:
		rt = route{floor: DefaultSeverity, handlers: st.root.handlers}
	}

	if ev.Severity < rt.floor {
		return
	}

	seen := make(map[*handler]bool, len(rt.handlers)+len(st.root.handlers))
	deliver := func(hs []*handler) {
		for _, h := range hs {
			if seen[h] {
				continue
			}
			seen[h] = true
			if err := h.emit(ev); err != nil {
				st.degrade(h, err)
			}
		}
	}

	deliver(rt.handlers)
	if rt.propagate {
		deliver(st.root.handlers)
	}
}

// degrade disables a failed handler and reports it once through the
// remaining root handlers. Logging failures stay inside the logging path.
func (st *state) degrade(h *handler, err error) {
	if !h.disabled.CompareAndSwap(false, true) {
		return
	}
	st.warnRoot(h, err)
}

func (st *state) warnRoot(h *handler, err error) {
	ev := Event{
		Time:     time.Now(),
		Name:     "root",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("sink disabled: %v", err),
	}
	for _, rh := range st.root.handlers {
		if rh == h {
			continue
		}
		if err := rh.emit(ev); err != nil {
			st.degrade(rh, err)
		}
	}
}

// Field is one structured key/value attached to a log call.
type Field struct {
	Key   string
	Value any
}

// Logger is a thin routing handle. Handles obtained before a Configure swap
// re-resolve against the current state on every emit; two handles for the
// same name behave identically.
type Logger struct {
	name string
}

// GetLogger returns a handle for the named logger. It never fails: names
// absent from the configuration route to the root handlers at INFO.
func GetLogger(name string) *Logger {
	return &Logger{name: name}
}

// Name returns the logger name this handle routes under.
func (l *Logger) Name() string { return l.name }

func (l *Logger) Debug(msg string, fields ...Field)    { l.log(SeverityDebug, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)     { l.log(SeverityInfo, msg, fields) }
func (l *Logger) Warning(msg string, fields ...Field)  { l.log(SeverityWarning, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field)    { l.log(SeverityError, msg, fields) }
func (l *Logger) Critical(msg string, fields ...Field) { l.log(SeverityCritical, msg, fields) }

func (l *Logger) log(sev Severity, msg string, fields []Field) {
	st := current.Load()

	if len(fields) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		for _, f := range fields {
			b.WriteString(" ")
			b.WriteString(f.Key)
			b.WriteString("=")
			fmt.Fprintf(&b, "%v", f.Value)
		}
		msg = b.String()
	}

	// Skip log and the exported level method to reach the application frame.
	file := "???"
	line := 0
	if _, f, ln, ok := runtime.Caller(2); ok {
		file = filepath.Base(f)
		line = ln
	}

	st.dispatch(l.name, Event{
		Time:     time.Now(),
		Name:     l.name,
		Severity: sev,
		Message:  msg,
		File:     file,
		Line:     line,
	})
}
