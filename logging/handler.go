package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// handler is one live sink: a severity floor, a formatter, and a writer.
// Writes are serialized per handler; independent handlers never contend.
type handler struct {
	name      string
	kind      string
	floor     Severity
	formatter *formatter

	mu sync.Mutex
	w  io.Writer

	closer io.Closer

	// disabled flips once, on the first failed write or failed open, after
	// which the handler is a no-op for the rest of the process.
	disabled atomic.Bool

	// openErr carries a build-time degrade reason; the installer reports it
	// through the root handlers exactly once.
	openErr error
}

// newHandler builds a live handler from its spec. Configuration-class
// problems (bad path expansion) return an error; I/O problems degrade the
// handler instead, so a missing log directory never fails Configure.
func newHandler(name string, spec HandlerSpec, formatters map[string]*formatter) (*handler, error) {
	floor, err := parseFloor(spec.Level, SeverityDebug)
	if err != nil {
		return nil, err
	}

	var f *formatter
	if spec.Formatter != "" {
		f = formatters[spec.Formatter]
	} else if spec.Kind == KindConsoleSimple {
		f = builtinFormatter(simpleFormat)
	} else {
		f = builtinFormatter(detailedFormat)
	}

	h := &handler{name: name, kind: spec.Kind, floor: floor, formatter: f}

	switch spec.Kind {
	case KindConsoleSimple, KindConsoleDetailed:
		if spec.Stream == StreamStdout {
			h.w = os.Stdout
		} else {
			h.w = os.Stderr
		}

	case KindFile:
		path, err := expandPath(spec.Path)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				h.disabled.Store(true)
				h.openErr = fmt.Errorf("%w: handler %q: %v", ErrSinkWrite, name, err)
				return h, nil
			}
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    spec.MaxSizeMB,
			MaxBackups: spec.MaxBackups,
			MaxAge:     spec.MaxAgeDays,
			Compress:   spec.Compress,
		}
		h.w = lj
		h.closer = lj
	}

	return h, nil
}

// emit renders and writes one event. Events below the handler floor are
// dropped. A write failure returns ErrSinkWrite; the caller disables the
// handler and reports once.
func (h *handler) emit(e Event) error {
	if h.disabled.Load() || e.Severity < h.floor {
		return nil
	}

	line := h.formatter.render(e) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, line); err != nil {
		return fmt.Errorf("%w: handler %q: %v", ErrSinkWrite, h.name, err)
	}
	return nil
}

// close releases file resources. Console handlers are not closable.
func (h *handler) close() {
	if h.closer != nil {
		h.closer.Close()
	}
}
