package logging

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Event is one log record in flight between a logger handle and its sinks.
type Event struct {
	Time     time.Time
	Name     string
	Severity Severity
	Message  string
	File     string
	Line     int
}

// DefaultDateFormat renders asctime when a formatter declares no datefmt.
const DefaultDateFormat = "2006-01-02 15:04:05"

// Built-in layouts selected when a handler names no formatter.
const (
	simpleFormat   = "%(message)s"
	detailedFormat = "%(asctime)s %(name)s %(levelname)s %(filename)s:%(lineno)d %(message)s"
)

// segment is one compiled piece of a format template: either a literal or a
// field reference.
type segment struct {
	literal string
	key     string
}

var formatKeys = map[string]bool{
	"asctime":   true,
	"name":      true,
	"levelname": true,
	"message":   true,
	"filename":  true,
	"lineno":    true,
}

// parseFormat compiles a %(key)s template. Recognized keys: asctime, name,
// levelname, message, filename, lineno. An empty template compiles to the
// detailed layout.
func parseFormat(format string) ([]segment, error) {
	if format == "" {
		format = detailedFormat
	}

	var segs []segment
	rest := format
	for {
		i := strings.Index(rest, "%(")
		if i < 0 {
			break
		}
		j := strings.Index(rest[i:], ")")
		if j < 0 {
			return nil, fmt.Errorf("%w: unterminated format key in %q", ErrInvalidConfig, format)
		}
		// Verb character follows the closing paren: %(key)s or %(lineno)d.
		end := i + j + 1
		if end >= len(rest) || (rest[end] != 's' && rest[end] != 'd') {
			return nil, fmt.Errorf("%w: format key missing verb in %q", ErrInvalidConfig, format)
		}
		key := rest[i+2 : i+j]
		if !formatKeys[key] {
			return nil, fmt.Errorf("%w: unknown format key %q in %q", ErrInvalidConfig, key, format)
		}
		if i > 0 {
			segs = append(segs, segment{literal: rest[:i]})
		}
		segs = append(segs, segment{key: key})
		rest = rest[end+1:]
	}
	if rest != "" {
		segs = append(segs, segment{literal: rest})
	}
	return segs, nil
}

// formatter renders events into lines. Immutable once built.
type formatter struct {
	segs       []segment
	dateLayout string
}

func newFormatter(spec FormatterSpec) (*formatter, error) {
	segs, err := parseFormat(spec.Format)
	if err != nil {
		return nil, err
	}
	layout := spec.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return &formatter{segs: segs, dateLayout: layout}, nil
}

func builtinFormatter(format string) *formatter {
	segs, err := parseFormat(format)
	if err != nil {
		// Built-in templates are compile-time constants.
		panic(err)
	}
	return &formatter{segs: segs, dateLayout: DefaultDateFormat}
}

func (f *formatter) render(e Event) string {
	var b strings.Builder
	for _, seg := range f.segs {
		if seg.key == "" {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.key {
		case "asctime":
			b.WriteString(e.Time.Format(f.dateLayout))
		case "name":
			b.WriteString(e.Name)
		case "levelname":
			b.WriteString(e.Severity.String())
		case "message":
			b.WriteString(e.Message)
		case "filename":
			b.WriteString(e.File)
		case "lineno":
			b.WriteString(strconv.Itoa(e.Line))
		}
	}
	return b.String()
}
