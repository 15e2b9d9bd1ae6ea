package logging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatterSpec describes a line layout. Format is a %(key)s template (see
// formatter.go for the recognized keys); DateFormat is a Go time layout for
// the asctime key. Both are optional.
type FormatterSpec struct {
	Format     string `yaml:"format"`
	DateFormat string `yaml:"datefmt"`
}

// HandlerSpec describes one configured sink.
//
// Kind selects console-simple, console-detailed, or file. Level is the
// handler's severity floor; empty passes everything the owning logger
// forwards. Formatter names a FormatterSpec; empty selects the kind's
// built-in layout. Stream (console kinds) is stdout or stderr, defaulting to
// stderr. Path (file kind, required) is the target file; ${VAR} references
// are expanded from the environment.
type HandlerSpec struct {
	Kind      string `yaml:"kind"`
	Level     string `yaml:"level"`
	Formatter string `yaml:"formatter"`
	Stream    string `yaml:"stream"`
	Path      string `yaml:"path"`

	// Rotation knobs for file handlers, in lumberjack's units.
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// LoggerSpec describes one named logical logger. Level is its severity
// floor; empty inherits the root floor. Propagate controls whether events
// also flow to the root handlers; unset means true.
type LoggerSpec struct {
	Level     string   `yaml:"level"`
	Handlers  []string `yaml:"handlers"`
	Propagate *bool    `yaml:"propagate"`
}

// RootSpec is the fallback logger for unnamed and unmatched loggers.
type RootSpec struct {
	Level    string   `yaml:"level"`
	Handlers []string `yaml:"handlers"`
}

// Config is the full declarative logging specification.
type Config struct {
	Formatters map[string]FormatterSpec `yaml:"formatters"`
	Handlers   map[string]HandlerSpec   `yaml:"handlers"`
	Loggers    map[string]LoggerSpec    `yaml:"loggers"`
	Root       RootSpec                 `yaml:"root"`
}

// Load parses and validates a YAML specification.
func Load(src []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(src, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a specification file.
func LoadFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}
	return Load(src)
}

// Validate checks internal consistency: severity names, handler kinds and
// stream targets, formatter templates, and every cross-reference between
// loggers, handlers, and formatters.
func (c *Config) Validate() error {
	for name, fs := range c.Formatters {
		if _, err := parseFormat(fs.Format); err != nil {
			return fmt.Errorf("formatter %q: %w", name, err)
		}
	}

	for name, hs := range c.Handlers {
		switch hs.Kind {
		case KindConsoleSimple, KindConsoleDetailed:
			switch hs.Stream {
			case "", StreamStdout, StreamStderr:
			default:
				return fmt.Errorf("%w: handler %q: unknown stream %q", ErrInvalidConfig, name, hs.Stream)
			}
		case KindFile:
			if hs.Path == "" {
				return fmt.Errorf("%w: handler %q: file handler requires a path", ErrInvalidConfig, name)
			}
		default:
			return fmt.Errorf("%w: handler %q: unknown kind %q", ErrInvalidConfig, name, hs.Kind)
		}

		if hs.Formatter != "" {
			if _, ok := c.Formatters[hs.Formatter]; !ok {
				return fmt.Errorf("%w: handler %q references undefined formatter %q",
					ErrInvalidConfig, name, hs.Formatter)
			}
		}
		if _, err := parseFloor(hs.Level, SeverityDebug); err != nil {
			return fmt.Errorf("handler %q: %w", name, err)
		}
	}

	for name, ls := range c.Loggers {
		for _, h := range ls.Handlers {
			if _, ok := c.Handlers[h]; !ok {
				return fmt.Errorf("%w: logger %q references undefined handler %q",
					ErrInvalidConfig, name, h)
			}
		}
		if _, err := parseFloor(ls.Level, DefaultSeverity); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}
	}

	for _, h := range c.Root.Handlers {
		if _, ok := c.Handlers[h]; !ok {
			return fmt.Errorf("%w: root references undefined handler %q", ErrInvalidConfig, h)
		}
	}
	if _, err := parseFloor(c.Root.Level, DefaultSeverity); err != nil {
		return fmt.Errorf("root: %w", err)
	}

	return nil
}

// propagate reports the effective propagate flag for a logger spec.
func (ls LoggerSpec) propagate() bool {
	return ls.Propagate == nil || *ls.Propagate
}
