package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validSpec = `
formatters:
  brief:
    format: "%(levelname)s %(message)s"
  full:
    format: "%(asctime)s %(name)s %(levelname)s %(filename)s:%(lineno)d %(message)s"
    datefmt: "15:04:05"
handlers:
  console:
    kind: console-simple
    stream: stdout
    formatter: brief
  errors:
    kind: console-detailed
    stream: stderr
    level: ERROR
  logfile:
    kind: file
    path: trace.log
    formatter: full
loggers:
  svc:
    level: DEBUG
    handlers: [console]
    propagate: false
root:
  level: INFO
  handlers: [errors]
`

func TestLoad_ValidSpec(t *testing.T) {
	cfg, err := Load([]byte(validSpec))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Formatters) != 2 {
		t.Errorf("expected 2 formatters, got %d", len(cfg.Formatters))
	}
	if len(cfg.Handlers) != 3 {
		t.Errorf("expected 3 handlers, got %d", len(cfg.Handlers))
	}
	svc, ok := cfg.Loggers["svc"]
	if !ok {
		t.Fatal("logger svc missing")
	}
	if svc.propagate() {
		t.Error("svc should not propagate")
	}
	if cfg.Loggers["svc"].Level != "DEBUG" {
		t.Errorf("expected svc level DEBUG, got %q", svc.Level)
	}
}

func TestLoad_PropagateDefaultsTrue(t *testing.T) {
	cfg, err := Load([]byte(`
handlers:
  console:
    kind: console-simple
loggers:
  svc:
    handlers: [console]
root:
  handlers: [console]
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Loggers["svc"].propagate() {
		t.Error("unset propagate should default to true")
	}
}

func TestLoad_UndefinedFormatterRef(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  console:
    kind: console-simple
    formatter: nope
root:
  handlers: [console]
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_UndefinedHandlerRef(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  console:
    kind: console-simple
loggers:
  svc:
    handlers: [missing]
root:
  handlers: [console]
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	_, err = Load([]byte(`
root:
  handlers: [missing]
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for root ref, got %v", err)
	}
}

func TestLoad_UnknownSeverityName(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  console:
    kind: console-simple
loggers:
  svc:
    level: VERBOSE
    handlers: [console]
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("expected ErrUnknownSeverity in chain, got %v", err)
	}
}

func TestLoad_UnknownHandlerKind(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  sock:
    kind: syslog
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_UnknownStream(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  console:
    kind: console-simple
    stream: tty
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_FileHandlerRequiresPath(t *testing.T) {
	_, err := Load([]byte(`
handlers:
  logfile:
    kind: file
`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load([]byte("handlers: ["))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yml")
	if err := os.WriteFile(path, []byte(validSpec), 0o644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, ok := cfg.Handlers["logfile"]; !ok {
		t.Error("logfile handler missing")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
