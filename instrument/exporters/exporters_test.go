package exporters

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestSpanExporter_UnknownName(t *testing.T) {
	_, err := NewSpanExporter(context.Background(), "carrier-pigeon")
	if err == nil {
		t.Fatal("expected error for unknown exporter name")
	}
	if !strings.Contains(err.Error(), "unknown span exporter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSpanExporter_Stdout(t *testing.T) {
	exp, err := NewSpanExporter(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout exporter failed: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

func TestSpanExporter_None(t *testing.T) {
	if _, err := NewSpanExporter(context.Background(), "none"); err != nil {
		t.Fatalf("none exporter failed: %v", err)
	}
	if _, err := NewSpanExporter(context.Background(), ""); err != nil {
		t.Fatalf("empty name failed: %v", err)
	}
}

func TestSpanExporter_OtlpRequiresEndpoint(t *testing.T) {
	os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	os.Unsetenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")

	_, err := NewSpanExporter(context.Background(), "otlp")
	if err == nil {
		t.Fatal("expected error without an OTLP endpoint")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "endpoint") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSpanExporter_OtlpWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4317")

	exp, err := NewSpanExporter(context.Background(), "otlp")
	if err != nil {
		t.Fatalf("otlp exporter failed: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

func TestMetricReader_Stdout(t *testing.T) {
	reader, err := NewMetricReader(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout reader failed: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

func TestMetricReader_Prometheus(t *testing.T) {
	reader, err := NewMetricReader(context.Background(), "prometheus")
	if err != nil {
		t.Fatalf("prometheus reader failed: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

func TestMetricReader_None(t *testing.T) {
	if _, err := NewMetricReader(context.Background(), "none"); err != nil {
		t.Fatalf("none reader failed: %v", err)
	}
}

func TestMetricReader_UnknownName(t *testing.T) {
	_, err := NewMetricReader(context.Background(), "abacus")
	if err == nil {
		t.Fatal("expected error for unknown reader name")
	}
	if !strings.Contains(err.Error(), "unknown metric exporter") {
		t.Errorf("unexpected error: %v", err)
	}
}
