package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	Info("store registered", "store", "counts", "kind", "key-value")

	out := buf.String()
	if !strings.Contains(out, "store registered") {
		t.Errorf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "store=counts") {
		t.Errorf("missing field in output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "WARN", "text")

	Debug("debug message")
	Info("info message")
	Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("low-severity messages leaked through: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "ERROR", "text")

	Info("suppressed")
	SetLevel("DEBUG")
	Debug("visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("suppressed message leaked through: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("debug message missing after SetLevel: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "json")

	Info("hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}
