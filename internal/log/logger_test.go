package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentflowhq/agentflow/internal/errors"
)

func testConfig(buf *bytes.Buffer, level Level, format Format) Config {
	return Config{
		Level:  level,
		Format: format,
		Output: NewOutput(buf),
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelWarn, FormatText))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()

	if strings.Contains(out, "debug message") {
		t.Errorf("debug message should be filtered at WARN level")
	}
	if strings.Contains(out, "info message") {
		t.Errorf("info message should be filtered at WARN level")
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message should be logged")
	}
	if !strings.Contains(out, "error message") {
		t.Errorf("error message should be logged")
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelInfo, FormatJSON))

	logger.Info("structured message", "agent", "devops")

	out := buf.String()
	if !strings.Contains(out, `"msg":"structured message"`) {
		t.Errorf("expected JSON output, got: %s", out)
	}
	if !strings.Contains(out, `"agent":"devops"`) {
		t.Errorf("expected agent attribute, got: %s", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(testConfig(&buf, LevelInfo, FormatJSON))

	err := errors.NewPathTraversalError("../x.md", "/x.md", "/base")
	logger.WithError(err).Error("build failed")

	out := buf.String()
	if !strings.Contains(out, "SEC-001") {
		t.Errorf("expected error code in output, got: %s", out)
	}
	if !strings.Contains(out, "/base") {
		t.Errorf("expected allowed path context in output, got: %s", out)
	}
}

func TestWithErrorNil(t *testing.T) {
	logger := Default()
	if logger.WithError(nil) != logger {
		t.Errorf("WithError(nil) should return the same logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
