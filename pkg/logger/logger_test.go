package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("expected warn and error messages: %q", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.Warn("before")
	l.SetLevel(LevelDebug)
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("warn at error level leaked: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("debug at debug level missing: %q", out)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.SetPrefix("test-prefix")

	l.Info("value=%d", 42)

	out := buf.String()
	if !strings.Contains(out, "test-prefix") {
		t.Errorf("missing prefix: %q", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("missing level tag: %q", out)
	}
	if !strings.Contains(out, "value=42") {
		t.Errorf("format args not applied: %q", out)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelNone, ""},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q; want %q", tt.level, got, tt.want)
		}
	}
}

func TestDefaultLogger_Disable(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	prev.SetOutput(&buf)
	defer func() {
		prev.SetOutput(os.Stderr)
		prev.SetLevel(LevelWarn)
	}()

	Disable()
	Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote: %q", buf.String())
	}

	SetLevel(LevelWarn)
	Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected message after re-enable: %q", buf.String())
	}
}
