package tslog

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := (&Config{Level: slog.LevelInfo, NoColor: true, NoTime: true}).NewLogger(&buf)

	if logger.Enabled(slog.LevelDebug) {
		t.Error("Enabled(LevelDebug) = true, want false")
	}
	if !logger.Enabled(slog.LevelInfo) {
		t.Error("Enabled(LevelInfo) = false, want true")
	}

	logger.Debug("dropped")
	logger.Info("kept", slog.String("key", "value"))
	logger.Error("also kept", Err(errors.New("boom")), Int("n", 42), Uint("u", uint8(7)))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains debug message: %q", out)
	}
	for _, want := range []string{"kept", "key=value", "also kept", "boom", "n=42", "u=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestLoggerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := (&Config{NoColor: true, NoTime: true, UseTextHandler: true}).NewLogger(&buf)

	logger.WithAttrs(slog.String("component", "loader")).WithGroup("io").Info("msg", slog.String("path", "a.json"))

	out := buf.String()
	for _, want := range []string{"component=loader", "io.path=a.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestTestLogger(t *testing.T) {
	logger := (&Config{Level: slog.LevelDebug}).NewTestLogger(t)
	logger.Debug("debug message through t.Logf")
	logger.Info("info message through t.Logf")
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger.Enabled(slog.LevelError) {
		t.Error("Nop().Enabled(LevelError) = true, want false")
	}
	logger.Error("discarded", slog.String("key", "value"))
}
