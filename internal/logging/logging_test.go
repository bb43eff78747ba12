package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	if got := Level(true, "error"); got != slog.LevelDebug {
		t.Errorf("Level(debug) = %v, want debug", got)
	}
	if got := Level(false, "error"); got != slog.LevelError {
		t.Errorf("Level(error) = %v, want error", got)
	}
	if got := Level(false, ""); got != slog.LevelWarn {
		t.Errorf("Level(default) = %v, want warn", got)
	}
}

func TestInitJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(&buf, slog.LevelInfo, true)
	slog.Info("test message", "key", "value")
	slog.Debug("hidden")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected one JSON record, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "test message" {
		t.Errorf("expected msg 'test message', got %q", m["msg"])
	}
	if m["key"] != "value" {
		t.Errorf("expected key 'value', got %q", m["key"])
	}
}

func TestInitText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(&buf, slog.LevelWarn, false)
	slog.Info("quiet")
	slog.Warn("loud", "rule", "semi")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info record leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=loud") || !strings.Contains(out, "rule=semi") {
		t.Errorf("expected text output with msg and rule, got: %s", out)
	}
}
