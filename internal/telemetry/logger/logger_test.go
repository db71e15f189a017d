package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newBuffered(t *testing.T, level, format string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: format, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{" warning ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"text", FormatText, false},
		{"console", FormatText, false},
		{"JSON", FormatJSON, false},
		{"logfmt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	if _, err := New(Config{Level: "loud", Format: "text"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
	if _, err := New(Config{Level: "info", Format: "xml"}); err == nil {
		t.Error("New() should reject an unknown format")
	}
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newBuffered(t, "debug", "json")

	l.With("model", "threads-sharded").Info("run complete", "threads", 4)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["msg"] != "run complete" || entry["level"] != "INFO" {
		t.Errorf("entry = %v", entry)
	}
	if entry["model"] != "threads-sharded" || entry["threads"] != float64(4) {
		t.Errorf("attributes = %v", entry)
	}
}

func TestLogger_Text(t *testing.T) {
	l, buf := newBuffered(t, "info", "console")

	l.Warn("iterations truncated", "effective", 9)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "effective=9") {
		t.Errorf("text output = %q", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		emit  func(Logger)
		want  bool
	}{
		{"info", func(l Logger) { l.Debug("x") }, false},
		{"info", func(l Logger) { l.Info("x") }, true},
		{"warn", func(l Logger) { l.Info("x") }, false},
		{"warn", func(l Logger) { l.Error("x") }, true},
		{"error", func(l Logger) { l.Warn("x") }, false},
		{"debug", func(l Logger) { l.Debug("x") }, true},
	}

	for _, tt := range tests {
		l, buf := newBuffered(t, tt.level, "json")
		tt.emit(l)
		if got := buf.Len() > 0; got != tt.want {
			t.Errorf("level %s: emitted = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogger_IndependentLevels(t *testing.T) {
	quiet, quietBuf := newBuffered(t, "error", "json")
	loud, loudBuf := newBuffered(t, "debug", "json")

	quiet.Info("hidden")
	loud.Debug("shown")

	if quietBuf.Len() != 0 {
		t.Error("creating a debug logger must not lower another logger's level")
	}
	if loudBuf.Len() == 0 {
		t.Error("debug logger should emit debug entries")
	}
}

func TestLogger_DurationAttr(t *testing.T) {
	l, buf := newBuffered(t, "info", "json")

	l.Info("run complete", "elapsed", 1500*time.Millisecond)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["elapsed"] != "1.5s" {
		t.Errorf("elapsed = %v, want %q", entry["elapsed"], "1.5s")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	l.With("k", "v").Info("dropped")
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	l, buf := newBuffered(t, "info", "json")
	SetDefault(l)
	SetDefault(nil)

	FromContext(context.Background()).Info("via fallback")
	if !strings.Contains(buf.String(), "via fallback") {
		t.Errorf("FromContext should fall back to the default logger, got %q", buf.String())
	}
}
