package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line %q is not JSON: %v", buf.String(), err)
	}
	return entry
}

func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(Logger)
		level string
		msg   string
	}{
		{"info", func(l Logger) { l.Info("score loaded") }, "info", "score loaded"},
		{"warn", func(l Logger) { l.Warn("percentage clamped") }, "warn", "percentage clamped"},
		{"debug", func(l Logger) { l.Debug("frame") }, "debug", "frame"},
		{"error", func(l Logger) { l.Error("fetch failed", errors.New("boom")) }, "error", "fetch failed"},
		{"printf", func(l Logger) { l.Printf("score %d", 578) }, "info", "score 578"},
		{"println", func(l Logger) { l.Println("score", 578) }, "info", "score 578"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))

			entry := decode(t, &buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["message"] != tt.msg {
				t.Errorf("message = %v, want %q", entry["message"], tt.msg)
			}
		})
	}
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))

	logger.Error("apply", errors.New("stale"),
		String("state", "loaded"),
		Int("score", 578),
		Uint64("frames", 42),
		Float64("percentage", 0.825),
		Bool("animated", true),
		Field{Key: "labels", Value: []string{"578", "700"}},
	)

	entry := decode(t, &buf)
	want := map[string]any{
		"error":      "stale",
		"state":      "loaded",
		"score":      float64(578),
		"frames":     float64(42),
		"percentage": 0.825,
		"animated":   true,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if labels, ok := entry["labels"].([]any); !ok || len(labels) != 2 {
		t.Errorf("labels = %v", entry["labels"])
	}
}

func TestNewLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "scorering").Info("started")

	entry := decode(t, &buf)
	if entry["component"] != "scorering" {
		t.Errorf("component = %v", entry["component"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry should carry a timestamp")
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0))

	logger.Info("loaded", Int("score", 578))
	logger.Warn("clamped")
	logger.Error("failed", errors.New("boom"), String("source", "stub"))
	logger.Debug("tick")

	want := []string{
		"[INFO] loaded score=578",
		"[WARN] clamped",
		"[ERROR] failed: boom source=stub",
		"[DEBUG] tick",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("discarded")
	logger.Error("discarded", errors.New("x"))
	logger.Printf("%d", 1)
}
