package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Production: true, Service: "momentum", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("started", zap.Int("port", 5000))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["service"] != "momentum" || entry["msg"] != "started" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["port"] != float64(5000) {
		t.Fatalf("port field = %v", entry["port"])
	}
}

func TestNewDevelopmentWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("visible")
	_ = logger.Sync()
	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected console output: %q", out)
	}
	if strings.HasPrefix(out, "{") {
		t.Fatalf("expected console encoding, got JSON")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
