package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// Tests for New
// =============================================================================

func TestNewWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	cfg := DefaultConfig()
	cfg.Output = path
	cfg.Format = FormatJSON

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("hello", "count", 3)
	if err := log.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["component"] != "passrank" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v", entry["count"])
	}
}

func TestNewNilConfig(t *testing.T) {
	log, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) failed: %v", err)
	}
	defer log.Close()
	if log.Logger == nil {
		t.Fatal("no slog.Logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	cfg := DefaultConfig()
	cfg.Output = path
	cfg.Level = LevelWarn

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("hidden")
	log.Warn("visible")
	log.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry emitted at warn level")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("warn entry missing")
	}
}

// =============================================================================
// Tests for redaction
// =============================================================================

func TestPasswordAttributesRedacted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	cfg := DefaultConfig()
	cfg.Output = path
	cfg.Format = FormatJSON

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("evaluated", "password", "hunter2", "score", 0)
	log.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hunter2") {
		t.Error("password value leaked into log output")
	}
	if !strings.Contains(string(data), "[REDACTED]") {
		t.Error("no redaction marker in log output")
	}
}

func TestShouldRedact(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"Passphrase", true},
		{"api_token", true},
		{"client_secret", true},
		{"score", false},
		{"path", false},
	}
	for _, tt := range tests {
		if got := shouldRedact(tt.key); got != tt.want {
			t.Errorf("shouldRedact(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

// =============================================================================
// Tests for parsing helpers
// =============================================================================

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	log, err := FromConfig("debug", "json", path)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	log.Debug("present")
	log.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "present") {
		t.Error("debug entry missing")
	}

	if _, err := FromConfig("loud", "text", ""); err == nil {
		t.Error("expected error for bad level")
	}
}

func TestWithComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	cfg := DefaultConfig()
	cfg.Output = path
	cfg.Format = FormatJSON

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.WithComponent("repl").Info("scoped")
	log.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"repl"`) {
		t.Errorf("component attribute missing: %s", data)
	}
}
