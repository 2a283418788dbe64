package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeFile creates a file with the given content for testing
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	// Load config with no file
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify defaults
	if cfg.BaseAddress != DefaultBaseAddress {
		t.Errorf("expected BaseAddress to be %q, got %q", DefaultBaseAddress, cfg.BaseAddress)
	}
	if cfg.Channel.MaxReconnectAttempts != DefaultMaxReconnectAttempts {
		t.Errorf("expected Channel.MaxReconnectAttempts to be %d, got %d", DefaultMaxReconnectAttempts, cfg.Channel.MaxReconnectAttempts)
	}
	if cfg.Channel.ReconnectDelay != DefaultReconnectDelay {
		t.Errorf("expected Channel.ReconnectDelay to be %q, got %q", DefaultReconnectDelay, cfg.Channel.ReconnectDelay)
	}
	if cfg.Interview.Difficulty != DefaultDifficulty {
		t.Errorf("expected Interview.Difficulty to be %q, got %q", DefaultDifficulty, cfg.Interview.Difficulty)
	}
	if cfg.Interview.QuestionCount != DefaultQuestionCount {
		t.Errorf("expected Interview.QuestionCount to be %d, got %d", DefaultQuestionCount, cfg.Interview.QuestionCount)
	}
	if cfg.Export.OutputDir != DefaultExportOutputDir {
		t.Errorf("expected Export.OutputDir to be %q, got %q", DefaultExportOutputDir, cfg.Export.OutputDir)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel to be %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()

	configContent := `
base_address: http://search.internal:9000
channel:
  max_reconnect_attempts: 3
  reconnect_delay: 250ms
search:
  location: Bengaluru
interview:
  difficulty: hard
  question_count: 15
export:
  output_dir: /tmp/artifacts
log_level: debug
`
	writeFile(t, filepath.Join(dir, ".hunt.yaml"), configContent)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseAddress != "http://search.internal:9000" {
		t.Errorf("expected BaseAddress override, got %q", cfg.BaseAddress)
	}
	if cfg.Channel.MaxReconnectAttempts != 3 {
		t.Errorf("expected MaxReconnectAttempts 3, got %d", cfg.Channel.MaxReconnectAttempts)
	}
	if cfg.Search.Location != "Bengaluru" {
		t.Errorf("expected Search.Location Bengaluru, got %q", cfg.Search.Location)
	}
	if cfg.Interview.Difficulty != "hard" {
		t.Errorf("expected Interview.Difficulty hard, got %q", cfg.Interview.Difficulty)
	}
	if cfg.Interview.QuestionCount != 15 {
		t.Errorf("expected Interview.QuestionCount 15, got %d", cfg.Interview.QuestionCount)
	}
	if cfg.Export.OutputDir != "/tmp/artifacts" {
		t.Errorf("expected Export.OutputDir /tmp/artifacts, got %q", cfg.Export.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel debug, got %q", cfg.LogLevel)
	}

	delay, err := cfg.ReconnectDelayDuration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delay != 250*time.Millisecond {
		t.Errorf("expected reconnect delay 250ms, got %v", delay)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hunt.yaml"), "base_address: https://hunt.example.com\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseAddress != "https://hunt.example.com" {
		t.Errorf("expected BaseAddress override, got %q", cfg.BaseAddress)
	}
	if cfg.Channel.MaxReconnectAttempts != DefaultMaxReconnectAttempts {
		t.Errorf("expected default MaxReconnectAttempts, got %d", cfg.Channel.MaxReconnectAttempts)
	}
	if cfg.Interview.Difficulty != DefaultDifficulty {
		t.Errorf("expected default Interview.Difficulty, got %q", cfg.Interview.Difficulty)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hunt.yaml"), "base_address: [not, a, string\n")

	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hunt.yaml"), `
base_address: "not a url"
interview:
  difficulty: brutal
`)

	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if !strings.Contains(err.Error(), "base_address") {
		t.Errorf("expected base_address failure, got: %v", err)
	}
	if !strings.Contains(err.Error(), "interview.difficulty") {
		t.Errorf("expected interview.difficulty failure, got: %v", err)
	}
}
