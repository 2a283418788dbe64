package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the hunt client.
// It is immutable after creation via LoadConfig().
type Config struct {
	// BaseAddress is the root URL of the remote search service
	BaseAddress string `yaml:"base_address"`

	// Channel contains event channel settings
	Channel ChannelConfig `yaml:"channel"`

	// Search contains job search defaults
	Search SearchConfig `yaml:"search"`

	// Interview contains interview-question search defaults
	Interview InterviewConfig `yaml:"interview"`

	// Export contains PDF export settings
	Export ExportConfig `yaml:"export"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// ChannelConfig controls the persistent event channel.
type ChannelConfig struct {
	// MaxReconnectAttempts bounds consecutive reconnect attempts before the
	// channel is declared failed
	MaxReconnectAttempts int `yaml:"max_reconnect_attempts"`

	// ReconnectDelay is the fixed pause between reconnect attempts
	ReconnectDelay string `yaml:"reconnect_delay"`
}

// SearchConfig holds job search defaults applied when flags are omitted.
type SearchConfig struct {
	// Location is the default search location
	Location string `yaml:"location"`
}

// InterviewConfig holds interview search defaults applied when flags are omitted.
type InterviewConfig struct {
	// Difficulty is the default difficulty filter: all, easy, medium, or hard
	Difficulty string `yaml:"difficulty"`

	// QuestionCount is the default number of questions to request
	QuestionCount int `yaml:"question_count"`
}

// ExportConfig controls where export artifacts are written.
type ExportConfig struct {
	// OutputDir is the directory PDF artifacts are written into.
	// Relative paths are resolved from the working directory.
	OutputDir string `yaml:"output_dir"`
}

// ReconnectDelayDuration parses the reconnect delay as a Duration.
func (c *Config) ReconnectDelayDuration() (time.Duration, error) {
	return time.ParseDuration(c.Channel.ReconnectDelay)
}

// LoadConfig loads configuration from dir.
// It applies defaults, then file values, then environment overrides,
// then validates.
//
// Parameters:
//   - dir: directory searched for the optional .hunt.yaml file
//
// Returns the validated Config or an error if validation fails.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load config file (optional)
	configPath := filepath.Join(dir, ".hunt.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	// Note: missing config file is not an error (use defaults)

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
