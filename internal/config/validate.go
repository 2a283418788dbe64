package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	// BaseAddress must be an absolute http(s) URL
	if u, err := url.Parse(cfg.BaseAddress); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, &ValidationError{
			Field:   "base_address",
			Value:   cfg.BaseAddress,
			Message: "must be an absolute http or https URL",
		})
	}

	// Channel.MaxReconnectAttempts must be >= 1
	if cfg.Channel.MaxReconnectAttempts < 1 {
		errs = append(errs, &ValidationError{
			Field:   "channel.max_reconnect_attempts",
			Value:   cfg.Channel.MaxReconnectAttempts,
			Message: "must be at least 1",
		})
	}

	// Channel.ReconnectDelay must be a valid Go duration string
	if _, err := time.ParseDuration(cfg.Channel.ReconnectDelay); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "channel.reconnect_delay",
			Value:   cfg.Channel.ReconnectDelay,
			Message: fmt.Sprintf("invalid duration: %v", err),
		})
	}

	// Interview.Difficulty must be one of: all, easy, medium, hard
	validDifficulties := map[string]bool{
		"all":    true,
		"easy":   true,
		"medium": true,
		"hard":   true,
	}
	if !validDifficulties[cfg.Interview.Difficulty] {
		errs = append(errs, &ValidationError{
			Field:   "interview.difficulty",
			Value:   cfg.Interview.Difficulty,
			Message: "must be one of: all, easy, medium, hard",
		})
	}

	// Interview.QuestionCount must be 1..20 (server clamps at 20)
	if cfg.Interview.QuestionCount < 1 || cfg.Interview.QuestionCount > 20 {
		errs = append(errs, &ValidationError{
			Field:   "interview.question_count",
			Value:   cfg.Interview.QuestionCount,
			Message: "must be between 1 and 20",
		})
	}

	// Export.OutputDir must not be empty
	if cfg.Export.OutputDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "export.output_dir",
			Value:   cfg.Export.OutputDir,
			Message: "must not be empty",
		})
	}

	// LogLevel must be one of: debug, info, warn, error (case-sensitive)
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
