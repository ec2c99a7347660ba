package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.Workbook) == "" {
		add("workbook", "is required")
	}
	if cfg.SecondsPerQuestion < 0 {
		add("seconds_per_question", "must be > 0")
	}
	if cfg.AutoAdvance != nil && *cfg.AutoAdvance < 0 {
		add("auto_advance", "must be >= 0")
	}
	for key, name := range cfg.Chapters {
		if strings.TrimSpace(key) == "" {
			add("chapters", "keys must not be blank")
		}
		if strings.TrimSpace(name) == "" {
			add(fmt.Sprintf("chapters.%s", key), "name is required")
		}
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", cfg.Log.Level))
	}
	if cfg.Log.MaxSizeMB < 0 {
		add("log.max_size_mb", "must be >= 0")
	}
	if cfg.Log.MaxBackups < 0 {
		add("log.max_backups", "must be >= 0")
	}
	if cfg.Log.MaxAgeDays < 0 {
		add("log.max_age_days", "must be >= 0")
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
