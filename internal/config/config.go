package config

import (
	"time"

	"quizrunner/internal/question"
)

// Defaults applied when a config file omits a field.
const (
	DefaultWorkbook           = "CDMP Practice Exam.xlsx"
	DefaultSecondsPerQuestion = 30
	DefaultAutoAdvance        = 700 * time.Millisecond
	DefaultLogLevel           = "info"
)

// Config is the optional quizrunner.yml schema.
type Config struct {
	Version            int               `yaml:"version"`
	Workbook           string            `yaml:"workbook"`
	SecondsPerQuestion int               `yaml:"seconds_per_question"`
	AutoAdvance        *time.Duration    `yaml:"auto_advance"`
	ShuffleQuestions   bool              `yaml:"shuffle_questions"`
	ShuffleOptions     bool              `yaml:"shuffle_options"`
	Chapters           map[string]string `yaml:"chapters"`
	Log                LogConfig         `yaml:"log"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills zero-valued fields with defaults. An absent auto_advance
// gets the default; an explicit 0s is kept and disables the delay.
func Normalize(cfg *Config) {
	if cfg.Workbook == "" {
		cfg.Workbook = DefaultWorkbook
	}
	if cfg.SecondsPerQuestion == 0 {
		cfg.SecondsPerQuestion = DefaultSecondsPerQuestion
	}
	if cfg.AutoAdvance == nil {
		delay := DefaultAutoAdvance
		cfg.AutoAdvance = &delay
	}
	if len(cfg.Chapters) == 0 {
		cfg.Chapters = question.DefaultCatalog()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 28
	}
}

// AdvanceDelay is how long answer feedback stays up before the next question.
func (cfg Config) AdvanceDelay() time.Duration {
	if cfg.AutoAdvance == nil {
		return DefaultAutoAdvance
	}
	return *cfg.AutoAdvance
}

// Catalog returns the chapter catalog as a question.Catalog.
func (cfg Config) Catalog() question.Catalog {
	return question.Catalog(cfg.Chapters)
}
