package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies the defaults used without a config file.
func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Workbook != DefaultWorkbook {
		t.Fatalf("expected workbook %q, got %q", DefaultWorkbook, cfg.Workbook)
	}
	if cfg.SecondsPerQuestion != 30 {
		t.Fatalf("expected 30 seconds per question, got %d", cfg.SecondsPerQuestion)
	}
	if cfg.AdvanceDelay() != 700*time.Millisecond {
		t.Fatalf("expected 700ms auto advance, got %s", cfg.AdvanceDelay())
	}
	if cfg.Catalog()["1"] != "Data Management" {
		t.Fatalf("expected default catalog, got %v", cfg.Chapters)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

// TestParseRejectsUnknownFields verifies strict decoding.
func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nworkbok: typo.xlsx\n"))
	if err == nil || !strings.Contains(err.Error(), "workbok") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

// TestParseRejectsMultipleDocuments verifies single-document configs.
func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestLoadAppliesDefaults verifies partial files are completed.
func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "version: 1\nseconds_per_question: 45\nauto_advance: 1s\nchapters:\n  \"1\": Governance\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SecondsPerQuestion != 45 {
		t.Fatalf("expected 45 seconds, got %d", cfg.SecondsPerQuestion)
	}
	if cfg.AdvanceDelay() != time.Second {
		t.Fatalf("expected 1s auto advance, got %s", cfg.AdvanceDelay())
	}
	if cfg.Workbook != DefaultWorkbook {
		t.Fatalf("expected default workbook, got %q", cfg.Workbook)
	}
	if len(cfg.Chapters) != 1 || cfg.Chapters["1"] != "Governance" {
		t.Fatalf("expected custom chapters, got %v", cfg.Chapters)
	}
}

// TestParseKeepsZeroAutoAdvance verifies an explicit zero disables the
// feedback delay while an absent field gets the default.
func TestParseKeepsZeroAutoAdvance(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\nauto_advance: 0s\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	Normalize(&cfg)
	if cfg.AdvanceDelay() != 0 {
		t.Fatalf("expected no auto advance delay, got %s", cfg.AdvanceDelay())
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected zero delay to validate, got %v", err)
	}

	cfg, err = Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	Normalize(&cfg)
	if cfg.AdvanceDelay() != DefaultAutoAdvance {
		t.Fatalf("expected default delay, got %s", cfg.AdvanceDelay())
	}
}

// TestLoadOptionalMissingFile verifies defaults when no file exists.
func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, found, err := LoadOptional(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected missing config to be reported")
	}
	if cfg.SecondsPerQuestion != DefaultSecondsPerQuestion {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

// TestValidateReportsIssues verifies every invalid field is collected.
func TestValidateReportsIssues(t *testing.T) {
	cfg := Default()
	cfg.Version = 2
	cfg.SecondsPerQuestion = -1
	negative := -time.Second
	cfg.AutoAdvance = &negative
	cfg.Log.Level = "trace"
	cfg.Chapters = map[string]string{"1": " "}

	err := Validate(cfg)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Issues) != 5 {
		t.Fatalf("expected 5 issues, got %d: %v", len(verr.Issues), verr)
	}
}

// TestScaffoldWritesLoadableConfig verifies init output round-trips through Load.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg.AdvanceDelay() != DefaultAutoAdvance {
		t.Fatalf("expected default auto advance, got %s", cfg.AdvanceDelay())
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected scaffold to refuse overwrite")
	}
}

// TestResolvePaths verifies relative paths are anchored to the base dir.
func TestResolvePaths(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "opt", "quiz")
	if got := Resolve(base, "bank.xlsx"); got != filepath.Join(base, "bank.xlsx") {
		t.Fatalf("expected joined path, got %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "data", "bank.xlsx")
	if got := Resolve(base, abs); got != abs {
		t.Fatalf("expected absolute path unchanged, got %q", got)
	}
	if got := Resolve(base, "  "); got != "" {
		t.Fatalf("expected blank path, got %q", got)
	}
}

// TestExecutableDir verifies symlink-free executable lookup.
func TestExecutableDir(t *testing.T) {
	dir := t.TempDir()
	original := executable
	executable = func() (string, error) { return filepath.Join(dir, "quizrunner"), nil }
	t.Cleanup(func() { executable = original })

	got, err := ExecutableDir()
	if err != nil {
		t.Fatalf("executable dir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}
