package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the config file looked up next to the executable.
const ConfigFileName = "quizrunner.yml"

// executable is replaced in tests.
var executable = os.Executable

// ExecutableDir returns the directory holding the running binary with
// symlinks resolved.
func ExecutableDir() (string, error) {
	path, err := executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Dir(path), nil
}

// Resolve joins a relative path onto baseDir; absolute paths are returned
// unchanged.
func Resolve(baseDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ConfigPath returns the default config location under baseDir.
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, ConfigFileName)
}
