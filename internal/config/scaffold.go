package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const scaffoldHeader = `# quizrunner settings. Paths are relative to this file.
# Delete a field to fall back to its default.
`

// Scaffold writes a config file holding the defaults. It refuses to
// overwrite an existing file.
func Scaffold(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := Render(Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Render encodes cfg as commented YAML.
func Render(cfg Config) ([]byte, error) {
	var out strings.Builder
	out.WriteString(scaffoldHeader)
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return []byte(out.String()), nil
}
