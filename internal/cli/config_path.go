package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizrunner/internal/config"
)

// executableDir locates the directory relative paths resolve against.
var executableDir = config.ExecutableDir

// environment is the resolved configuration for one command.
type environment struct {
	cfg          config.Config
	configPath   string
	configFound  bool
	workbookPath string
}

// loadEnvironment reads the config and resolves the workbook path. An
// explicit config must exist; the default one next to the executable is
// optional. An explicit workbook is taken relative to the working directory,
// a configured one relative to the config file.
func loadEnvironment(configFlag, fileFlag string) (environment, error) {
	baseDir, err := executableDir()
	if err != nil {
		return environment{}, err
	}

	var env environment
	if strings.TrimSpace(configFlag) != "" {
		path, err := filepath.Abs(configFlag)
		if err != nil {
			return environment{}, fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return environment{}, err
		}
		env = environment{cfg: cfg, configPath: path, configFound: true}
	} else {
		path := config.ConfigPath(baseDir)
		cfg, found, err := config.LoadOptional(path)
		if err != nil {
			return environment{}, err
		}
		env = environment{cfg: cfg, configPath: path, configFound: found}
	}

	if strings.TrimSpace(fileFlag) != "" {
		path, err := filepath.Abs(fileFlag)
		if err != nil {
			return environment{}, fmt.Errorf("resolve workbook path: %w", err)
		}
		env.workbookPath = path
		return env, nil
	}
	env.workbookPath = config.Resolve(filepath.Dir(env.configPath), env.cfg.Workbook)
	return env, nil
}
