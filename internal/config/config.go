// Package config loads process settings from HABITS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/julianstephens/habits/internal/constants"
)

type Config struct {
	Debug       bool   `env:"HABITS_DEBUG"`
	LogDir      string `env:"HABITS_LOG_DIR" envDefault:"~/.local/state/habits"`
	LogMaxSize  int    `env:"HABITS_LOG_MAX_SIZE_MB" envDefault:"10"`
	LogBackups  int    `env:"HABITS_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge   int    `env:"HABITS_LOG_MAX_AGE_DAYS" envDefault:"28"`
	Prompt      string `env:"HABITS_PROMPT" envDefault:"habits> "`
	DefaultUser string `env:"HABITS_DEFAULT_USER"`
}

// Load parses the environment into a Config and expands a leading "~" in
// LogDir.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LogDir == "" {
		cfg.LogDir = constants.DefaultLogDir
	}

	dir, err := ExpandHome(cfg.LogDir)
	if err != nil {
		return Config{}, err
	}
	cfg.LogDir = dir

	return cfg, nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
