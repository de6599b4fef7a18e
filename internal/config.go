package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	FilePath string
	Clock    func() time.Time
	Logger   *slog.Logger
}

// The contents are comma separated lines, not JSON. The name is kept so
// existing data files keep working.
const DEFAULT_FILE_NAME = ".daysince.json"

// DefaultConfig leaves FilePath empty; ResolveFilePath fills it in from the
// home directory when no explicit path was given.
func DefaultConfig() *Config {
	return &Config{
		Clock:  time.Now,
		Logger: slog.Default(),
	}
}

// ResolveFilePath sets FilePath to DEFAULT_FILE_NAME in the user's home
// directory unless a path is already set.
func (c *Config) ResolveFilePath() error {
	if c.FilePath != "" {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate the home directory: %w", err)
	}

	c.FilePath = filepath.Join(home, DEFAULT_FILE_NAME)
	return nil
}
