package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const settingsFileName = "config.toml"

// Settings is the optional user configuration stored next to the data file.
type Settings struct {
	Log LogSettings `toml:"log"`

	// Exclude lists gitignore-style patterns for directories that are never
	// recorded.
	Exclude []string `toml:"exclude"`
}

// LogSettings configures the debug log.
type LogSettings struct {
	// Level is one of "debug", "info", "warn", "error". Empty disables logging.
	Level string `toml:"level"`

	// Format is "json" (default) or "text"
	Format string `toml:"format"`
}

// SettingsPath returns <prefix>/config.toml.
func (c Config) SettingsPath() string {
	return filepath.Join(c.Prefix, settingsFileName)
}

// ExcludePath returns <prefix>/exclude.
func (c Config) ExcludePath() string {
	return filepath.Join(c.Prefix, "exclude")
}

// LogDir returns the directory the debug log is written to.
func (c Config) LogDir() string {
	return c.Prefix
}

// LoadSettings reads config.toml from the prefix directory. A missing file
// yields zero Settings.
func LoadSettings(c Config) (Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(c.SettingsPath(), &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to parse %s: %w", c.SettingsPath(), err)
	}
	return s, nil
}
