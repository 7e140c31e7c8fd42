package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	dataFileName   = "autojump.txt"
	backupFileName = "autojump.txt.bak"
)

// Config holds the resolved locations of the autojump data files.
// It is passed by value into every store and query call.
type Config struct {
	Prefix     string // directory holding the data files
	DataPath   string // <prefix>/autojump.txt
	BackupPath string // <prefix>/autojump.txt.bak
}

// FromPrefix builds a Config rooted at dir.
func FromPrefix(dir string) Config {
	return Config{
		Prefix:     dir,
		DataPath:   filepath.Join(dir, dataFileName),
		BackupPath: filepath.Join(dir, backupFileName),
	}
}

// Defaults resolves the platform data directory.
// AUTOJUMP_DATA_DIR takes precedence over every platform convention.
func Defaults() Config {
	if dir := os.Getenv("AUTOJUMP_DATA_DIR"); dir != "" {
		return FromPrefix(dir)
	}
	return FromPrefix(dataHome())
}

// HomeDir returns the user's home directory, or the filesystem root when
// it cannot be determined.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return string(filepath.Separator)
	}
	return home
}

// XDGHomeHardcoded is ~/.local/share/autojump regardless of $XDG_DATA_HOME.
// darwin builds used this location before moving to ~/Library.
func XDGHomeHardcoded() string {
	return filepath.Join(HomeDir(), ".local", "share", "autojump")
}

func dataHome() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(HomeDir(), "Library", "autojump")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "autojump")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "autojump")
		}
		return XDGHomeHardcoded()
	}
}
