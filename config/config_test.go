package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPrefix(t *testing.T) {
	dir := filepath.Join("some", "prefix")
	c := FromPrefix(dir)

	assert.Equal(t, dir, c.Prefix)
	assert.Equal(t, filepath.Join(dir, "autojump.txt"), c.DataPath)
	assert.Equal(t, filepath.Join(dir, "autojump.txt.bak"), c.BackupPath)
	assert.Equal(t, filepath.Join(dir, "config.toml"), c.SettingsPath())
}

func TestDefaultsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AUTOJUMP_DATA_DIR", dir)

	assert.Equal(t, FromPrefix(dir), Defaults())
}

func TestDefaultsUnderXDGDataHome(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME only applies to other unix systems")
	}
	xdg := t.TempDir()
	t.Setenv("AUTOJUMP_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", xdg)

	c := Defaults()
	assert.Equal(t, filepath.Join(xdg, "autojump"), c.Prefix)
	assert.Equal(t, filepath.Join(xdg, "autojump", "autojump.txt"), c.DataPath)

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, ".local", "share", "autojump"), Defaults().Prefix)
}

func TestHomeDirNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, HomeDir())
}

func TestLoadSettings(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s, err := LoadSettings(FromPrefix(t.TempDir()))
		require.NoError(t, err)
		assert.Equal(t, Settings{}, s)
	})

	t.Run("full file", func(t *testing.T) {
		c := FromPrefix(t.TempDir())
		body := `exclude = ["/tmp/**", "node_modules/"]

[log]
level = "debug"
format = "text"
`
		require.NoError(t, os.WriteFile(c.SettingsPath(), []byte(body), 0o644))

		s, err := LoadSettings(c)
		require.NoError(t, err)
		assert.Equal(t, "debug", s.Log.Level)
		assert.Equal(t, "text", s.Log.Format)
		assert.Equal(t, []string{"/tmp/**", "node_modules/"}, s.Exclude)
	})

	t.Run("malformed file", func(t *testing.T) {
		c := FromPrefix(t.TempDir())
		require.NoError(t, os.WriteFile(c.SettingsPath(), []byte("exclude = ["), 0o644))

		_, err := LoadSettings(c)
		assert.Error(t, err)
	})
}
