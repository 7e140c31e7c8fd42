package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/montrey/autojump/config"
)

// MigrateLegacy moves the data and backup files found under legacyPrefix
// into cfg. It does nothing when legacyPrefix does not exist or is the
// configured prefix itself.
func MigrateLegacy(cfg config.Config, legacyPrefix string) error {
	if legacyPrefix == cfg.Prefix {
		return nil
	}
	if _, err := os.Stat(legacyPrefix); err != nil {
		return nil
	}

	old := config.FromPrefix(legacyPrefix)
	if err := os.MkdirAll(cfg.Prefix, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	pairs := [][2]string{
		{old.DataPath, cfg.DataPath},
		{old.BackupPath, cfg.BackupPath},
	}
	for _, p := range pairs {
		if err := copyFile(p[0], p[1]); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to migrate %s: %w", p[0], err)
		}
	}
	for _, p := range pairs {
		if err := os.Remove(p[0]); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p[0], err)
		}
	}

	log.Info("legacy_data_migrated", "from", legacyPrefix, "to", cfg.Prefix)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
