package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/logging"
	"github.com/natefinch/atomic"
)

// BackupThreshold is how old the backup may get before Save refreshes it.
const BackupThreshold = 24 * time.Hour

// ErrBackupUnreadable means the data file was corrupt and the backup that
// should have replaced it could not be read either.
var ErrBackupUnreadable = errors.New("backup data file is unreadable")

var errCorrupt = errors.New("data file is not valid UTF-8")

var log = logging.ForComponent(logging.CompStore)

// Load reads the entry list. A missing data file yields an empty list and
// malformed lines are skipped. When the data file cannot be read at all the
// backup is promoted over it; the only error returned is
// ErrBackupUnreadable.
func Load(cfg config.Config) ([]Entry, error) {
	entries, err := loadFile(cfg.DataPath)
	if err == nil {
		return entries, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	log.Warn("data_file_unreadable", "path", cfg.DataPath, "error", err)
	return loadBackup(cfg)
}

func loadBackup(cfg config.Config) ([]Entry, error) {
	if _, err := os.Stat(cfg.BackupPath); err != nil {
		log.Warn("no_backup_available", "path", cfg.BackupPath)
		return nil, nil
	}

	if err := os.Rename(cfg.BackupPath, cfg.DataPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackupUnreadable, err)
	}
	log.Info("backup_promoted", "from", cfg.BackupPath, "to", cfg.DataPath)

	entries, err := loadFile(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackupUnreadable, err)
	}
	return entries, nil
}

func loadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)

	var entries []Entry
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !utf8.ValidString(line) {
				return nil, errCorrupt
			}
			if e, ok := parseLine(line); ok {
				entries = append(entries, e)
			}
		}
		if err != nil {
			return entries, nil
		}
	}
}

// Save writes entries in the given order. The previous data file is copied
// to the backup first when the backup is missing or stale, and the new
// content replaces the data file atomically.
func Save(cfg config.Config, entries []Entry) error {
	if err := os.MkdirAll(cfg.Prefix, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := maybeBackup(cfg, time.Now()); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(formatLine(e))
	}
	if err := atomic.WriteFile(cfg.DataPath, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.DataPath, err)
	}
	log.Debug("saved", "path", cfg.DataPath, "entries", len(entries))
	return nil
}

func needBackup(cfg config.Config, now time.Time) bool {
	info, err := os.Stat(cfg.BackupPath)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err != nil {
		log.Warn("backup_stat_failed", "path", cfg.BackupPath, "error", err)
		return false
	}

	age := now.Sub(info.ModTime())
	if age < 0 {
		// mtime in the future: clock skew, don't force a backup
		log.Warn("backup_mtime_in_future", "path", cfg.BackupPath, "mtime", info.ModTime())
		return false
	}
	return age > BackupThreshold
}

func maybeBackup(cfg config.Config, now time.Time) error {
	if !needBackup(cfg, now) {
		return nil
	}

	src, err := os.Open(cfg.DataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open data file for backup: %w", err)
	}
	defer src.Close()

	if err := atomic.WriteFile(cfg.BackupPath, src); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", cfg.BackupPath, err)
	}
	log.Debug("backup_refreshed", "path", cfg.BackupPath)
	return nil
}
