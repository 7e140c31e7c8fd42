package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/logging"
	"github.com/montrey/autojump/store"
)

// ErrNoWorkingDir is returned when the current directory cannot be resolved
// for an operation that needs it.
var ErrNoWorkingDir = errors.New("cannot resolve current directory")

var log = logging.ForComponent(logging.CompHistory)

// Updater applies weight changes to the stored history. Every call loads the
// store, mutates it, and saves it back immediately.
type Updater struct {
	cfg     config.Config
	home    string
	exclude *Exclude
}

// NewUpdater returns an Updater for cfg. home is never ranked; exclude may be
// nil.
func NewUpdater(cfg config.Config, home string, exclude *Exclude) *Updater {
	return &Updater{cfg: cfg, home: filepath.Clean(home), exclude: exclude}
}

// Add records a visit to dir with the default weight.
func (u *Updater) Add(dir string) (store.Entry, error) {
	return u.IncreaseDir(dir, DefaultIncrease)
}

// IncreaseDir raises dir's weight by w, creating the entry if needed.
// The home directory and excluded directories are reported with weight 0
// and leave the store untouched.
func (u *Updater) IncreaseDir(dir string, w float64) (store.Entry, error) {
	dir = filepath.Clean(dir)
	if dir == u.home {
		return store.Entry{Path: dir, Weight: 0}, nil
	}
	if u.exclude.Match(dir) {
		log.Debug("excluded", "path", dir)
		return store.Entry{Path: dir, Weight: 0}, nil
	}

	return u.update(dir, func(entries []store.Entry) ([]store.Entry, store.Entry) {
		for i := range entries {
			if entries[i].Path == dir {
				entries[i].Weight = Increase(entries[i].Weight, w)
				return entries, entries[i]
			}
		}
		e := store.Entry{Path: dir, Weight: w}
		return append(entries, e), e
	})
}

// DecreaseDir lowers dir's weight by w. An unknown dir is added with weight
// 0, never with a negative or delta-derived weight.
func (u *Updater) DecreaseDir(dir string, w float64) (store.Entry, error) {
	dir = filepath.Clean(dir)
	return u.update(dir, func(entries []store.Entry) ([]store.Entry, store.Entry) {
		for i := range entries {
			if entries[i].Path == dir {
				entries[i].Weight = Decrease(entries[i].Weight, w)
				return entries, entries[i]
			}
		}
		e := store.Entry{Path: dir, Weight: 0}
		return append(entries, e), e
	})
}

// IncreaseCurrent raises the working directory's weight.
func (u *Updater) IncreaseCurrent(w float64) (store.Entry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return store.Entry{}, fmt.Errorf("%w: %v", ErrNoWorkingDir, err)
	}
	return u.IncreaseDir(cwd, w)
}

// DecreaseCurrent lowers the working directory's weight.
func (u *Updater) DecreaseCurrent(w float64) (store.Entry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return store.Entry{}, fmt.Errorf("%w: %v", ErrNoWorkingDir, err)
	}
	return u.DecreaseDir(cwd, w)
}

func (u *Updater) update(dir string, fn func([]store.Entry) ([]store.Entry, store.Entry)) (store.Entry, error) {
	entries, err := store.Load(u.cfg)
	if err != nil {
		return store.Entry{}, err
	}

	entries, result := fn(entries)
	if err := store.Save(u.cfg, entries); err != nil {
		return store.Entry{}, err
	}
	log.Debug("weight_updated", "path", dir, "weight", result.Weight)
	return result, nil
}
