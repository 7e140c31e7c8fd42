package cmd

import (
	"errors"
	"os"
	"runtime"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/history"
	"github.com/montrey/autojump/logging"
	"github.com/montrey/autojump/store"
)

var errNotSourced = errors.New("please source the correct autojump file in your shell's\n" +
	"startup file. For more information, please reinstall autojump\n" +
	"and read the post installation instructions")

// checkSourced refuses to run outside the shell wrapper, which is what
// turns printed paths into a cd. Windows has no wrapper.
func checkSourced() error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if os.Getenv("AUTOJUMP_SOURCED") != "1" {
		return errNotSourced
	}
	return nil
}

// environment is everything a mode needs, resolved once per invocation.
type environment struct {
	cfg     config.Config
	home    string
	exclude *history.Exclude
}

func (e *environment) updater() *history.Updater {
	return history.NewUpdater(e.cfg, e.home, e.exclude)
}

func setup() (*environment, error) {
	cfg := config.Defaults()

	settings, err := config.LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		LogDir: cfg.LogDir(),
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Debug:  os.Getenv("AUTOJUMP_DEBUG") == "1",
	})

	if runtime.GOOS == "darwin" {
		if err := store.MigrateLegacy(cfg, config.XDGHomeHardcoded()); err != nil {
			logging.Logger().Warn("legacy_migration_failed", "error", err)
		}
	}

	exclude, err := history.LoadExclude(cfg, settings.Exclude)
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:     cfg,
		home:    config.HomeDir(),
		exclude: exclude,
	}, nil
}
