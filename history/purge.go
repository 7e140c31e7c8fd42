package history

import (
	"os"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/store"
)

// Purge drops every entry whose path no longer exists and returns how many
// were removed. Surviving entries keep their order and weight.
func Purge(cfg config.Config) (int, error) {
	entries, err := store.Load(cfg)
	if err != nil {
		return 0, err
	}

	kept := entries[:0:0]
	for _, e := range entries {
		if exists(e.Path) {
			kept = append(kept, e)
		}
	}

	if err := store.Save(cfg, kept); err != nil {
		return 0, err
	}
	removed := len(entries) - len(kept)
	log.Info("purged", "removed", removed, "kept", len(kept))
	return removed, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
