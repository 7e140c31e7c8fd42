package history

import (
	"math"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/store"
)

// Stats summarises the stored history for --stat.
type Stats struct {
	Entries     []store.Entry // ascending by weight
	TotalWeight float64       // floored sum of all weights
	CwdWeight   float64
	HasCwd      bool // false when the working directory is unresolvable
	DataPath    string
}

// Stat collects Stats. cwd may be empty when the working directory is gone,
// in which case no current-directory weight is reported.
func Stat(cfg config.Config, cwd string) (Stats, error) {
	entries, err := store.Load(cfg)
	if err != nil {
		return Stats{}, err
	}
	store.SortAscending(entries)

	s := Stats{
		Entries:  entries,
		HasCwd:   cwd != "",
		DataPath: cfg.DataPath,
	}

	var sum float64
	found := false
	for _, e := range entries {
		sum += e.Weight
		if s.HasCwd && !found && e.Path == cwd {
			s.CwdWeight = e.Weight
			found = true
		}
	}
	s.TotalWeight = math.Floor(sum)
	return s, nil
}
