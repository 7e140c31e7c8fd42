package query

import (
	"os"
	"path/filepath"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/logging"
	"github.com/montrey/autojump/search"
	"github.com/montrey/autojump/store"
	"github.com/montrey/autojump/tabentry"
)

// Fallback is printed when nothing matches so the shell always has
// somewhere to cd.
const Fallback = "."

// CompleteCount is the size of the completion menu.
const CompleteCount = 9

var log = logging.ForComponent(logging.CompQuery)

// Execute runs plan against the stored history. cwd is the working
// directory, or "" when it cannot be resolved; a matching entry is never
// returned since jumping there would be a no-op.
func Execute(cfg config.Config, plan Plan, cwd string) ([]string, error) {
	if plan.Early {
		return []string{plan.EarlyPath}, nil
	}

	entries, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	store.SortDescending(entries)

	m := search.NewSmartCase(plan.Needles)

	var result []string
	skipped := 0
	for tier, e := range m.Ranked(entries) {
		if len(result) >= plan.Count {
			break
		}
		if cwd != "" && filepath.Clean(e.Path) == cwd {
			continue
		}
		if plan.CheckExistence && !exists(e.Path) {
			continue
		}
		if skipped < plan.Offset {
			skipped++
			continue
		}
		log.Debug("match", "tier", tier.String(), "path", e.Path, "weight", e.Weight)
		result = append(result, e.Path)
	}

	if plan.UseFallback && len(result) < plan.Count {
		result = append(result, Fallback)
	}
	return result, nil
}

// Query resolves needles to the single best existing directory, or
// Fallback.
func Query(cfg config.Config, needles []string, cwd string) (string, error) {
	plan := Prepare(needles, Options{CheckExistence: true, Count: 1, UseFallback: true})
	result, err := Execute(cfg, plan, cwd)
	if err != nil {
		return "", err
	}
	return result[0], nil
}

// Complete returns the lines to print for tab completion. Only the first
// needle is considered. A single candidate is returned as a bare path;
// otherwise each candidate is encoded as a tab-entry token.
func Complete(cfg config.Config, needles []string, cwd string) ([]string, error) {
	needle := ""
	if len(needles) > 0 {
		needle = needles[0]
	}

	plan := Prepare([]string{needle}, Options{Count: CompleteCount})
	result, err := Execute(cfg, plan, cwd)
	if err != nil {
		return nil, err
	}
	if plan.Early || len(result) == 1 {
		return result, nil
	}

	menu := tabentry.FromMatches(plan.Needles[0], result)
	lines := make([]string, len(menu))
	for i, info := range menu {
		lines[i] = info.String()
	}
	return lines, nil
}

// Candidates returns up to count existing directories for needles, without
// fallback. It feeds the interactive picker, so a path matched by several
// tiers is listed once, at its best rank.
func Candidates(cfg config.Config, needles []string, cwd string, count int) ([]string, error) {
	plan := Prepare(needles, Options{CheckExistence: true, Count: count})
	result, err := Execute(cfg, plan, cwd)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(result))
	unique := result[:0]
	for _, p := range result {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique, nil
}

// WorkingDir returns the current directory, or "" if it is gone.
func WorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
