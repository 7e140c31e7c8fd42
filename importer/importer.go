// Package importer merges directory histories kept by other jump tools into
// the autojump data file.
package importer

import (
	"fmt"
	"path/filepath"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/history"
	"github.com/montrey/autojump/logging"
	"github.com/montrey/autojump/store"
)

var log = logging.ForComponent(logging.CompImport)

// Source names a supported foreign format.
type Source string

const (
	SourceNavi Source = "navi"
	SourceZ    Source = "z"
)

// Read loads entries from path in the given format.
func Read(src Source, path string) ([]store.Entry, error) {
	switch src {
	case SourceNavi:
		return ReadNavi(path)
	case SourceZ:
		return ReadZFile(path)
	}
	return nil, fmt.Errorf("unknown import source %q (want %q or %q)", src, SourceNavi, SourceZ)
}

// Result reports what an import changed.
type Result struct {
	Added   int
	Merged  int
	Skipped int
}

// Merge folds imported into existing. Known paths have their weight
// increased in quadrature by the imported weight; new paths are appended in
// import order. Paths for which skip returns true are ignored.
func Merge(existing, imported []store.Entry, skip func(string) bool) ([]store.Entry, Result) {
	var res Result
	index := make(map[string]int, len(existing))
	for i, e := range existing {
		if _, ok := index[e.Path]; !ok {
			index[e.Path] = i
		}
	}

	for _, e := range imported {
		path := filepath.Clean(e.Path)
		if skip != nil && skip(path) {
			res.Skipped++
			continue
		}
		if i, ok := index[path]; ok {
			existing[i].Weight = history.Increase(existing[i].Weight, e.Weight)
			res.Merged++
			continue
		}
		index[path] = len(existing)
		existing = append(existing, store.Entry{Path: path, Weight: e.Weight})
		res.Added++
	}
	return existing, res
}

// Import merges imported into the store with a single load and save. The
// home directory and excluded directories are skipped.
func Import(cfg config.Config, imported []store.Entry, home string, exclude *history.Exclude) (Result, error) {
	entries, err := store.Load(cfg)
	if err != nil {
		return Result{}, err
	}

	home = filepath.Clean(home)
	entries, res := Merge(entries, imported, func(p string) bool {
		return p == home || exclude.Match(p)
	})

	if err := store.Save(cfg, entries); err != nil {
		return Result{}, err
	}
	log.Info("imported", "added", res.Added, "merged", res.Merged, "skipped", res.Skipped)
	return res, nil
}
