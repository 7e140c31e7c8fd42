package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/monochromegane/go-gitignore"
	"github.com/montrey/autojump/config"
)

// Exclude matches directories that must never be recorded. Patterns use
// .gitignore syntax relative to the filesystem root, so "/tmp" anchors to
// /tmp while "node_modules" matches that name at any depth. A directory is
// excluded when it or any of its ancestors matches.
type Exclude struct {
	patterns string
}

// NewExclude builds a matcher from pattern lines. Blank lines and comments
// are ignored the way .gitignore ignores them.
func NewExclude(patterns []string) *Exclude {
	if len(patterns) == 0 {
		return nil
	}
	return &Exclude{patterns: strings.Join(patterns, "\n")}
}

// LoadExclude combines the patterns from settings with the ones in
// <prefix>/exclude, if that file exists.
func LoadExclude(cfg config.Config, patterns []string) (*Exclude, error) {
	all := append([]string(nil), patterns...)

	raw, err := os.ReadFile(cfg.ExcludePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read exclude file: %w", err)
	}
	if err == nil {
		all = append(all, strings.Split(string(raw), "\n")...)
	}
	return NewExclude(all), nil
}

// Match reports whether path is excluded. A nil Exclude matches nothing.
func (e *Exclude) Match(path string) bool {
	if e == nil || !filepath.IsAbs(path) {
		return false
	}

	path = filepath.Clean(path)
	base := filepath.VolumeName(path) + string(filepath.Separator)
	matcher := gitignore.NewGitIgnoreFromReader(base, strings.NewReader(e.patterns))

	for p := path; p != base; p = filepath.Dir(p) {
		if matcher.Match(p, true) {
			return true
		}
		if filepath.Dir(p) == p {
			break
		}
	}
	return false
}
