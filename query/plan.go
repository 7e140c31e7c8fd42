package query

import (
	"path/filepath"
	"strings"

	"github.com/montrey/autojump/tabentry"
)

// Options are the caller's mode flags.
type Options struct {
	CheckExistence bool
	Count          int
	UseFallback    bool
}

// Plan is the outcome of Prepare. When Early is set the shell replayed a
// completion choice and EarlyPath is the answer; the store is not consulted.
type Plan struct {
	Early     bool
	EarlyPath string

	Needles        []string
	Offset         int
	Count          int
	CheckExistence bool
	UseFallback    bool
}

// Sanitize strips trailing separators from every needle, keeping a lone
// separator intact. An empty list becomes a single empty needle.
func Sanitize(needles []string) []string {
	if len(needles) == 0 {
		return []string{""}
	}
	out := make([]string, len(needles))
	for i, n := range needles {
		out[i] = sanitizeOne(n)
	}
	return out
}

func sanitizeOne(needle string) string {
	sep := string(filepath.Separator)
	if needle == sep {
		return needle
	}
	return strings.TrimRight(needle, sep)
}

// Prepare decodes the raw needles into a Plan. A first needle carrying a
// tab-entry path short-circuits the query. One carrying only an index
// replaces every needle with its own needle field and selects the offset;
// an explicit index also narrows the result to a single entry.
func Prepare(needles []string, opts Options) Plan {
	needles = Sanitize(needles)

	tab := tabentry.Parse(needles[0])
	if tab.HasPath {
		return Plan{Early: true, EarlyPath: tab.Path}
	}

	plan := Plan{
		Needles:        needles,
		Count:          opts.Count,
		CheckExistence: opts.CheckExistence,
		UseFallback:    opts.UseFallback,
	}
	if tab.HasIndex {
		if tab.IndexExplicit {
			plan.Count = 1
		}
		// indices are 1-based on the command line; "x__0" clamps to the top
		plan.Offset = max(tab.Index-1, 0)
		plan.Needles = []string{tab.Needle}
	}
	return plan
}
