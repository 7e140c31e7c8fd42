package store

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Entry is one weighted directory in the history.
type Entry struct {
	Path   string
	Weight float64
}

// String renders the entry the way --stat and --increase print it.
func (e Entry) String() string {
	return fmt.Sprintf("%.1f:\t%s", e.Weight, e.Path)
}

// SortDescending orders entries by weight, heaviest first. Equal weights keep
// no particular order.
func SortDescending(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
}

// SortAscending orders entries by weight, lightest first.
func SortAscending(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
}

// Paths returns the path of every entry, in order.
func Paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

// ValidWeight reports whether w is a usable weight: finite and not negative.
func ValidWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}

// parseLine decodes "<weight>\t<path>". The path may itself contain tabs.
func parseLine(line string) (Entry, bool) {
	weight, path, ok := strings.Cut(line, "\t")
	if !ok {
		return Entry{}, false
	}
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil || !ValidWeight(w) {
		return Entry{}, false
	}
	return Entry{Path: path, Weight: w}, true
}

func formatLine(e Entry) string {
	return strconv.FormatFloat(e.Weight, 'f', -1, 64) + "\t" + e.Path + "\n"
}
