package search

import (
	"path/filepath"

	"github.com/xrash/smetrics"
)

// DefaultFuzzyThreshold is the minimum Jaro-Winkler similarity for the fuzzy
// tier.
const DefaultFuzzyThreshold = 0.6

// jaroWinklerPrefix is the longest common prefix that earns the Winkler boost.
const jaroWinklerPrefix = 4

// FuzzyMatcher compares a needle against the last component of a path.
type FuzzyMatcher struct {
	needle    string
	threshold float64
}

// NewFuzzyMatcher returns a matcher for needle with the default threshold.
func NewFuzzyMatcher(needle string) FuzzyMatcher {
	return FuzzyMatcher{needle: needle, threshold: DefaultFuzzyThreshold}
}

// Similarity returns the Jaro-Winkler similarity between the needle and the
// basename of path, counted in characters. ok is false for paths without a
// final component, such as "/" or "a/..".
func (f FuzzyMatcher) Similarity(path string) (sim float64, ok bool) {
	base, ok := basename(path)
	if !ok {
		return 0, false
	}
	a, b := byteAlphabet(f.needle, base)
	// boost threshold 0: the prefix bonus always applies
	return smetrics.JaroWinkler(a, b, 0, jaroWinklerPrefix), true
}

// Match reports whether path's basename is similar enough to the needle.
func (f FuzzyMatcher) Match(path string) bool {
	sim, ok := f.Similarity(path)
	return ok && sim >= f.threshold
}

// Codes for runes that occur in only one of the two strings. Such runes can
// never match, so they need no identity of their own.
const (
	onlyInA = 0xfe
	onlyInB = 0xff
)

// byteAlphabet re-encodes a and b with one byte per rune so that the
// byte-oriented scorer compares characters rather than UTF-8 code units.
// Runes present in both strings get distinct codes; equality between the
// two strings and their lengths in characters are preserved.
func byteAlphabet(a, b string) (string, string) {
	inB := make(map[rune]bool, len(b))
	for _, r := range b {
		inB[r] = true
	}
	codes := make(map[rune]byte)
	for _, r := range a {
		if _, seen := codes[r]; !seen && inB[r] && len(codes) < onlyInA {
			codes[r] = byte(len(codes))
		}
	}
	return encodeRunes(a, codes, onlyInA), encodeRunes(b, codes, onlyInB)
}

func encodeRunes(s string, codes map[rune]byte, other byte) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if c, ok := codes[r]; ok {
			out = append(out, c)
		} else {
			out = append(out, other)
		}
	}
	return string(out)
}

func basename(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}
