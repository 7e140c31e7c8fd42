package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type Result struct {
	Path    string
	Score   int
	Matches []int // Indices of matched characters
}

// Filter narrows paths to those matching query, best score first. An empty
// query keeps every path in its original order.
func Filter(paths []string, query string) []Result {
	// Spaces only separate words for the user; "foo bar" matches "foo/bar".
	query = strings.ReplaceAll(query, " ", "")
	if query == "" {
		results := make([]Result, len(paths))
		for i, p := range paths {
			results[i] = Result{Path: p}
		}
		return results
	}

	matches := fuzzy.Find(query, paths)
	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Path:    match.Str,
			Score:   match.Score,
			Matches: match.MatchedIndexes,
		})
	}
	return results
}
