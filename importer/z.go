package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/montrey/autojump/store"
)

// ReadZ parses a z/fasd data file: one "path|rank|time" per line. The rank
// becomes the weight. Malformed lines are skipped.
func ReadZ(r io.Reader) ([]store.Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []store.Entry
	for scanner.Scan() {
		if e, ok := parseZLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read z data: %w", err)
	}
	return entries, nil
}

// ReadZFile is ReadZ on a file.
func ReadZFile(path string) ([]store.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open z data: %w", err)
	}
	defer f.Close()

	entries, err := ReadZ(f)
	if err != nil {
		return nil, err
	}
	log.Info("z_read", "path", path, "entries", len(entries))
	return entries, nil
}

// parseZLine splits from the right since paths may contain '|'.
func parseZLine(line string) (store.Entry, bool) {
	rest, _, ok := cutLast(line, "|")
	if !ok {
		return store.Entry{}, false
	}
	path, rank, ok := cutLast(rest, "|")
	if !ok || path == "" {
		return store.Entry{}, false
	}
	w, err := strconv.ParseFloat(rank, 64)
	if err != nil || !store.ValidWeight(w) {
		return store.Entry{}, false
	}
	return store.Entry{Path: path, Weight: w}, true
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
