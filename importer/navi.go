package importer

import (
	"database/sql"
	"fmt"
	"math"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/montrey/autojump/history"
	"github.com/montrey/autojump/store"
)

// openNavi opens a navi database read-only.
func openNavi(dbPath string) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open navi database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open navi database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping navi database: %w", err)
	}
	return db, nil
}

// ReadNavi converts a navi history database into entries. Each recorded
// visit counts as one default increase, so a path visited n times weighs
// what n quadrature increases of DefaultIncrease would give. Tagged paths
// count as one extra visit.
func ReadNavi(dbPath string) ([]store.Entry, error) {
	db, err := openNavi(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	visits, order, err := naviHistory(db)
	if err != nil {
		return nil, err
	}

	tagged, err := naviTaggedPaths(db)
	if err != nil {
		return nil, err
	}
	for _, p := range tagged {
		if _, ok := visits[p]; !ok {
			order = append(order, p)
		}
		visits[p]++
	}

	entries := make([]store.Entry, 0, len(order))
	for _, p := range order {
		entries = append(entries, store.Entry{Path: p, Weight: visitWeight(visits[p])})
	}
	log.Info("navi_read", "path", dbPath, "entries", len(entries))
	return entries, nil
}

// visitWeight folds n increases of DefaultIncrease: sqrt(n) * delta.
func visitWeight(n int) float64 {
	return math.Sqrt(float64(n)) * history.DefaultIncrease
}

func naviHistory(db *sql.DB) (map[string]int, []string, error) {
	rows, err := db.Query(`SELECT path, frequency FROM history ORDER BY frequency DESC, last_visited DESC`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	visits := make(map[string]int)
	var order []string
	for rows.Next() {
		var path string
		var frequency int
		if err := rows.Scan(&path, &frequency); err != nil {
			return nil, nil, err
		}
		if frequency < 1 {
			frequency = 1
		}
		if _, ok := visits[path]; !ok {
			order = append(order, path)
		}
		visits[path] += frequency
	}
	return visits, order, rows.Err()
}

func naviTaggedPaths(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT path FROM tags ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all tagged paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
