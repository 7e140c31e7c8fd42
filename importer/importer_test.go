package importer

import (
	"database/sql"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/montrey/autojump/config"
	"github.com/montrey/autojump/history"
	"github.com/montrey/autojump/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const naviSchema = `
CREATE TABLE tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	path TEXT NOT NULL,
	UNIQUE(name, path)
);
CREATE TABLE settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL UNIQUE,
	frequency INTEGER DEFAULT 1,
	last_visited TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// newNaviDB writes a navi database with the given visit counts and tags.
func newNaviDB(t *testing.T, visits map[string]int, tags map[string][]string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "navi.db")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(naviSchema)
	require.NoError(t, err)

	for path, n := range visits {
		for range n {
			_, err := db.Exec(`
				INSERT INTO history (path, frequency, last_visited)
				VALUES (?, 1, CURRENT_TIMESTAMP)
				ON CONFLICT(path) DO UPDATE SET
					frequency = frequency + 1,
					last_visited = CURRENT_TIMESTAMP`, path)
			require.NoError(t, err)
		}
	}
	for name, paths := range tags {
		for _, p := range paths {
			_, err := db.Exec(`INSERT OR IGNORE INTO tags (name, path) VALUES (?, ?)`, name, p)
			require.NoError(t, err)
		}
	}
	return dbPath
}

func weightOf(entries []store.Entry, path string) (float64, bool) {
	for _, e := range entries {
		if e.Path == path {
			return e.Weight, true
		}
	}
	return 0, false
}

func TestReadNavi(t *testing.T) {
	dbPath := newNaviDB(t,
		map[string]int{
			"/home/user/project1": 4,
			"/home/user/once":     1,
		},
		map[string][]string{
			"@project": {"/home/user/project1", "/home/user/tagged"},
			"@work":    {"/home/user/tagged"},
		},
	)

	entries, err := ReadNavi(dbPath)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// history comes first, most visited leading
	assert.Equal(t, "/home/user/project1", entries[0].Path)

	w, ok := weightOf(entries, "/home/user/project1")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(5)*10, w, 1e-9)

	w, ok = weightOf(entries, "/home/user/once")
	require.True(t, ok)
	assert.InDelta(t, 10.0, w, 1e-9)

	// DISTINCT collapses the two tags into one visit
	w, ok = weightOf(entries, "/home/user/tagged")
	require.True(t, ok)
	assert.InDelta(t, 10.0, w, 1e-9)
}

func TestVisitWeightMatchesRepeatedIncrease(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 20} {
		w := 0.0
		for range n {
			w = history.Increase(w, history.DefaultIncrease)
		}
		assert.InDelta(t, w, visitWeight(n), 1e-9, "n=%d", n)
	}
}

func TestReadNaviMissing(t *testing.T) {
	_, err := ReadNavi(filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadNaviLeavesDatabaseUntouched(t *testing.T) {
	dbPath := newNaviDB(t, map[string]int{"/a": 1}, nil)
	before, err := os.ReadFile(dbPath)
	require.NoError(t, err)

	_, err = ReadNavi(dbPath)
	require.NoError(t, err)

	after, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReadZ(t *testing.T) {
	data := strings.Join([]string{
		"/home/user/src|42.5|1700000000",
		"/home/user/with|pipe|3|1700000001",
		"garbage",
		"/no/time|7",
		"|5|1700000000",
		"/bad/rank|abc|1700000000",
		"/negative|-1|1700000000",
		"/nan|NaN|1700000000",
		"/inf|+Inf|1700000000",
		"",
	}, "\n")

	entries, err := ReadZ(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []store.Entry{
		{Path: "/home/user/src", Weight: 42.5},
		{Path: "/home/user/with|pipe", Weight: 3},
	}, entries)
}

func TestReadZFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".z")
	require.NoError(t, os.WriteFile(path, []byte("/x|1|0\n"), 0o644))

	entries, err := ReadZFile(path)
	require.NoError(t, err)
	assert.Equal(t, []store.Entry{{Path: "/x", Weight: 1}}, entries)

	_, err = ReadZFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".z")
	require.NoError(t, os.WriteFile(path, []byte("/x|1|0\n"), 0o644))

	entries, err := Read(SourceZ, path)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = Read(Source("fasd"), path)
	assert.ErrorContains(t, err, "unknown import source")
}

func TestMerge(t *testing.T) {
	existing := []store.Entry{
		{Path: "/a", Weight: 30},
		{Path: "/b", Weight: 5},
	}
	imported := []store.Entry{
		{Path: "/a/", Weight: 40},
		{Path: "/c", Weight: 2},
		{Path: "/skip", Weight: 9},
		{Path: "/c", Weight: 2},
	}

	got, res := Merge(existing, imported, func(p string) bool { return p == "/skip" })

	assert.Equal(t, Result{Added: 1, Merged: 2, Skipped: 1}, res)
	require.Len(t, got, 3)
	assert.Equal(t, store.Entry{Path: "/a", Weight: 50}, got[0])
	assert.Equal(t, store.Entry{Path: "/b", Weight: 5}, got[1])
	assert.Equal(t, "/c", got[2].Path)
	assert.InDelta(t, math.Sqrt(8), got[2].Weight, 1e-9)
}

func TestImport(t *testing.T) {
	cfg := config.FromPrefix(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, store.Save(cfg, []store.Entry{{Path: "/srv/app", Weight: 6}}))

	exclude := history.NewExclude([]string{"/tmp"})
	res, err := Import(cfg, []store.Entry{
		{Path: "/srv/app", Weight: 8},
		{Path: "/home/me", Weight: 100},
		{Path: "/tmp/scratch", Weight: 100},
		{Path: "/opt/tool", Weight: 3},
	}, "/home/me/", exclude)
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1, Merged: 1, Skipped: 2}, res)

	entries, err := store.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, []store.Entry{
		{Path: "/srv/app", Weight: 10},
		{Path: "/opt/tool", Weight: 3},
	}, entries)
}

func TestImportFromNavi(t *testing.T) {
	cfg := config.FromPrefix(filepath.Join(t.TempDir(), "data"))
	dbPath := newNaviDB(t, map[string]int{"/srv/repo": 2}, nil)

	imported, err := Read(SourceNavi, dbPath)
	require.NoError(t, err)

	_, err = Import(cfg, imported, "/home/me", nil)
	require.NoError(t, err)

	entries, err := store.Load(cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, math.Sqrt(200), entries[0].Weight, 1e-9)
}
