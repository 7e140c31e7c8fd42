package search

import (
	"runtime"
	"slices"
	"testing"

	"github.com/montrey/autojump/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(paths ...string) []store.Entry {
	out := make([]store.Entry, len(paths))
	for i, p := range paths {
		out[i] = store.Entry{Path: p, Weight: float64(len(paths) - i)}
	}
	return out
}

func collect(seq func(func(store.Entry) bool)) []string {
	var out []string
	for e := range seq {
		out = append(out, e.Path)
	}
	return out
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("patterns below use '/' as the separator")
	}
}

func TestDetectSmartCase(t *testing.T) {
	tests := []struct {
		name       string
		needles    []string
		ignoreCase bool
	}{
		{"no needles", nil, true},
		{"empty needle", []string{""}, true},
		{"lowercase", []string{"foo"}, true},
		{"several lowercase", []string{"foo", "bar"}, true},
		{"non-ascii without case", []string{"测试", "bar"}, true},
		{"one uppercase letter", []string{"foo", "bar", "测试", "baZ"}, false},
		{"non-ascii uppercase", []string{"Élan"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ignoreCase, DetectSmartCase(tt.needles))
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"test", "test"},
		{"a/b/c", "a/b/c"},
		{"under_score", "under_score"},
		{"test\x00test", `test\x{0}test`},
		{"测试", `\x{6d4b}\x{8bd5}`},
		{"a.b", `a\x{2e}b`},
		{`a\b`, `a\\b`},
		{"c++ (x)", `c\x{2b}\x{2b}\x{20}\x{28}x\x{29}`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestMatchAnywhere(t *testing.T) {
	assert.Equal(t, `.*foo.*`, MatchAnywhere([]string{"foo"}))
	assert.Equal(t, `.*foo.*baz.*`, MatchAnywhere([]string{"foo", "baz"}))
	assert.Equal(t, `.*\x{6d4b}\x{8bd5}.*baz.*`, MatchAnywhere([]string{"测试", "baz"}))
}

func TestMatchConsecutive(t *testing.T) {
	skipOnWindows(t)

	assert.Equal(t, `foo[^/]*$`, MatchConsecutive([]string{"foo"}))
	assert.Equal(t, `foo[^/]*/[^/]*baz[^/]*$`, MatchConsecutive([]string{"foo", "baz"}))
	assert.Equal(t, `\x{6d4b}\x{8bd5}[^/]*/[^/]*baz[^/]*$`, MatchConsecutive([]string{"测试", "baz"}))
}

func TestFuzzyMatcher(t *testing.T) {
	skipOnWindows(t)

	m := NewFuzzyMatcher("foo")
	haystack := []string{
		"/fow/bar",
		"/bar/foo",
		"/bar/fooow",
		"/fuzzy",
		"/moo/foo/baz",
		"/foo/ooofoo",
	}

	var got []string
	for _, p := range haystack {
		if m.Match(p) {
			got = append(got, p)
		}
	}
	assert.Equal(t, []string{"/bar/foo", "/bar/fooow", "/foo/ooofoo"}, got)

	sim, ok := m.Similarity("/x/foo")
	require.True(t, ok)
	assert.Equal(t, 1.0, sim)

	for _, p := range []string{"/", "", "/a/..", "."} {
		_, ok := m.Similarity(p)
		assert.False(t, ok, p)
	}
}

func TestFuzzyMatcherCountsCharacters(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		needle string
		path   string
		want   bool
	}{
		// no shared characters, though the UTF-8 lead bytes agree
		{"项目", "/home/u/配置", false},
		{"工作", "/home/u/备份", false},
		{"résumé", "/docs/été", false},
		{"项目", "/home/u/项目组", true},
		{"café", "/srv/cafe", true},
	}
	for _, tt := range tests {
		t.Run(tt.needle+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFuzzyMatcher(tt.needle).Match(tt.path))
		})
	}

	sim, ok := NewFuzzyMatcher("项目").Similarity("/home/u/配置")
	require.True(t, ok)
	assert.Equal(t, 0.0, sim)
}

func TestMatcherRankedNonASCII(t *testing.T) {
	skipOnWindows(t)

	m := NewSmartCase([]string{"项目"})
	var got []string
	for tier, e := range m.Ranked(entries("/home/u/配置", "/home/u/项目/src")) {
		got = append(got, tier.String()+":"+e.Path)
	}
	assert.Equal(t, []string{"anywhere:/home/u/项目/src"}, got)
}

func TestByteAlphabet(t *testing.T) {
	a, b := byteAlphabet("aé测", "测xé")
	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
	assert.Equal(t, a[1], b[2])
	assert.Equal(t, a[2], b[0])
	assert.NotEqual(t, a[0], b[1])
}

var tierHaystack = []string{
	"/foo/bar/baz",
	"/moo/foo/baz",
	"/baz/foo/bar",
	"/moo/baz/foo",
	"/foo/baz",
}

func TestMatcherTiers(t *testing.T) {
	skipOnWindows(t)

	m := New([]string{"foo", "baz"}, false)

	got := collect(m.Execute(entries(tierHaystack...)))
	assert.Equal(t, []string{
		// consecutive
		"/moo/foo/baz",
		"/foo/baz",
		// fuzzy
		"/foo/bar/baz",
		"/moo/foo/baz",
		"/baz/foo/bar",
		"/foo/baz",
		// anywhere
		"/foo/bar/baz",
		"/moo/foo/baz",
		"/foo/baz",
	}, got)
}

func TestMatcherRankedTiers(t *testing.T) {
	skipOnWindows(t)

	m := New([]string{"foo", "baz"}, false)
	byTier := map[Tier][]string{}
	for tier, e := range m.Ranked(entries(tierHaystack...)) {
		byTier[tier] = append(byTier[tier], e.Path)
	}

	assert.Equal(t, []string{"/moo/foo/baz", "/foo/baz"}, byTier[TierConsecutive])
	assert.Equal(t, []string{"/foo/bar/baz", "/moo/foo/baz", "/foo/baz"}, byTier[TierAnywhere])
	assert.Len(t, byTier[TierFuzzy], 4)
	assert.Equal(t, "fuzzy", TierFuzzy.String())
}

func TestMatcherSmartCase(t *testing.T) {
	skipOnWindows(t)

	haystack := entries("/Projects/GO", "/projects/go")

	lower := collect(NewSmartCase([]string{"proj", "go"}).Execute(haystack))
	assert.Equal(t, []string{
		"/Projects/GO", "/projects/go", // consecutive, case folded
		"/projects/go", // fuzzy compares basenames case-sensitively
		"/Projects/GO", "/projects/go", // anywhere
	}, lower)

	upper := collect(NewSmartCase([]string{"Proj", "GO"}).Execute(haystack))
	assert.Equal(t, []string{"/Projects/GO", "/Projects/GO", "/Projects/GO"}, upper)
}

func TestMatcherSpecialCharacters(t *testing.T) {
	skipOnWindows(t)

	haystack := entries("/src/c++", "/src/cxx", "/data/v1.2")
	assert.Equal(t, []string{"/src/c++"}, collect(New([]string{"c++"}, true).Execute(haystack))[:1])
	got := collect(New([]string{"1.2"}, true).Execute(haystack))
	assert.NotContains(t, got, "/src/cxx")
	assert.Contains(t, got, "/data/v1.2")
}

func TestMatcherIsRestartable(t *testing.T) {
	m := NewSmartCase([]string{"foo"})
	seq := m.Execute(entries("/a/foo", "/b/foo"))

	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestMatcherStopsEarly(t *testing.T) {
	m := NewSmartCase([]string{"foo"})
	var got []string
	for e := range m.Execute(entries("/a/foo", "/b/foo", "/c/foo")) {
		got = append(got, e.Path)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestMatcherOwnsNeedles(t *testing.T) {
	needles := []string{"foo"}
	m := NewSmartCase(needles)
	needles[0] = "bar"

	assert.Equal(t, []string{"foo"}, m.Needles())
	assert.True(t, slices.Contains(collect(m.Execute(entries("/x/foo"))), "/x/foo"))
}

func TestMatcherEmptyNeedles(t *testing.T) {
	m := New(nil, true)
	got := collect(m.Execute(entries("/a", "/b")))
	// consecutive and anywhere accept everything for an empty needle
	assert.Equal(t, []string{"/a", "/b", "/a", "/b"}, got)
}
