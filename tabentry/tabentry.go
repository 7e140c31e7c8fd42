// Package tabentry encodes and decodes the "needle__index__path" tokens the
// shell completion uses to replay a chosen candidate.
package tabentry

import (
	"strconv"
	"strings"
)

// Separator splits the needle, index and path fields.
const Separator = "__"

// Info is the decoded form of one token. Fields are only meaningful when
// the matching Has* flag is set.
type Info struct {
	Needle    string
	HasNeedle bool

	Index         int
	HasIndex      bool
	IndexExplicit bool

	Path    string
	HasPath bool
}

// Parse decodes token.
//
//	"a"       -> nothing set, the token is a plain needle
//	"a__"     -> needle "a", index 1 (implicit)
//	"a__3"    -> needle "a", index 3
//	"a__3__p" -> needle "a", index 3, path "p"
//
// Only the first character of the index field counts, and it must be an
// ASCII digit; "a__12" yields index 1 and "a__x" yields no index. The path
// field is taken verbatim.
func Parse(token string) Info {
	var info Info

	needle, rest, ok := strings.Cut(token, Separator)
	if !ok {
		return info
	}
	info.Needle, info.HasNeedle = needle, true

	if index, path, ok := strings.Cut(rest, Separator); ok {
		info.parseIndex(index, true)
		info.Path, info.HasPath = path, true
		return info
	}

	if rest == "" {
		info.parseIndex("1", false)
	} else {
		info.parseIndex(rest, true)
	}
	return info
}

func (info *Info) parseIndex(s string, explicit bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return
	}
	info.Index = int(s[0] - '0')
	info.HasIndex = true
	info.IndexExplicit = explicit
}

// String re-encodes the fields that are present.
func (info Info) String() string {
	var b strings.Builder
	if info.HasNeedle {
		b.WriteString(info.Needle)
	}
	if info.HasIndex {
		b.WriteString(Separator)
		b.WriteString(strconv.Itoa(info.Index))
	}
	if info.HasPath {
		b.WriteString(Separator)
		b.WriteString(info.Path)
	}
	return b.String()
}

// FromMatches builds the completion menu for needle: one entry per path,
// numbered from 1.
func FromMatches(needle string, paths []string) []Info {
	out := make([]Info, len(paths))
	for i, p := range paths {
		out[i] = Info{
			Needle:        needle,
			HasNeedle:     true,
			Index:         i + 1,
			HasIndex:      true,
			IndexExplicit: true,
			Path:          p,
			HasPath:       true,
		}
	}
	return out
}
