package search

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// DetectSmartCase reports whether matching should ignore case: it does
// unless some needle contains an uppercase letter.
func DetectSmartCase(needles []string) bool {
	for _, s := range needles {
		for _, r := range s {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

// Escape quotes s for use inside a regular expression. ASCII letters,
// digits, '_' and '/' are kept as-is, a backslash becomes `\\`, and every
// other rune is written as an explicit code point (`\x{6d4b}`), which keeps
// the pattern independent of the locale.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_', r == '/':
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\\`)
		default:
			fmt.Fprintf(&b, `\x{%x}`, r)
		}
	}
	return b.String()
}

// MatchAnywhere builds `.*n1.*n2.*`: every needle, in order, anywhere in the
// path.
func MatchAnywhere(needles []string) string {
	var b strings.Builder
	b.WriteString(".*")
	for _, s := range needles {
		b.WriteString(Escape(s))
		b.WriteString(".*")
	}
	return b.String()
}

// MatchConsecutive builds `n1[^/]*/[^/]*n2[^/]*$`: each needle lies in its own
// path component, the components are adjacent, and the last needle sits in
// the final component.
func MatchConsecutive(needles []string) string {
	sep := Escape(string(filepath.Separator))
	noSep := "[^" + sep + "]*"

	var b strings.Builder
	for i, s := range needles {
		if i > 0 {
			b.WriteString(noSep)
			b.WriteString(sep)
			b.WriteString(noSep)
		}
		b.WriteString(Escape(s))
	}
	b.WriteString(noSep)
	b.WriteString("$")
	return b.String()
}

// compile never fails for patterns built from escaped needles.
func compile(pattern string, ignoreCase bool) *regexp.Regexp {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	return regexp.MustCompile(pattern)
}
