package search

import (
	"iter"
	"regexp"

	"github.com/montrey/autojump/store"
)

// Tier identifies which strategy produced a match. Lower tiers rank higher.
type Tier int

const (
	TierConsecutive Tier = iota
	TierFuzzy
	TierAnywhere
)

func (t Tier) String() string {
	switch t {
	case TierConsecutive:
		return "consecutive"
	case TierFuzzy:
		return "fuzzy"
	case TierAnywhere:
		return "anywhere"
	}
	return "unknown"
}

// Matcher ranks entries against a list of needles, most specific last.
// It owns copies of the needles and is built once per query.
type Matcher struct {
	needles     []string
	fuzzy       FuzzyMatcher
	consecutive *regexp.Regexp
	anywhere    *regexp.Regexp
}

// NewSmartCase builds a Matcher that ignores case unless a needle contains
// an uppercase letter.
func NewSmartCase(needles []string) *Matcher {
	return New(needles, DetectSmartCase(needles))
}

// New builds a Matcher. An empty needle list behaves like a single empty
// needle.
func New(needles []string, ignoreCase bool) *Matcher {
	if len(needles) == 0 {
		needles = []string{""}
	}
	owned := append([]string(nil), needles...)

	return &Matcher{
		needles:     owned,
		fuzzy:       NewFuzzyMatcher(owned[len(owned)-1]),
		consecutive: compile(MatchConsecutive(owned), ignoreCase),
		anywhere:    compile(MatchAnywhere(owned), ignoreCase),
	}
}

// Needles returns the needles the matcher was built with.
func (m *Matcher) Needles() []string {
	return append([]string(nil), m.needles...)
}

// Ranked lazily yields matches tier by tier: consecutive, then fuzzy, then
// anywhere, each tier in the order of entries. An entry matching several
// tiers is yielded once per tier. Ranging over the sequence again starts
// from the top.
func (m *Matcher) Ranked(entries []store.Entry) iter.Seq2[Tier, store.Entry] {
	return func(yield func(Tier, store.Entry) bool) {
		for _, tier := range []Tier{TierConsecutive, TierFuzzy, TierAnywhere} {
			for _, e := range entries {
				if m.matches(tier, e.Path) && !yield(tier, e) {
					return
				}
			}
		}
	}
}

// Execute is Ranked without the tier.
func (m *Matcher) Execute(entries []store.Entry) iter.Seq[store.Entry] {
	return func(yield func(store.Entry) bool) {
		for _, e := range m.Ranked(entries) {
			if !yield(e) {
				return
			}
		}
	}
}

func (m *Matcher) matches(tier Tier, path string) bool {
	switch tier {
	case TierConsecutive:
		return m.consecutive.MatchString(path)
	case TierFuzzy:
		return m.fuzzy.Match(path)
	case TierAnywhere:
		return m.anywhere.MatchString(path)
	}
	return false
}
