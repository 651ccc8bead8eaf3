package model

import (
	"slices"
	"strings"
)

// BugSet is a set of bug identifiers
type BugSet map[string]struct{}

// NewBugSet creates a set holding the given identifiers
func NewBugSet(ids ...string) BugSet {
	s := make(BugSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts an identifier
func (s BugSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports membership
func (s BugSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the identifiers in ascending numeric order
func (s BugSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareBugID)
	return ids
}

// identifiers are digit strings, so a shorter one is always smaller
func compareBugID(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// SkipReason tells why a buglist has no text
type SkipReason string

const (
	SkipInvalidRelease  SkipReason = "invalid_release"
	SkipFirstBeta       SkipReason = "first_beta"
	SkipTagNotFound     SkipReason = "tag_not_found"
	SkipUpstreamFailure SkipReason = "upstream_failure"
	SkipNoBugs          SkipReason = "no_bugs"
)

// Buglist is the outcome of comparing a release against its predecessor.
// An empty Text with a SkipReason is the "no bug list available" result.
type Buglist struct {
	Release     Release    `json:"release"`
	CurrentTag  string     `json:"current_tag,omitempty"`
	PreviousTag string     `json:"previous_tag,omitempty"`
	Bugs        []string   `json:"bugs"`
	Backouts    []string   `json:"backouts"`
	Text        string     `json:"text"`
	SkipReason  SkipReason `json:"skip_reason,omitempty"`
	Err         error      `json:"-"` // Cause of an upstream or lookup failure, if any
}

// IsEmpty reports whether there is nothing to deliver
func (b *Buglist) IsEmpty() bool {
	return b.Text == ""
}
