// Package types provides type definitions for structured data used throughout the wellness engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Preference tags understood by the nutrition engine.
const (
	TagEasy         = "easy"
	TagBudget       = "budget"
	TagQuick        = "quick"
	TagKidFriendly  = "kid_friendly"
	TagHighEnergy   = "high_energy"
	TagLight        = "light"
	TagBalanced     = "balanced"
	TagCalming      = "calming"
	TagHeartHealthy = "heart_healthy"
	TagLowSugar     = "low_sugar"
	TagLowSodium    = "low_sodium"
	TagStressRelief = "stress_relief"
)

// TagSet is an unordered set of qualitative tags.
type TagSet map[string]struct{}

// NewTagSet builds a set from the given tags. Duplicates collapse.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add inserts tags into the set, ignoring empty strings.
func (s TagSet) Add(tags ...string) {
	for _, t := range tags {
		if t != "" {
			s[t] = struct{}{}
		}
	}
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Overlap returns the number of tags present in both sets.
func (s TagSet) Overlap(other TagSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if large.Has(t) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
