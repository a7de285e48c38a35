package planner

import (
	"encoding/json"
	"sort"
)

// PreferenceSet holds selected tags. The nil set is a valid empty set for reads.
type PreferenceSet map[Preference]struct{}

func NewPreferenceSet(tags ...Preference) PreferenceSet {
	s := make(PreferenceSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s PreferenceSet) Has(tag Preference) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts tag and reports whether it was newly added. A nil set is
// allocated on first use.
func (s *PreferenceSet) Add(tag Preference) bool {
	if s.Has(tag) {
		return false
	}
	if *s == nil {
		*s = make(PreferenceSet)
	}
	(*s)[tag] = struct{}{}
	return true
}

func (s PreferenceSet) Clone() PreferenceSet {
	out := make(PreferenceSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Tags returns the members in activity order.
func (s PreferenceSet) Tags() []Preference {
	tags := make([]Preference, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func (s PreferenceSet) Equal(other PreferenceSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

func (s PreferenceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

// UnmarshalJSON replaces the set; duplicate tags in the array collapse.
func (s *PreferenceSet) UnmarshalJSON(data []byte) error {
	var tags []Preference
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewPreferenceSet(tags...)
	return nil
}
