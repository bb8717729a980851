package model

import "sort"

// PhraseSet holds the unique annotation payloads collected during pass 1.
// Payloads are stored verbatim (original casing preserved) and kept in
// first-seen order; later matching is case-insensitive but the set itself
// deduplicates by exact content.
type PhraseSet struct {
	order []string
	seen  map[string]struct{}
}

// NewPhraseSet creates an empty phrase set
func NewPhraseSet() *PhraseSet {
	return &PhraseSet{
		seen: make(map[string]struct{}),
	}
}

// Add adds a phrase to the set. It returns true if the phrase was not
// already present.
func (s *PhraseSet) Add(phrase string) bool {
	if _, ok := s.seen[phrase]; ok {
		return false
	}
	s.seen[phrase] = struct{}{}
	s.order = append(s.order, phrase)
	return true
}

// Has reports whether the phrase is in the set (exact match)
func (s *PhraseSet) Has(phrase string) bool {
	_, ok := s.seen[phrase]
	return ok
}

// Len returns the number of unique phrases
func (s *PhraseSet) Len() int {
	return len(s.order)
}

// Phrases returns the phrases in first-seen order
func (s *PhraseSet) Phrases() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// OccurrenceMap maps a known phrase to the ascending list of distinct
// 1-indexed line numbers where it appears unwrapped. A line number is
// recorded at most once per phrase even if the phrase matches several
// times on that line.
type OccurrenceMap struct {
	lines map[string][]int
}

// NewOccurrenceMap creates an empty occurrence map
func NewOccurrenceMap() *OccurrenceMap {
	return &OccurrenceMap{
		lines: make(map[string][]int),
	}
}

// Record appends a line number to the phrase's record unless it is
// already the most recent entry. Lines must be recorded in ascending
// order, which a sequential pass over the document guarantees.
func (m *OccurrenceMap) Record(phrase string, line int) {
	existing := m.lines[phrase]
	if n := len(existing); n > 0 && existing[n-1] == line {
		return
	}
	m.lines[phrase] = append(existing, line)
}

// Lines returns the recorded line numbers for a phrase (nil if none)
func (m *OccurrenceMap) Lines(phrase string) []int {
	existing := m.lines[phrase]
	if existing == nil {
		return nil
	}
	out := make([]int, len(existing))
	copy(out, existing)
	return out
}

// Len returns the number of phrases with at least one recorded occurrence
func (m *OccurrenceMap) Len() int {
	return len(m.lines)
}

// Total returns the total number of recorded occurrence lines across all phrases
func (m *OccurrenceMap) Total() int {
	total := 0
	for _, l := range m.lines {
		total += len(l)
	}
	return total
}

// Phrases returns the flagged phrases sorted by literal code-point order
func (m *OccurrenceMap) Phrases() []string {
	out := make([]string, 0, len(m.lines))
	for phrase := range m.lines {
		out = append(out, phrase)
	}
	sort.Strings(out)
	return out
}
