package extract

import (
	"regexp"

	"github.com/ppiankov/wraplint/internal/model"
)

// OccurrenceScanner runs pass 2: it cleans each line and searches it for
// whole-word, case-insensitive occurrences of every known phrase.
type OccurrenceScanner struct {
	cleaner *Cleaner
}

// NewOccurrenceScanner creates a new occurrence scanner
func NewOccurrenceScanner(cleaner *Cleaner) *OccurrenceScanner {
	return &OccurrenceScanner{cleaner: cleaner}
}

// Scan walks the lines (1-indexed) and returns the occurrence map for the
// known phrases. Each phrase's pattern is compiled once per run rather than
// re-escaped per line. Zero-length payloads are skipped: a quoted empty
// phrase would boundary-match at every position.
func (s *OccurrenceScanner) Scan(lines []string, phrases *model.PhraseSet) *model.OccurrenceMap {
	occurrences := model.NewOccurrenceMap()
	if phrases.Len() == 0 {
		return occurrences
	}

	type compiled struct {
		phrase  string
		pattern *regexp.Regexp
	}

	patterns := make([]compiled, 0, phrases.Len())
	for _, phrase := range phrases.Phrases() {
		if phrase == "" {
			continue // malformed annotation, not fatal
		}
		patterns = append(patterns, compiled{
			phrase:  phrase,
			pattern: phrasePattern(phrase),
		})
	}

	for i, line := range lines {
		cleaned := s.cleaner.Clean(line)
		if cleaned == "" {
			continue
		}
		for _, p := range patterns {
			if p.pattern.MatchString(cleaned) {
				occurrences.Record(p.phrase, i+1)
			}
		}
	}

	return occurrences
}
