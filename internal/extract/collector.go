package extract

import (
	"github.com/ppiankov/wraplint/internal/model"
)

// PhraseCollector runs pass 1: it walks every line and accumulates the
// unique annotation payloads into a phrase set.
type PhraseCollector struct{}

// NewPhraseCollector creates a new phrase collector
func NewPhraseCollector() *PhraseCollector {
	return &PhraseCollector{}
}

// Collect extracts every annotation payload from the lines and returns the
// set of unique phrases plus the total number of annotation occurrences.
// Payloads are added verbatim: no trimming, no case folding. An empty set
// is a valid outcome for documents without annotations.
func (c *PhraseCollector) Collect(lines []string) (*model.PhraseSet, int) {
	set := model.NewPhraseSet()
	annotations := 0

	for _, line := range lines {
		for _, a := range ParseAnnotations(line) {
			annotations++
			set.Add(a.Phrase)
		}
	}

	return set, annotations
}
