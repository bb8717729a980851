package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/wraplint/internal/model"
)

// Scorer calculates the markup consistency index and generates signals
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate derives the consistency index (0-100) from the scan counters
// and findings. The index is purely diagnostic: findings are the contract,
// the score just ranks how inconsistent the document's markup is.
func (s *Scorer) Calculate(stats model.ScanStats, findings []model.Finding, phrases []string) model.Score {
	if stats.KnownPhrases == 0 {
		return model.Score{
			Index:    100,
			Severity: "clean",
			Signals: []model.Signal{
				{
					Type:        model.SignalNoAnnotations,
					Severity:    model.SeverityInfo,
					Description: "document carries no phrase annotations",
				},
			},
		}
	}

	var signals []model.Signal

	// 1. Bare leak ratio (up to 70 points of penalty)
	leakRatio := float64(stats.FlaggedPhrases) / float64(stats.KnownPhrases)
	leakPenalty := int(70 * leakRatio)
	signals = append(signals, model.Signal{
		Type:        model.SignalBareLeakRatio,
		Severity:    leakSeverity(leakRatio),
		Description: fmt.Sprintf("%d of %d known phrases also appear unwrapped", stats.FlaggedPhrases, stats.KnownPhrases),
		Data: map[string]interface{}{
			"flagged_phrases": stats.FlaggedPhrases,
			"known_phrases":   stats.KnownPhrases,
			"ratio":           leakRatio,
			"penalty":         leakPenalty,
		},
	})

	// 2. Occurrence density (up to 30 points of penalty)
	densityPenalty := 0
	if stats.BareOccurrences > 0 {
		density := float64(stats.BareOccurrences) / float64(stats.BareOccurrences+stats.Annotations)
		densityPenalty = int(30 * density)
	}

	// 3. Worst offenders
	if offenders := worstOffenders(findings); len(offenders) > 0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalWorstOffenders,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("phrases leaking on 3 or more lines: %s", strings.Join(offenders, ", ")),
			Data: map[string]interface{}{
				"phrases": offenders,
			},
		})
	}

	// 4. Case-variant payloads
	if variants := caseVariants(phrases); len(variants) > 0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalCaseVariants,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("annotation payloads differing only by case: %s", strings.Join(variants, ", ")),
			Data: map[string]interface{}{
				"payloads": variants,
			},
		})
	}

	index := 100 - leakPenalty - densityPenalty
	if index < 0 {
		index = 0
	}

	return model.Score{
		Index:    index,
		Severity: severityFor(index, stats.FlaggedPhrases),
		Signals:  signals,
	}
}

func leakSeverity(ratio float64) model.SignalSeverity {
	switch {
	case ratio == 0:
		return model.SeverityInfo
	case ratio < 0.5:
		return model.SeverityWarning
	default:
		return model.SeverityCritical
	}
}

// worstOffenders returns phrases flagged on 3 or more lines, worst first
func worstOffenders(findings []model.Finding) []string {
	var offenders []model.Finding
	for _, f := range findings {
		if len(f.Lines) >= 3 {
			offenders = append(offenders, f)
		}
	}

	sort.Slice(offenders, func(i, j int) bool {
		if len(offenders[i].Lines) != len(offenders[j].Lines) {
			return len(offenders[i].Lines) > len(offenders[j].Lines)
		}
		return offenders[i].Phrase < offenders[j].Phrase
	})

	if len(offenders) > 5 {
		offenders = offenders[:5]
	}

	names := make([]string, len(offenders))
	for i, f := range offenders {
		names[i] = fmt.Sprintf("%q (%d lines)", f.Phrase, len(f.Lines))
	}
	return names
}

// caseVariants returns payloads that collide when case-folded, e.g. both
// "Home" and "HOME" annotated in the same document
func caseVariants(phrases []string) []string {
	byFolded := make(map[string][]string)
	for _, p := range phrases {
		folded := strings.ToLower(p)
		byFolded[folded] = append(byFolded[folded], p)
	}

	var variants []string
	for _, group := range byFolded {
		if len(group) > 1 {
			sort.Strings(group)
			variants = append(variants, strings.Join(group, "/"))
		}
	}
	sort.Strings(variants)
	return variants
}

func severityFor(index int, flagged int) string {
	switch {
	case flagged == 0:
		return "clean"
	case index >= 70:
		return "minor"
	default:
		return "major"
	}
}
