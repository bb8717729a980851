package score

import (
	"strings"
	"testing"

	"github.com/ppiankov/wraplint/internal/model"
)

func TestScorer_NoAnnotations(t *testing.T) {
	scorer := NewScorer()

	score := scorer.Calculate(model.ScanStats{Lines: 10}, nil, nil)

	if score.Index != 100 {
		t.Errorf("expected index 100, got %d", score.Index)
	}
	if score.Severity != "clean" {
		t.Errorf("expected clean severity, got %s", score.Severity)
	}
	if len(score.Signals) != 1 || score.Signals[0].Type != model.SignalNoAnnotations {
		t.Errorf("expected a single no_annotations signal, got %+v", score.Signals)
	}
}

func TestScorer_CleanDocument(t *testing.T) {
	scorer := NewScorer()

	stats := model.ScanStats{
		Lines:        20,
		Annotations:  5,
		KnownPhrases: 3,
	}

	score := scorer.Calculate(stats, nil, []string{"Home", "About", "Contact"})

	if score.Index != 100 {
		t.Errorf("expected index 100 for no findings, got %d", score.Index)
	}
	if score.Severity != "clean" {
		t.Errorf("expected clean severity, got %s", score.Severity)
	}
}

func TestScorer_PartialLeak(t *testing.T) {
	scorer := NewScorer()

	stats := model.ScanStats{
		Lines:           50,
		Annotations:     4,
		KnownPhrases:    4,
		FlaggedPhrases:  1,
		BareOccurrences: 1,
	}
	findings := []model.Finding{
		{Phrase: "Home", Lines: []int{7}},
	}

	score := scorer.Calculate(stats, findings, []string{"Home", "About", "Contact", "Blog"})

	if score.Index >= 100 {
		t.Errorf("expected penalty for a leak, got %d", score.Index)
	}
	if score.Index < 70 {
		t.Errorf("one leaked phrase out of four should stay minor, got %d", score.Index)
	}
	if score.Severity != "minor" {
		t.Errorf("expected minor severity, got %s", score.Severity)
	}
}

func TestScorer_FullLeakIsMajor(t *testing.T) {
	scorer := NewScorer()

	stats := model.ScanStats{
		Lines:           10,
		Annotations:     2,
		KnownPhrases:    2,
		FlaggedPhrases:  2,
		BareOccurrences: 8,
	}
	findings := []model.Finding{
		{Phrase: "Home", Lines: []int{1, 2, 3, 4}},
		{Phrase: "About", Lines: []int{5, 6, 7, 8}},
	}

	score := scorer.Calculate(stats, findings, []string{"Home", "About"})

	if score.Severity != "major" {
		t.Errorf("expected major severity, got %s (index %d)", score.Severity, score.Index)
	}
	if score.Index < 0 {
		t.Errorf("index must not go below 0, got %d", score.Index)
	}

	// Both phrases leak on 3+ lines, so worst offenders must be present
	found := false
	for _, sig := range score.Signals {
		if sig.Type == model.SignalWorstOffenders {
			found = true
			if !strings.Contains(sig.Description, "Home") || !strings.Contains(sig.Description, "About") {
				t.Errorf("worst offenders should name both phrases: %s", sig.Description)
			}
		}
	}
	if !found {
		t.Error("expected a worst_offenders signal")
	}
}

func TestScorer_CaseVariantSignal(t *testing.T) {
	scorer := NewScorer()

	stats := model.ScanStats{
		Lines:        5,
		Annotations:  2,
		KnownPhrases: 2,
	}

	score := scorer.Calculate(stats, nil, []string{"Home", "HOME"})

	found := false
	for _, sig := range score.Signals {
		if sig.Type == model.SignalCaseVariants {
			found = true
			if !strings.Contains(sig.Description, "HOME/Home") {
				t.Errorf("expected sorted variant group in description, got %s", sig.Description)
			}
		}
	}
	if !found {
		t.Error("expected a case_variants signal for HOME/Home")
	}
}

func TestWorstOffenders_TopFiveOnly(t *testing.T) {
	findings := []model.Finding{
		{Phrase: "a", Lines: []int{1, 2, 3}},
		{Phrase: "b", Lines: []int{1, 2, 3, 4}},
		{Phrase: "c", Lines: []int{1, 2, 3, 4, 5}},
		{Phrase: "d", Lines: []int{1, 2, 3, 4, 5, 6}},
		{Phrase: "e", Lines: []int{1, 2, 3, 4, 5, 6, 7}},
		{Phrase: "f", Lines: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{Phrase: "under", Lines: []int{1, 2}}, // below threshold
	}

	offenders := worstOffenders(findings)

	if len(offenders) != 5 {
		t.Fatalf("expected top 5 offenders, got %d", len(offenders))
	}
	if !strings.Contains(offenders[0], "f") {
		t.Errorf("expected worst offender first, got %s", offenders[0])
	}
	for _, o := range offenders {
		if strings.Contains(o, "under") {
			t.Errorf("phrase below threshold must not appear: %s", o)
		}
	}
}
