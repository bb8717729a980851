package extract

import (
	"strings"
	"testing"
)

func TestCleaner_RemovesAnnotations(t *testing.T) {
	cleaner := NewCleaner(true)

	cleaned := cleaner.Clean("@[static#Home] is great.")

	if strings.Contains(cleaned, "Home") {
		t.Errorf("annotation payload must not survive cleaning, got %q", cleaned)
	}
	if !strings.Contains(cleaned, "is great.") {
		t.Errorf("surrounding prose must survive, got %q", cleaned)
	}
}

func TestCleaner_TagSpansReplacedWithSpace(t *testing.T) {
	cleaner := NewCleaner(true)

	cleaned := cleaner.Clean(`<a href="Home">Home</a> link`)

	// The attribute value disappears with the tag; the visible text stays
	if cleaned != " Home  link" {
		t.Errorf("unexpected cleaned line: %q", cleaned)
	}
}

func TestCleaner_AnnotationsRemovedBeforeTags(t *testing.T) {
	cleaner := NewCleaner(true)

	// Annotation syntax inside an attribute-like context must be cleared
	// first, then the remaining tag span is stripped
	cleaned := cleaner.Clean(`<div title="@[static#cat]">text</div>`)

	if strings.Contains(cleaned, "cat") {
		t.Errorf("payload inside attribute must not survive, got %q", cleaned)
	}
	if !strings.Contains(cleaned, "text") {
		t.Errorf("visible text must survive, got %q", cleaned)
	}
}

func TestCleaner_KeepTags(t *testing.T) {
	cleaner := NewCleaner(false)

	cleaned := cleaner.Clean(`<div title="cat">text</div> @[static#cat]`)

	if !strings.Contains(cleaned, `<div title="cat">`) {
		t.Errorf("tag spans must survive when stripping is disabled, got %q", cleaned)
	}
	if strings.Contains(cleaned, "@[static#cat]") {
		t.Errorf("annotations are removed regardless of tag stripping, got %q", cleaned)
	}
}

func TestCleaner_NeverGrowsLine(t *testing.T) {
	cleaner := NewCleaner(true)

	inputs := []string{
		"plain text",
		"@[static#Home] and <b>bold</b>",
		"<<>> nested-ish <a><b>",
		"",
	}

	for _, in := range inputs {
		if out := cleaner.Clean(in); len(out) > len(in) {
			t.Errorf("cleaned line longer than input: %q -> %q", in, out)
		}
	}
}

func TestCleaner_ApproximateTagHeuristic(t *testing.T) {
	cleaner := NewCleaner(true)

	// The <...> heuristic is non-greedy and unvalidated: "a < b and c > d"
	// loses the span between the brackets. Preserved behavior, not a bug.
	cleaned := cleaner.Clean("a < b and c > d")

	if cleaned != "a   d" {
		t.Errorf("expected approximate heuristic result %q, got %q", "a   d", cleaned)
	}
}
