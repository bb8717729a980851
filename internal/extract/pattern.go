package extract

import (
	"regexp"
	"strings"
)

// Tag identifies which annotation variant wrapped a phrase
type Tag string

const (
	TagStatic       Tag = "static"
	TagStaticHeader Tag = "static-header"
)

// Annotation is one parsed occurrence of the wrapping syntax,
// e.g. @[static#Home] or @[static-header#Getting Started].
type Annotation struct {
	Tag    Tag    // Normalized to lower case
	Phrase string // Payload verbatim, original casing preserved
}

// The annotation syntax: literal "@[" marker, one of two tag keywords,
// "#" separator, then the payload captured non-greedily up to the first
// closing bracket. Keywords match case-insensitively. Go's regexp engine
// is stateless per call, so repeated use across lines cannot interfere.
var (
	// annotationExtract captures the tag keyword and the payload
	annotationExtract = regexp.MustCompile(`(?i)@\[(static-header|static)#(.*?)\]`)

	// annotationStrip matches the entire annotation span for removal
	annotationStrip = regexp.MustCompile(`(?i)@\[(?:static-header|static)#.*?\]`)

	// markupTag matches any <...> span, non-greedy. This is a deliberate
	// approximation: no validation of well-formedness, nesting, or
	// escaping. Stricter parsing would change which occurrences are
	// suppressed.
	markupTag = regexp.MustCompile(`<.*?>`)
)

// ParseAnnotations returns every annotation occurrence on the line, in order
func ParseAnnotations(line string) []Annotation {
	matches := annotationExtract.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	annotations := make([]Annotation, 0, len(matches))
	for _, m := range matches {
		annotations = append(annotations, Annotation{
			Tag:    Tag(strings.ToLower(m[1])),
			Phrase: m[2],
		})
	}
	return annotations
}

// phrasePattern builds a case-insensitive whole-word pattern for a literal
// phrase. All metacharacters are quoted so the phrase is never interpreted
// as a pattern itself. "Whole word" means a word boundary on both ends, so
// searching for "cat" does not match inside "category".
func phrasePattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}
