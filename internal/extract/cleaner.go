package extract

// Cleaner prepares a raw line for bare-phrase searching by eliding the
// spans where a match must not count: annotation occurrences themselves,
// and (optionally) markup-tag spans like <a href="...">.
type Cleaner struct {
	stripTags bool
}

// NewCleaner creates a new cleaner. When stripTags is false the <...>
// heuristic is skipped and only annotation spans are removed.
func NewCleaner(stripTags bool) *Cleaner {
	return &Cleaner{stripTags: stripTags}
}

// Clean returns the line with annotation spans removed and, if enabled,
// every <...> span replaced by a single space. Annotations are removed
// first: the annotation syntax may itself sit inside attribute-like
// contexts, and the payload inside an annotation must never count as an
// unwrapped occurrence of itself.
func (c *Cleaner) Clean(line string) string {
	cleaned := annotationStrip.ReplaceAllString(line, "")
	if c.stripTags {
		cleaned = markupTag.ReplaceAllString(cleaned, " ")
	}
	return cleaned
}
