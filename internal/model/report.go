package model

import "time"

// Report represents the complete wraplint scan report for one document
type Report struct {
	Document  string    `json:"document"`   // Path of the scanned document
	ScannedAt time.Time `json:"scanned_at"` // When the scan occurred

	Stats    ScanStats `json:"stats"`    // Pass 1 / pass 2 counters
	Findings []Finding `json:"findings"` // Phrases appearing unwrapped, sorted by phrase

	Score Score `json:"score"` // Markup consistency index and signals

	LLM *LLMSummary `json:"llm,omitempty"` // Optional LLM summary (never affects findings or score)
}

// ScanStats contains the counters accumulated across both passes
type ScanStats struct {
	Lines           int `json:"lines"`            // Total lines in the document
	Annotations     int `json:"annotations"`      // Annotation occurrences seen in pass 1
	KnownPhrases    int `json:"known_phrases"`    // Unique annotation payloads
	FlaggedPhrases  int `json:"flagged_phrases"`  // Phrases with at least one bare occurrence
	BareOccurrences int `json:"bare_occurrences"` // Distinct (phrase, line) bare occurrences
}

// Finding reports one known phrase that also appears unwrapped
type Finding struct {
	Phrase string `json:"phrase"` // Payload as extracted, original casing
	Lines  []int  `json:"lines"`  // Ascending distinct 1-indexed line numbers
}

// Score represents the transparent markup consistency breakdown
type Score struct {
	Index    int      `json:"index"`    // Overall consistency index (0-100)
	Severity string   `json:"severity"` // "clean", "minor", "major"
	Signals  []Signal `json:"signals"`  // Diagnostic signals with transparent data
}

// Signal represents a diagnostic signal with transparent scoring data
type Signal struct {
	Type        SignalType             `json:"type"`           // Signal classification
	Severity    SignalSeverity         `json:"severity"`       // info, warning, critical
	Description string                 `json:"description"`    // Human-readable description
	Data        map[string]interface{} `json:"data,omitempty"` // Transparent scoring data (formulas, inputs)
}

// SignalType classifies the type of diagnostic signal
type SignalType string

const (
	SignalBareLeakRatio  SignalType = "bare_leak_ratio" // Flagged phrases vs known phrases
	SignalWorstOffenders SignalType = "worst_offenders" // Phrases leaking on the most lines
	SignalCaseVariants   SignalType = "case_variants"   // Payloads differing only by case
	SignalNoAnnotations  SignalType = "no_annotations"  // Document carries no annotations at all
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// LLMSummary contains the optional LLM-generated remediation summary.
// It is clearly separated and never feeds back into findings or score.
type LLMSummary struct {
	Enabled        bool     `json:"enabled"`
	Provider       string   `json:"provider,omitempty"`   // openai, anthropic, ollama
	Model          string   `json:"model,omitempty"`      // Model name
	StrictFindings bool     `json:"strict_findings"`      // Whether phrase-allowlist enforcement was enabled
	SummaryMD      string   `json:"summary_md,omitempty"` // Markdown summary
	Warnings       []string `json:"warnings,omitempty"`   // Any issues encountered while generating
}
