package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/wraplint/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a remediation summary of the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Report is the wraplint scan report to summarize
	Report model.Report

	// Phrases is the STRICT allowlist of phrases the LLM may quote.
	// The model must not invent phrases that are not in the findings.
	Phrases []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// QuotedPhrases are the phrases the LLM actually quoted (for verification)
	QuotedPhrases []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictFindings enforces the phrase allowlist (should always be true)
	StrictFindings bool

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:       "", // Disabled by default
		Model:          "",
		Timeout:        30,
		StrictFindings: true,
		MaxTokens:      1000,
	}
}

// BuildPrompt constructs the default prompt for remediation summarization
func BuildPrompt(report model.Report, phrases []string) string {
	prompt := fmt.Sprintf(`You are summarizing a wraplint report. wraplint flags phrases that are wrapped in @[static#...] annotations somewhere in a document but also appear bare elsewhere - it NEVER judges whether the text itself is correct.

CRITICAL RULES:
1. When quoting a phrase, wrap it in backticks and use ONLY phrases from this list:
%s

2. DO NOT invent phrases, line numbers, or findings beyond the report.
3. Suggest concrete remediation: wrap the bare occurrence, or drop the annotation if it is obsolete.
4. Never claim the document content is right or wrong - only describe markup consistency.

Report Summary:
- Document: %s
- Consistency Index: %d/100 (%s)
- Known Phrases: %d
- Flagged Phrases: %d
- Bare Occurrences: %d

Findings:
`, joinPhrases(phrases), report.Document, report.Score.Index, report.Score.Severity,
		report.Stats.KnownPhrases, report.Stats.FlaggedPhrases, report.Stats.BareOccurrences)

	// Add top findings
	for i, f := range report.Findings {
		if i >= 10 {
			prompt += fmt.Sprintf("... and %d more findings\n", len(report.Findings)-10)
			break
		}
		prompt += fmt.Sprintf("- `%s` appears bare on %d line(s)\n", f.Phrase, len(f.Lines))
	}

	prompt += "\nProvide a 3-4 sentence remediation summary."

	return prompt
}

// Helper functions

func joinPhrases(phrases []string) string {
	if len(phrases) == 0 {
		return "(No flagged phrases)"
	}
	result := ""
	for i, phrase := range phrases {
		if i >= 20 { // Limit to first 20 to avoid token bloat
			result += fmt.Sprintf("\n... and %d more phrases", len(phrases)-20)
			break
		}
		result += fmt.Sprintf("\n- `%s`", phrase)
	}
	return result
}

// extractQuoted extracts backtick-quoted phrases from text
func extractQuoted(text string) []string {
	quotePattern := regexp.MustCompile("`([^`]+)`")
	matches := quotePattern.FindAllStringSubmatch(text, -1)

	seen := make(map[string]bool)
	var unique []string
	for _, m := range matches {
		phrase := strings.TrimSpace(m[1])
		if !seen[phrase] {
			seen[phrase] = true
			unique = append(unique, phrase)
		}
	}

	return unique
}

// containsFold checks if a slice contains a string, case-insensitively
func containsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
