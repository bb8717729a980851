package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/wraplint/internal/model"
)

// Summarizer generates optional remediation summaries for scan reports.
// It wraps a Provider and converts reports into prompts and responses
// into model.LLMSummary values.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider.
// A config with an empty provider yields a disabled summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces an LLM remediation summary for the report.
// The summary never feeds back into findings or score; failures are
// returned for the caller to degrade into a warning.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	phrases := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		phrases = append(phrases, f.Phrase)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:  report,
		Phrases: phrases,
	})
	if err != nil {
		return nil, err
	}

	summary := &model.LLMSummary{
		Enabled:        true,
		Provider:       s.provider.Name(),
		Model:          resp.Model,
		StrictFindings: s.config.StrictFindings,
		SummaryMD:      resp.Summary,
	}

	if len(report.Findings) == 0 {
		summary.Warnings = append(summary.Warnings, "no findings to summarize; summary is informational only")
	}

	return summary, nil
}

// RenderSeparateMarkdown renders the LLM summary as a standalone Markdown
// document, clearly labeled as machine-generated.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	var b strings.Builder

	b.WriteString("# LLM Remediation Summary\n\n")
	fmt.Fprintf(&b, "> Generated by %s/%s. This summary is advisory and does not alter the findings.\n\n",
		summary.Provider, summary.Model)
	b.WriteString(summary.SummaryMD)
	b.WriteString("\n")

	if len(summary.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range summary.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
