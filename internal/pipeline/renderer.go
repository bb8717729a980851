package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ppiankov/wraplint/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Markup Consistency Report\n\n")
	fmt.Fprintf(&b, "**Document:** `%s`\n\n", report.Document)
	fmt.Fprintf(&b, "**Scanned:** %s\n\n", report.ScannedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "**Consistency Index:** %d/100 (%s)\n\n", report.Score.Index, report.Score.Severity)

	fmt.Fprintf(&b, "## Stats\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n")
	fmt.Fprintf(&b, "|--------|-------|\n")
	fmt.Fprintf(&b, "| Lines | %d |\n", report.Stats.Lines)
	fmt.Fprintf(&b, "| Annotations | %d |\n", report.Stats.Annotations)
	fmt.Fprintf(&b, "| Known phrases | %d |\n", report.Stats.KnownPhrases)
	fmt.Fprintf(&b, "| Flagged phrases | %d |\n", report.Stats.FlaggedPhrases)
	fmt.Fprintf(&b, "| Bare occurrences | %d |\n\n", report.Stats.BareOccurrences)

	fmt.Fprintf(&b, "## Findings\n\n")
	if len(report.Findings) == 0 {
		fmt.Fprintf(&b, "No unwrapped occurrences of annotated phrases were found.\n\n")
	} else {
		fmt.Fprintf(&b, "| Phrase | Lines |\n")
		fmt.Fprintf(&b, "|--------|-------|\n")
		for _, f := range report.Findings {
			fmt.Fprintf(&b, "| `%s` | %s |\n", f.Phrase, joinLines(f.Lines))
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(report.Score.Signals) > 0 {
		fmt.Fprintf(&b, "## Signals\n\n")
		for _, sig := range report.Score.Signals {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", sig.Type, sig.Severity, sig.Description)
		}
		fmt.Fprintf(&b, "\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n")
		fmt.Fprintf(&b, "Generated by [wraplint](https://github.com/ppiankov/wraplint). ")
		fmt.Fprintf(&b, "wraplint reports markup inconsistency, not correctness: a flagged phrase may be intentionally unwrapped.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderLLMMarkdown writes a pre-rendered LLM summary document
func (r *Renderer) RenderLLMMarkdown(markdown string, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write LLM summary: %w", err)
	}
	return nil
}

// RenderSummary prints the human-readable result to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n")
	fmt.Printf("Document: %s\n", report.Document)
	fmt.Printf("Known phrases: %d (from %d annotations across %d lines)\n",
		report.Stats.KnownPhrases, report.Stats.Annotations, report.Stats.Lines)

	if len(report.Findings) == 0 {
		fmt.Printf("No unwrapped occurrences of annotated phrases found.\n")
	} else {
		fmt.Printf("Unwrapped occurrences:\n")
		for _, f := range report.Findings {
			fmt.Printf("  %s: line(s) %s\n", f.Phrase, joinLines(f.Lines))
		}
	}

	fmt.Printf("Consistency index: %d/100 (%s)\n", report.Score.Index, report.Score.Severity)
}

// joinLines formats line numbers as "2, 3, 7"
func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
