package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/wraplint/internal/cache"
	"github.com/ppiankov/wraplint/internal/extract"
	"github.com/ppiankov/wraplint/internal/llm"
	"github.com/ppiankov/wraplint/internal/model"
	"github.com/ppiankov/wraplint/internal/score"
	"github.com/ppiankov/wraplint/internal/validate"
)

// Pipeline orchestrates the complete two-pass scan of one document
type Pipeline struct {
	loader     *Loader
	validator  *validate.Validator
	collector  *extract.PhraseCollector
	scanner    *extract.OccurrenceScanner
	scorer     *score.Scorer
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var docCache cache.Cache
	if cfg.Cache.Enabled {
		docCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM)
		s, err := llm.NewSummarizer(llmConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	cleaner := extract.NewCleaner(cfg.Scan.StripTags)

	return &Pipeline{
		loader:     NewLoader(docCache, cfg.Cache.TTL, cfg.Scan.MaxLineBytes),
		validator:  validate.NewValidator(),
		collector:  extract.NewPhraseCollector(),
		scanner:    extract.NewOccurrenceScanner(cleaner),
		scorer:     score.NewScorer(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

// ScanResult contains the complete scan result for one document
type ScanResult struct {
	Report *model.Report
	Error  error
}

// ScanFile scans a single document and generates a complete report.
// Pass 1 collects the known phrases; when the set is empty the occurrence
// pass is skipped entirely and the report carries no findings.
func (p *Pipeline) ScanFile(ctx context.Context, path string) (*ScanResult, error) {
	// 1. Pre-flight validation
	if err := p.validator.ValidatePath(path); err != nil {
		return nil, err
	}

	// 2. Load document (normalized lines, shared by both passes)
	lines, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	// 3. Pass 1: collect known phrases
	phrases, annotations := p.collector.Collect(lines)

	// 4. Pass 2: scan for unwrapped occurrences (skipped when nothing to find)
	occurrences := model.NewOccurrenceMap()
	if phrases.Len() > 0 {
		occurrences = p.scanner.Scan(lines, phrases)
	}

	// 5. Build findings, sorted by literal code-point order of the phrase
	findings := make([]model.Finding, 0, occurrences.Len())
	for _, phrase := range occurrences.Phrases() {
		findings = append(findings, model.Finding{
			Phrase: phrase,
			Lines:  occurrences.Lines(phrase),
		})
	}

	stats := model.ScanStats{
		Lines:           len(lines),
		Annotations:     annotations,
		KnownPhrases:    phrases.Len(),
		FlaggedPhrases:  len(findings),
		BareOccurrences: occurrences.Total(),
	}

	report := &model.Report{
		Document:  path,
		ScannedAt: time.Now().UTC(),
		Stats:     stats,
		Findings:  findings,
		Score:     p.scorer.Calculate(stats, findings, phrases.Phrases()),
	}

	// 6. Generate LLM summary if enabled (AFTER scoring, never affects it)
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		llmSummary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if llmSummary != nil {
			report.LLM = llmSummary
		}
	}

	return &ScanResult{Report: report}, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Render LLM summary to a separate file if present
	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmMdPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		llmMarkdown := llm.RenderSeparateMarkdown(report.LLM)
		if err := p.renderer.RenderLLMMarkdown(llmMarkdown, llmMdPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM Summary: %s\n", llmMdPath)
		}
	}

	// Print summary to stdout
	p.renderer.RenderSummary(report)

	return nil
}
