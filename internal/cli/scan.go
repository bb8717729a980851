package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/wraplint/internal/model"
	"github.com/ppiankov/wraplint/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	keepTags    bool
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a single document for inconsistent phrase markup",
	Long: `Scan runs the two-pass check on a single document:
- Collect every phrase wrapped in @[static#...] or @[static-header#...]
- Scan the document again for the same phrases appearing bare
- Suppress matches inside annotations and inside <...> markup spans
- Report each leaking phrase with its line numbers

Example:
  wraplint scan docs/index.txt
  wraplint scan docs/index.txt --json report.json --md report.md
  wraplint scan docs/index.txt --keep-tags
  wraplint scan docs/index.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Scan flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().BoolVar(&keepTags, "keep-tags", false, "also count matches inside <...> markup spans")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the loaded-document cache")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM remediation summary")
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", path)
		fmt.Fprintf(os.Stderr, "Strip tags: %v\n", !keepTags)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Scan.Timeout = timeout
	cfg.Scan.StripTags = !keepTags
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Pass 1: collecting annotated phrases...\n")
	}

	result, err := p.ScanFile(ctx, path)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Collected %d known phrases (%d annotations)\n",
			result.Report.Stats.KnownPhrases, result.Report.Stats.Annotations)
		fmt.Fprintf(os.Stderr, "✓ Flagged %d phrases with bare occurrences\n", result.Report.Stats.FlaggedPhrases)
		fmt.Fprintf(os.Stderr, "✓ Consistency index: %d/100\n", result.Report.Score.Index)
		if result.Report.LLM != nil && result.Report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM summary using %s/%s\n", result.Report.LLM.Provider, result.Report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(result.Report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// configureLLM fills the LLM section from flags and environment
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.StrictFindings = true // Always enforce

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}
