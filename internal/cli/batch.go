package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ppiankov/wraplint/internal/model"
	"github.com/ppiankov/wraplint/internal/pipeline"
	"github.com/ppiankov/wraplint/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency    int
	outputDir      string
	batchTimeout   time.Duration
	filesPerSecond float64
	// keepTags, noCache, noFooter are defined in scan.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Scan multiple documents from a list file in parallel",
	Long: `Batch processes multiple documents concurrently:
- Read document paths from the list file (one per line, # comments skipped)
- Scan documents in parallel with a configurable worker count
- Optionally pace reads per directory (for shared or network mounts)
- Generate individual reports for each document

Example:
  wraplint batch docs.txt
  wraplint batch docs.txt --concurrency 10 --output-dir ./reports
  wraplint batch docs.txt --files-per-second 20`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./wraplint-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&filesPerSecond, "files-per-second", 0, "per-directory read pacing (0 disables)")

	// Inherit flags from scan command
	batchCmd.Flags().DurationVar(&timeout, "scan-timeout", 30*time.Second, "timeout for individual scans")
	batchCmd.Flags().BoolVar(&keepTags, "keep-tags", false, "also count matches inside <...> markup spans")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the loaded-document cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM remediation summary")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  wraplint Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.Scan.Timeout = timeout
	cfg.Scan.StripTags = !keepTags
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.FilesPerSecond = filesPerSecond
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, llmModel)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	// Create batch processor
	processor := worker.NewBatchProcessor(p, concurrency, cfg.RateLimiting.FilesPerSecond, cfg.RateLimiting.BurstSize)

	// Process documents
	fmt.Fprintf(os.Stderr, "⚙️  Reading document paths from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Processed %d documents with %d workers\n", len(results), concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Process results
	successCount := 0
	failureCount := 0

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		// Generate output file names
		slug := sanitizeFilename(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (index: %d/100, flagged: %d)\n",
			result.Path, result.Report.Score.Index, result.Report.Stats.FlaggedPhrases)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename turns a document path into a safe report file name
func sanitizeFilename(path string) string {
	s := filepath.Base(path)
	s = strings.TrimSuffix(s, filepath.Ext(s))

	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if s == "" {
		s = "document"
	}

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}

	return s
}
