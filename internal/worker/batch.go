package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/wraplint/internal/model"
	"github.com/ppiankov/wraplint/internal/pipeline"
)

// DocumentScanner defines the interface for scanning a single document
type DocumentScanner interface {
	ScanFile(ctx context.Context, path string) (*pipeline.ScanResult, error)
}

// ScanJob represents one document scan
type ScanJob struct {
	Path    string
	Scanner DocumentScanner
	Limiter *Limiter // Optional pacing; nil disables
}

// Execute runs the scan job
func (j *ScanJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx, j.Path); err != nil {
		return &ScanJobResult{Path: j.Path, Error: err}
	}

	result, err := j.Scanner.ScanFile(ctx, j.Path)
	if err != nil {
		return &ScanJobResult{Path: j.Path, Error: err}
	}
	return &ScanJobResult{Path: j.Path, Report: result.Report}
}

// ScanJobResult represents the result of one document scan
type ScanJobResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the scan result
func (r *ScanJobResult) GetError() error {
	return r.Error
}

// BatchProcessor scans multiple documents concurrently
type BatchProcessor struct {
	scanner     DocumentScanner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(scanner DocumentScanner, concurrency int, filesPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		scanner:     scanner,
		concurrency: concurrency,
		limiter:     NewLimiter(filesPerSecond, burst),
	}
}

// ProcessPaths scans the given documents concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ScanJobResult {
	if len(paths) == 0 {
		return []*ScanJobResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ScanJob{
			Path:    path,
			Scanner: b.scanner,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	scanResults := make([]*ScanJobResult, len(results))
	for i, result := range results {
		scanResults[i] = result.(*ScanJobResult)
	}

	return scanResults
}

// ProcessFile reads document paths from a list file and scans them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*ScanJobResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read path list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file (one per line).
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
