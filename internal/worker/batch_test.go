package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/wraplint/internal/model"
	"github.com/ppiankov/wraplint/internal/pipeline"
)

type fakeScanner struct {
	mu      sync.Mutex
	scanned []string
	failOn  string
}

func (s *fakeScanner) ScanFile(ctx context.Context, path string) (*pipeline.ScanResult, error) {
	s.mu.Lock()
	s.scanned = append(s.scanned, path)
	s.mu.Unlock()

	if path == s.failOn {
		return nil, fmt.Errorf("scan %s: boom", path)
	}

	return &pipeline.ScanResult{
		Report: &model.Report{
			Document:  path,
			ScannedAt: time.Now(),
		},
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	scanner := &fakeScanner{}
	processor := NewBatchProcessor(scanner, 2, 0, 0)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("unexpected error for %s: %v", r.Path, r.Error)
		}
		if r.Report == nil || r.Report.Document != r.Path {
			t.Errorf("result for %s carries wrong report", r.Path)
		}
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	scanner := &fakeScanner{failOn: "bad.txt"}
	processor := NewBatchProcessor(scanner, 2, 0, 0)

	results := processor.ProcessPaths(context.Background(), []string{"ok.txt", "bad.txt"})

	var failed, succeeded int
	for _, r := range results {
		if r.Error != nil {
			failed++
			if r.Path != "bad.txt" {
				t.Errorf("wrong path failed: %s", r.Path)
			}
		} else {
			succeeded++
		}
	}

	if failed != 1 || succeeded != 1 {
		t.Errorf("expected 1 failure and 1 success, got %d/%d", failed, succeeded)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&fakeScanner{}, 2, 0, 0)

	results := processor.ProcessPaths(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "paths.txt")
	content := strings.Join([]string{
		"# comment line",
		"docs/a.txt",
		"",
		"docs/b.txt",
		"docs/a.txt", // duplicate
	}, "\n")
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	scanner := &fakeScanner{}
	processor := NewBatchProcessor(scanner, 2, 0, 0)

	results, err := processor.ProcessFile(context.Background(), listPath)
	if err != nil {
		t.Fatalf("process file: %v", err)
	}

	if len(results) != 2 {
		t.Errorf("expected 2 deduplicated paths, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "paths.txt")
	content := "a.txt\n# skip me\n\n  b.txt  \na.txt\n"
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("read paths: %v", err)
	}

	want := []string{"a.txt", "b.txt"}
	if len(paths) != len(want) {
		t.Fatalf("expected %v, got %v", want, paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("expected %v, got %v", want, paths)
			break
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	_, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing list file")
	}
}
