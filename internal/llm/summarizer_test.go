package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ppiankov/wraplint/internal/model"
)

func TestSummarizer_DisabledWhenNoProvider(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("empty config must not error: %v", err)
	}
	if s.IsEnabled() {
		t.Error("summarizer with no provider must be disabled")
	}

	summary, err := s.GenerateSummary(context.Background(), model.Report{})
	if err != nil {
		t.Errorf("disabled summarizer must not error: %v", err)
	}
	if summary != nil {
		t.Error("disabled summarizer must return nil summary")
	}
}

func TestSummarizer_NilSafe(t *testing.T) {
	var s *Summarizer
	if s.IsEnabled() {
		t.Error("nil summarizer must report disabled")
	}
}

// ollamaStub serves a canned /api/generate response
func ollamaStub(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:    "llama3.1:8b",
			Response: response,
			Done:     true,
		})
	}))
}

func TestSummarizer_GenerateSummary(t *testing.T) {
	server := ollamaStub(t, "Wrap the bare `Home` occurrence on line 2 in an annotation.")
	defer server.Close()

	s, err := NewSummarizer(Config{
		Provider:       "ollama",
		Model:          "llama3.1:8b",
		BaseURL:        server.URL,
		StrictFindings: true,
	})
	if err != nil {
		t.Fatalf("create summarizer: %v", err)
	}
	if !s.IsEnabled() {
		t.Fatal("summarizer must be enabled")
	}

	report := model.Report{
		Document: "doc.txt",
		Findings: []model.Finding{{Phrase: "Home", Lines: []int{2}}},
	}

	summary, err := s.GenerateSummary(context.Background(), report)
	if err != nil {
		t.Fatalf("generate summary: %v", err)
	}

	if !summary.Enabled || summary.Provider != "ollama" {
		t.Errorf("unexpected summary metadata: %+v", summary)
	}
	if !strings.Contains(summary.SummaryMD, "`Home`") {
		t.Errorf("summary text lost: %s", summary.SummaryMD)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", summary.Warnings)
	}
}

func TestSummarizer_StrictFindingsRejectsInventedPhrase(t *testing.T) {
	server := ollamaStub(t, "You should also wrap `Checkout` which I made up.")
	defer server.Close()

	s, err := NewSummarizer(Config{
		Provider:       "ollama",
		Model:          "llama3.1:8b",
		BaseURL:        server.URL,
		StrictFindings: true,
	})
	if err != nil {
		t.Fatalf("create summarizer: %v", err)
	}

	report := model.Report{
		Document: "doc.txt",
		Findings: []model.Finding{{Phrase: "Home", Lines: []int{2}}},
	}

	_, err = s.GenerateSummary(context.Background(), report)
	if err == nil {
		t.Fatal("expected strict findings check to reject the invented phrase")
	}
	if !strings.Contains(err.Error(), "Checkout") {
		t.Errorf("error should name the leaked phrase: %v", err)
	}
}

func TestSummarizer_WarnsWhenNoFindings(t *testing.T) {
	server := ollamaStub(t, "The document markup is fully consistent.")
	defer server.Close()

	s, err := NewSummarizer(Config{
		Provider: "ollama",
		Model:    "llama3.1:8b",
		BaseURL:  server.URL,
	})
	if err != nil {
		t.Fatalf("create summarizer: %v", err)
	}

	summary, err := s.GenerateSummary(context.Background(), model.Report{Document: "doc.txt"})
	if err != nil {
		t.Fatalf("generate summary: %v", err)
	}

	if len(summary.Warnings) == 0 {
		t.Error("expected an informational warning when there are no findings")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	out := RenderSeparateMarkdown(&model.LLMSummary{
		Provider:  "ollama",
		Model:     "llama3.1:8b",
		SummaryMD: "Wrap the bare occurrence.",
		Warnings:  []string{"no findings to summarize; summary is informational only"},
	})

	if !strings.Contains(out, "# LLM Remediation Summary") {
		t.Error("missing heading")
	}
	if !strings.Contains(out, "ollama/llama3.1:8b") {
		t.Error("missing provider/model attribution")
	}
	if !strings.Contains(out, "## Warnings") {
		t.Error("missing warnings section")
	}
}
