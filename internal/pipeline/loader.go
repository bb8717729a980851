package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/wraplint/internal/cache"
)

// Loader reads a document into normalized lines. Both passes iterate the
// same slice, so the file is read from disk at most once per scan, and at
// most once per batch when caching is enabled.
type Loader struct {
	cache        cache.Cache
	ttl          time.Duration
	maxLineBytes int
}

// NewLoader creates a new document loader. A nil cache disables caching.
func NewLoader(c cache.Cache, ttl time.Duration, maxLineBytes int) *Loader {
	if maxLineBytes <= 0 {
		maxLineBytes = 1024 * 1024
	}
	return &Loader{
		cache:        c,
		ttl:          ttl,
		maxLineBytes: maxLineBytes,
	}
}

// Load returns the document's lines. Line terminators are normalized:
// both LF and CRLF endings yield the same lines, with no spurious blanks.
func (l *Loader) Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}

	var key string
	if l.cache != nil {
		key = cache.Key(path, info.ModTime(), info.Size())
		if lines, found := l.cache.Get(key); found {
			return lines, nil
		}
	}

	lines, err := readLines(path, l.maxLineBytes)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(key, lines, l.ttl)
	}

	return lines, nil
}

// readLines streams the file line by line
func readLines(path string, maxLineBytes int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		// bufio.ScanLines already drops the trailing \r of CRLF endings
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return lines, nil
}
