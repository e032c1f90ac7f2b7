package errlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf_errors.log")
	l := New(path)

	l.Log("/books/a.pdf", "PDF open failed: bad xref")
	l.Logf("/books/b.pdf", "Keyword extraction failed: %s", "short file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "/books/a.pdf - PDF open failed: bad xref" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "/books/b.pdf - Keyword extraction failed: short file" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestLogConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf_errors.log")
	l := New(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Log("/books/x.pdf", "stage failed")
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "/books/x.pdf - stage failed" {
			t.Fatalf("interleaved or corrupt line: %q", line)
		}
	}
}

func TestLogUnwritablePathDoesNotPanic(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "no", "such", "dir", "err.log"))
	// Must not panic or return an error to the caller.
	l.Log("/books/a.pdf", "message")
}
