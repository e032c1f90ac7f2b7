// Package pdftest builds tiny but structurally valid PDF files for
// tests: correct xref offsets, one Helvetica text page per input string.
// It lives outside the _test files so the extraction and pipeline tests
// can share it.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns a minimal valid PDF with one page per element of
// pageTexts. Each line of a page string becomes its own text-showing
// operation, so line structure survives extraction.
func Build(pageTexts ...string) []byte {
	if len(pageTexts) == 0 {
		pageTexts = []string{""}
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	// Objects: 1 catalog, 2 pages, 3 font, then (page, content) pairs.
	numObjs := 3 + 2*len(pageTexts)
	offsets := make([]int, numObjs+1)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1

		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>",
			contentNum))

		stream := contentStream(text)
		offsets[contentNum] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", numObjs+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= numObjs; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		numObjs+1, xrefOffset)

	return buf.Bytes()
}

// contentStream lays the page text out one line per Tj operation.
func contentStream(text string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&b, "(%s) Tj\nT*\n", escape(line))
	}
	b.WriteString("ET")
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// Write builds a PDF and writes it to path, creating parent directories
// as needed and failing the test on error.
func Write(t *testing.T, path string, pageTexts ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, Build(pageTexts...), 0644); err != nil {
		t.Fatalf("writing test PDF %s: %v", path, err)
	}
}

// WriteCorrupt writes a file that is not a parseable PDF.
func WriteCorrupt(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("%PDF-1.4\nthis is not a real pdf body"), 0644); err != nil {
		t.Fatalf("writing corrupt PDF %s: %v", path, err)
	}
}
