package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is a parsed PDF. It holds the fully-read cross-reference
// context, so the underlying file handle is released before Open returns.
type Document struct {
	path string
	ctx  *model.Context
}

// Open reads and validates the PDF at path. The file is read completely;
// no handle stays open afterwards. Open failure is the one error that
// excludes a document from the catalog entirely.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return &Document{path: path, ctx: ctx}, nil
}

// Path returns the file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Author returns the Info-dictionary author, or "" when not embedded.
func (d *Document) Author() string {
	return strings.TrimSpace(d.ctx.Author)
}

// OutlineTitles returns the titles of the embedded outline tree in
// depth-first order. An empty slice or an error both mean the document
// carries no usable outline.
func (d *Document) OutlineTitles() ([]string, error) {
	bms, err := pdfcpu.Bookmarks(d.ctx)
	if err != nil {
		return nil, err
	}
	var titles []string
	var walk func([]pdfcpu.Bookmark)
	walk = func(items []pdfcpu.Bookmark) {
		for _, bm := range items {
			titles = append(titles, bm.Title)
			walk(bm.Kids)
		}
	}
	walk(bms)
	return titles, nil
}

// PageText extracts the text of one page (1-based) from its content
// stream. Extraction is best effort: a page whose content cannot be read
// or decoded yields "".
func (d *Document) PageText(pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(d.ctx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// Text concatenates the text of up to maxPages pages.
func (d *Document) Text(maxPages int) string {
	n := d.PageCount()
	if maxPages < n {
		n = maxPages
	}
	var sb strings.Builder
	for pageNr := 1; pageNr <= n; pageNr++ {
		sb.WriteString(d.PageText(pageNr))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream parses PDF content stream operators for text.
// Only the common text-showing operators are handled; positioning
// operators are mapped to whitespace so lines survive for the heuristic
// stages.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		// Tj operator: (text) Tj
		case bytes.HasSuffix(line, []byte("Tj")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}

		// TJ operator: [(text) -100 (more text)] TJ
		case bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}

		// ' operator (move to next line and show text): (text) '
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}

		// Td/TD operators start a new text line.
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			sb.WriteByte('\n')

		// T* operator (move to start of next line).
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return cleanPageText(sb.String())
}

// decodePDFString handles basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			// Octal escape (e.g. \040 for space).
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanPageText collapses runs of spaces and drops unprintable runes but
// keeps newlines, because the outline fallback works line by line.
func cleanPageText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return sb.String()
}
