package main

import (
	"bytes"
	"strings"
	"testing"

	"pdf-catalog/internal/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			Index: 1, FileName: "First.Pdf", Year: "2015", ISBN: "9780306406157",
			PageCount: 10, Author: "Jane Roe", Section: "Science",
			AbsolutePath: "/lib/first.pdf", ReadStatus: "Unread",
		},
		{
			Index: 2, FileName: "Second.Pdf", Year: "Missing From Pdf Metadata",
			PageCount: 3, Author: "Not Embedded In This File", Section: "Misc",
			AbsolutePath: "/lib/second.pdf", ReadStatus: "Unread",
		},
	}
}

func TestDumpSummary(t *testing.T) {
	var buf bytes.Buffer
	dump(&buf, testCatalog(), false)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Index") {
		t.Errorf("missing header: %q", lines[0])
	}
	for _, want := range []string{"First.Pdf", "Second.Pdf", "Jane Roe"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// Summary view leaves out the wide columns.
	if strings.Contains(out, "/lib/first.pdf") {
		t.Error("summary view should not include absolute paths")
	}
}

func TestDumpFull(t *testing.T) {
	var buf bytes.Buffer
	dump(&buf, testCatalog(), true)

	out := buf.String()
	for _, want := range []string{"Absolute Path", "/lib/first.pdf", "9780306406157", "Unread"} {
		if !strings.Contains(out, want) {
			t.Errorf("full output missing %q", want)
		}
	}
}

func TestDumpEmpty(t *testing.T) {
	var buf bytes.Buffer
	dump(&buf, catalog.Catalog{}, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("empty catalog should print only the header, got %d lines", len(lines))
	}
}
