package extract

import (
	"path/filepath"
	"testing"

	"pdf-catalog/internal/pdftest"
)

// allEnglish accepts every word; neverEnglish rejects every word;
// panicky simulates a detector blowing up internally.
type allEnglish struct{}

func (allEnglish) IsEnglish(string) bool { return true }

type neverEnglish struct{}

func (neverEnglish) IsEnglish(string) bool { return false }

type panicky struct{}

func (panicky) IsEnglish(string) bool { panic("detector exploded") }

func TestYearFromText(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Copyright 2015 by Example Press", "2015", true},
		{"published 1999", "1999", true},
		{"© 2021 Example", "2021", true},
		{"First printing 1987, reprinted 2003", "1987", true},
		{"no year in sight", "", false},
		{"year 2150 is out of range", "", false},
		{"part 1234 of the series", "", false},
	}

	for _, tt := range tests {
		got, ok := yearFromText(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("yearFromText(%q) = (%q, %v), want (%q, %v)",
				tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestISBNFromText(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"ISBN 978-0-306-40615-7", "9780306406157", true},
		{"ISBN: 0-306-40615-2", "0306406152", true},
		{"ISBN-13: 978 1 4028 9462 6", "9781402894626", true},
		{"bare digits 9780306406157 work too", "9780306406157", true},
		// A bare 4-digit year must never populate the identifier.
		{"2015", "", false},
		{"Copyright 2015", "", false},
		{"nothing numeric here", "", false},
		// The year-shaped run is rejected, the real ISBN after it wins.
		{"printed 2015, ISBN 978-0-306-40615-7", "9780306406157", true},
	}

	for _, tt := range tests {
		got, ok := isbnFromText(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("isbnFromText(%q) = (%q, %v), want (%q, %v)",
				tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMetadataFromDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.pdf")
	pdftest.Write(t, path,
		"A Book About Things",
		"Copyright 2015\nISBN 978-0-306-40615-7",
	)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := Metadata(doc, 5)
	if m.Year != "2015" {
		t.Errorf("Year = %q, want 2015", m.Year)
	}
	if m.ISBN != "9780306406157" {
		t.Errorf("ISBN = %q, want 9780306406157", m.ISBN)
	}
	// No embedded author: placeholder, title-cased.
	if m.Author != "Not Embedded In This File" {
		t.Errorf("Author = %q", m.Author)
	}
}

func TestMetadataScanIsBounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.pdf")
	// Year appears on page 3, beyond a 2-page budget.
	pdftest.Write(t, path, "page one", "page two", "Copyright 2015")

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := Metadata(doc, 2)
	if m.Year != PlaceholderMissing {
		t.Errorf("Year = %q, want placeholder when year is past the page budget", m.Year)
	}
}

func TestOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	pdftest.WriteCorrupt(t, path)

	if _, err := Open(path); err == nil {
		t.Fatal("expected error opening corrupt PDF")
	}
}
