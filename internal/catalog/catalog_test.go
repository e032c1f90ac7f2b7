package catalog

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "Hello World"},
		{"ALREADY UPPER", "Already Upper"},
		{"mixed-case words", "Mixed-Case Words"},
		{"isbn 9781234567890", "Isbn 9781234567890"},
		{"a1b c", "A1B C"},
		{"", ""},
		{"   spaced   out  ", "   Spaced   Out  "},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	c := Catalog{
		{
			Index:           1,
			FileName:        "my book.pdf",
			Year:            "2015",
			ISBN:            "9781234567890",
			PageCount:       -3,
			Author:          "jane q. public",
			Section:         "science",
			AbsolutePath:    "/books/science/my book.pdf",
			TableOfContents: "chapter one; chapter two",
			ReadStatus:      "unread",
			Keywords:        "physics, quantum",
		},
	}

	c.Normalize()

	r := c[0]
	if r.FileName != "My Book.Pdf" {
		t.Errorf("FileName = %q", r.FileName)
	}
	if r.Author != "Jane Q. Public" {
		t.Errorf("Author = %q", r.Author)
	}
	if r.TableOfContents != "Chapter One; Chapter Two" {
		t.Errorf("TableOfContents = %q", r.TableOfContents)
	}
	if r.ReadStatus != "Unread" {
		t.Errorf("ReadStatus = %q", r.ReadStatus)
	}
	if r.Keywords != "Physics, Quantum" {
		t.Errorf("Keywords = %q", r.Keywords)
	}
	if r.PageCount != 0 {
		t.Errorf("PageCount = %d, want 0 after clamping", r.PageCount)
	}
	// Year stays intact: digits have no case.
	if r.Year != "2015" {
		t.Errorf("Year = %q", r.Year)
	}
}

func TestColumnsMatchTextFields(t *testing.T) {
	// 14 columns total, 11 of them text-valued (Index, Page Count and
	// Has Bookmarks are not).
	if got := len(Columns()); got != 14 {
		t.Errorf("len(Columns()) = %d, want 14", got)
	}
	var r Record
	if got := len(r.textFields()); got != 11 {
		t.Errorf("len(textFields()) = %d, want 11", got)
	}
}
