package extract

import (
	"path/filepath"
	"strings"
	"testing"

	"pdf-catalog/internal/pdftest"
)

func testParams(stop ...string) KeywordParams {
	set := make(map[string]struct{})
	for _, w := range stop {
		set[w] = struct{}{}
	}
	return KeywordParams{MaxPages: 15, TopN: 15, MinLength: 6, StopWords: set}
}

func TestKeywordsFromTextRanking(t *testing.T) {
	text := strings.Join([]string{
		"quantum quantum quantum",
		"physics physics",
		"copyright copyright copyright copyright",
		"entropy",
	}, " ")

	params := testParams("copyright")
	params.TopN = 2

	got := keywordsFromText(text, allEnglish{}, params)
	if got != "Quantum, Physics" {
		t.Errorf("keywords = %q, want %q", got, "Quantum, Physics")
	}
	if strings.Contains(got, "Copyright") {
		t.Error("stop word leaked into keywords")
	}
}

func TestKeywordsFromTextStableTies(t *testing.T) {
	// Equal counts keep first-encountered order.
	text := "zebras apples zebras apples"
	got := keywordsFromText(text, allEnglish{}, testParams())
	if got != "Zebras, Apples" {
		t.Errorf("keywords = %q, want %q", got, "Zebras, Apples")
	}
}

func TestKeywordsFromTextFilters(t *testing.T) {
	// Short words, punctuation and digits are stripped before counting.
	text := "aaa bb c 123 longword longword!"
	got := keywordsFromText(text, allEnglish{}, testParams())
	if got != "Longword" {
		t.Errorf("keywords = %q, want %q", got, "Longword")
	}
}

func TestKeywordsDetectorRejectsAll(t *testing.T) {
	got := keywordsFromText("quantum physics entropy", neverEnglish{}, testParams())
	if got != "" {
		t.Errorf("keywords = %q, want empty when nothing passes the detector", got)
	}
}

func TestKeywordsDetectorPanicIsContained(t *testing.T) {
	got := keywordsFromText("quantum physics entropy", panicky{}, testParams())
	if got != "" {
		t.Errorf("keywords = %q, want empty when the detector fails", got)
	}
}

func TestKeywordsTopNBound(t *testing.T) {
	var words []string
	for _, w := range []string{
		"aardvark", "bananas", "cabbage", "dolphin", "elephant", "fiction",
		"gardens", "harbors", "islands", "jackets", "kittens", "lanterns",
		"magnets", "napkins", "oysters", "parrots", "quivers", "rabbits",
	} {
		words = append(words, w)
	}
	got := keywordsFromText(strings.Join(words, " "), allEnglish{}, testParams())
	if got == "" {
		t.Fatal("expected keywords")
	}
	if n := len(strings.Split(got, ", ")); n > 15 {
		t.Errorf("got %d terms, want at most 15", n)
	}
}

func TestKeywordsFromDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.pdf")
	pdftest.Write(t, path, "quantum quantum physics", "quantum entropy")

	got, err := Keywords(path, allEnglish{}, testParams())
	if err != nil {
		t.Fatalf("Keywords: %v", err)
	}
	if !strings.HasPrefix(got, "Quantum") {
		t.Errorf("keywords = %q, want most frequent word first", got)
	}
}

func TestKeywordsOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	pdftest.WriteCorrupt(t, path)

	if _, err := Keywords(path, allEnglish{}, testParams()); err == nil {
		t.Fatal("expected error for corrupt document")
	}
}
