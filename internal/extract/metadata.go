package extract

import (
	"regexp"

	"pdf-catalog/internal/catalog"
)

// Placeholder values for metadata fields that could not be extracted.
const (
	PlaceholderAuthor  = "Not embedded in this file"
	PlaceholderMissing = "Missing from PDF metadata"
)

var (
	// yearRe finds a 19xx/20xx year, optionally preceded by a
	// publication or copyright marker.
	yearRe = regexp.MustCompile(`(?i)\b(?:published|copyright|©)?\s*((?:19|20)\d{2})\b`)

	// isbnRe finds an ISBN-shaped digit run: optional label, optional
	// 978/979 prefix, up to four groups separated by hyphens or spaces,
	// final check digit possibly X.
	isbnRe = regexp.MustCompile(`(?i)\b(?:ISBN(?:-1[03])?:?\s*)?((?:97[89][-\s]?)?\d{1,5}[-\s]?\d{1,7}[-\s]?\d{1,7}[-\s]?[\dxX])\b`)

	// bareYearRe matches a numeric run that is just a year; such runs
	// are never accepted as identifiers.
	bareYearRe = regexp.MustCompile(`^(?:19|20)\d{2}$`)

	isbnSepRe = regexp.MustCompile(`[-\s]`)
)

// Meta holds the result of the metadata stage. Fields fall back to their
// placeholders independently: a missing author never blocks year or
// identifier extraction.
type Meta struct {
	Author string
	Year   string
	ISBN   string
}

// Metadata extracts author, publication year and ISBN from doc, looking
// at the embedded metadata plus the text of at most maxPages leading
// pages. It cannot fail: absent values stay at their placeholders.
func Metadata(doc *Document, maxPages int) Meta {
	m := Meta{
		Author: PlaceholderAuthor,
		Year:   PlaceholderMissing,
		ISBN:   PlaceholderMissing,
	}

	if author := doc.Author(); author != "" {
		m.Author = author
	}
	m.Author = catalog.TitleCase(m.Author)

	pages := doc.PageCount()
	if maxPages < pages {
		pages = maxPages
	}

	yearFound, isbnFound := false, false
	for pageNr := 1; pageNr <= pages && !(yearFound && isbnFound); pageNr++ {
		text := doc.PageText(pageNr)
		if text == "" {
			continue
		}
		if !yearFound {
			if year, ok := yearFromText(text); ok {
				m.Year = year
				yearFound = true
			}
		}
		if !isbnFound {
			if isbn, ok := isbnFromText(text); ok {
				m.ISBN = isbn
				isbnFound = true
			}
		}
	}

	return m
}

// yearFromText returns the first 4-digit year token in text.
func yearFromText(text string) (string, bool) {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isbnFromText returns the first accepted ISBN candidate in text. A
// candidate passes only if, after removing separators, it is at least 10
// characters and is not itself a bare year; this disambiguates ISBN-like
// and year-like numeric runs.
func isbnFromText(text string) (string, bool) {
	for _, m := range isbnRe.FindAllStringSubmatch(text, -1) {
		cleaned := isbnSepRe.ReplaceAllString(m[1], "")
		if len(cleaned) >= 10 && !bareYearRe.MatchString(cleaned) {
			return cleaned, true
		}
	}
	return "", false
}
