package catalog

import (
	"strings"
	"unicode"
)

// TitleCase capitalizes the first letter of every word and lowercases the
// rest. A word boundary is any non-letter rune, so "isbn-13 guide" becomes
// "Isbn-13 Guide".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Normalize applies the whole-column post-pass to the catalog: every
// text-valued field is title-cased and negative page counts are clamped
// to zero. It runs once after all jobs complete, before persistence.
func (c Catalog) Normalize() {
	for i := range c {
		for _, f := range c[i].textFields() {
			*f = TitleCase(*f)
		}
		if c[i].PageCount < 0 {
			c[i].PageCount = 0
		}
	}
}
