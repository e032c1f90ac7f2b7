package extract

import (
	"regexp"
	"strings"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/logging"
)

// entrySeparator joins outline entries into the single Table of Contents
// column value.
const entrySeparator = "; "

var nonAlphaRe = regexp.MustCompile(`[^A-Za-z\s]`)

// Outline extracts a table of contents from the document at path.
//
// The primary path reads the embedded outline tree: entries are
// uppercased and hasOutline is true. When no embedded outline exists, up
// to maxPages leading pages are scanned line by line for headings and
// hasOutline is false regardless of whether the fallback found anything.
//
// Opening the path fails the stage (returned error, empty outline) but
// never the job.
func Outline(path string, det Detector, maxPages int) (hasOutline bool, toc string, err error) {
	doc, err := Open(path)
	if err != nil {
		return false, "", err
	}

	if titles, err := doc.OutlineTitles(); err == nil && len(titles) > 0 {
		entries := make([]string, len(titles))
		for i, t := range titles {
			entries[i] = strings.ToUpper(t)
		}
		return true, strings.Join(entries, entrySeparator), nil
	} else if err != nil {
		// No outline dictionary is the common case, not a failure.
		logging.Debug("no embedded outline in %s: %v", path, err)
	}

	pages := doc.PageCount()
	if maxPages < pages {
		pages = maxPages
	}

	var entries []string
	for pageNr := 1; pageNr <= pages; pageNr++ {
		for _, line := range strings.Split(doc.PageText(pageNr), "\n") {
			if entry, ok := headingFromLine(line, det); ok {
				entries = append(entries, entry)
			}
		}
	}

	return false, strings.Join(entries, entrySeparator), nil
}

// headingFromLine cleans one page line and decides whether it looks like
// a table-of-contents heading. The cleaned line is kept when it is
// non-empty and either mentions "Content" or carries more than two words.
func headingFromLine(line string, det Detector) (string, bool) {
	stripped := nonAlphaRe.ReplaceAllString(line, "")

	var kept []string
	for _, w := range strings.Fields(stripped) {
		if len(w) > 2 && isEnglish(det, w) {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return "", false
	}

	cleaned := catalog.TitleCase(strings.Join(kept, " "))
	if strings.Contains(cleaned, "Content") || len(kept) > 2 {
		return cleaned, true
	}
	return "", false
}
