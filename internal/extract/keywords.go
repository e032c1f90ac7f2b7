package extract

import (
	"regexp"
	"sort"
	"strings"

	"pdf-catalog/internal/catalog"
)

var nonAlphaKeepSpaceRe = regexp.MustCompile(`[^a-zA-Z\s]`)

// KeywordParams configures the keyword stage. StopWords is consulted
// after lowercasing.
type KeywordParams struct {
	MaxPages  int
	TopN      int
	MinLength int
	StopWords map[string]struct{}
}

// Keywords computes the frequency-based keyword summary for the document
// at path: the TopN most frequent retained words over the first MaxPages
// pages, title-cased and comma-joined. Ties keep first-encountered order.
func Keywords(path string, det Detector, params KeywordParams) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}
	return keywordsFromText(doc.Text(params.MaxPages), det, params), nil
}

// keywordsFromText is the pure text half of the stage, shared with tests.
func keywordsFromText(text string, det Detector, params KeywordParams) string {
	words := strings.Fields(strings.ToLower(nonAlphaKeepSpaceRe.ReplaceAllString(text, "")))

	type entry struct {
		word  string
		count int
	}
	counts := make(map[string]int)
	var order []string

	for _, w := range words {
		if len(w) < params.MinLength {
			continue
		}
		if _, excluded := params.StopWords[w]; excluded {
			continue
		}
		if _, seen := counts[w]; !seen {
			if !isEnglish(det, w) {
				continue
			}
			order = append(order, w)
		}
		counts[w]++
	}

	entries := make([]entry, len(order))
	for i, w := range order {
		entries[i] = entry{word: w, count: counts[w]}
	}
	// Stable sort preserves first-encountered order among equal counts.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > params.TopN {
		entries = entries[:params.TopN]
	}

	tops := make([]string, len(entries))
	for i, e := range entries {
		tops[i] = e.word
	}
	return catalog.TitleCase(strings.Join(tops, ", "))
}
