// Package extract implements the per-document extraction stages of the
// catalog pipeline: embedded metadata with author/year/ISBN heuristics,
// the table-of-contents outline with its heading fallback, the
// frequency-based keyword summary, and the first-page preview thumbnail.
//
// Each stage opens its own handle on the document and releases it before
// returning, so stages and jobs never share open files. Stage failures
// degrade to placeholder or empty values; only a failed Open excludes a
// document from the catalog.
//
// PDF parsing is done with pdfcpu; page rendering with libvips (which
// must be built with poppler support). The English-language check used by
// the outline fallback and the keyword stage is a pluggable Detector.
package extract
