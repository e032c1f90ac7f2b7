// Package scan orchestrates the catalog pipeline: it discovers document
// files under a root directory in a stable order, runs each through the
// extraction stages (sequentially by default, optionally over a bounded
// worker pool), folds the per-document results into an ordered catalog,
// and maintains the JSON fingerprint store used for change detection
// across runs.
//
// Failure isolation is the package's core guarantee: a document that
// cannot be opened is logged and dropped, a stage that fails degrades to
// a placeholder value, and neither ever aborts the batch.
package scan
