package scan

import (
	"os"
	"path/filepath"
	"time"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/config"
	"pdf-catalog/internal/errlog"
	"pdf-catalog/internal/extract"
	"pdf-catalog/internal/logging"
	"pdf-catalog/internal/metrics"
)

// ProgressFunc receives progress updates: once after each successfully
// processed document and once more with current == total when the scan
// finishes. The pipeline performs no synchronization beyond serializing
// its own calls; a presentation caller marshals to its own thread.
type ProgressFunc func(current, total int)

// Pipeline runs the scan-extract-aggregate sequence over a directory
// tree. One bad input file never aborts the batch: open failures drop
// the single document, stage failures degrade single fields.
type Pipeline struct {
	cfg      *config.Config
	det      extract.Detector
	thumb    *extract.Thumbnailer
	errs     *errlog.Log
	progress ProgressFunc
}

// New creates a Pipeline from cfg with the default language detector and
// a thumbnailer configured from cfg. Collaborators can be replaced with
// the setters before Run.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:   cfg,
		det:   extract.WhatlangDetector{},
		thumb: extract.NewThumbnailer(cfg.PreviewDir, cfg.Thumbnail.Zoom, cfg.Thumbnail.Quality, cfg.Thumbnail.Enabled),
		errs:  errlog.New(cfg.ErrorLog),
	}
}

// SetDetector replaces the language detector.
func (p *Pipeline) SetDetector(det extract.Detector) {
	p.det = det
}

// SetThumbnailer replaces the thumbnail stage.
func (p *Pipeline) SetThumbnailer(t *extract.Thumbnailer) {
	p.thumb = t
}

// SetProgress sets the progress callback.
func (p *Pipeline) SetProgress(fn ProgressFunc) {
	p.progress = fn
}

// ErrorLog exposes the failure sink, mainly so callers can report its
// location.
func (p *Pipeline) ErrorLog() *errlog.Log {
	return p.errs
}

// Run discovers every document under the configured root, pushes each
// through the four extraction stages, and returns the normalized
// catalog. The fingerprint store is rewritten at the end of the scan;
// it is not consulted when building the job list, so every discovered
// document is reprocessed every run.
func (p *Pipeline) Run() (catalog.Catalog, error) {
	start := time.Now()
	metrics.ScanRunsTotal.Inc()
	metrics.ScanIsRunning.Set(1)
	defer metrics.ScanIsRunning.Set(0)

	jobs, err := Discover(p.cfg.Root)
	if err != nil {
		return nil, err
	}
	total := len(jobs)
	metrics.DocumentsDiscovered.Set(float64(total))
	logging.Info("Found %d PDF files under %s", total, p.cfg.Root)

	results := make([]*catalog.Record, total)
	prints := make(map[string]string, total)

	workers := p.cfg.Workers
	if workers > 1 && total > 1 {
		p.runParallel(jobs, workers, results, prints)
	} else {
		p.runSequential(jobs, results, prints)
	}

	cat := make(catalog.Catalog, 0, total)
	for _, rec := range results {
		if rec != nil {
			cat = append(cat, *rec)
		}
	}
	cat.Normalize()

	// Completion signal: current == total, fired exactly once.
	if p.progress != nil {
		p.progress(total, total)
	}

	if len(cat) > 0 {
		store := NewFingerprintStore(p.cfg.CacheFile)
		if err := store.Save(prints); err != nil {
			logging.Warn("saving fingerprint cache: %v", err)
		}
	}

	duration := time.Since(start)
	metrics.ScanLastRunTimestamp.Set(float64(time.Now().Unix()))
	metrics.ScanLastRunDuration.Set(duration.Seconds())
	metrics.CatalogRows.Set(float64(len(cat)))
	logging.Info("Scan complete: %d of %d documents cataloged in %v", len(cat), total, duration)

	return cat, nil
}

// runSequential processes jobs one at a time, each document fully
// through all stages before the next begins.
func (p *Pipeline) runSequential(jobs []Job, results []*catalog.Record, prints map[string]string) {
	total := len(jobs)
	for i, job := range jobs {
		rec := p.processJob(job)
		if rec != nil {
			results[i] = rec
			if p.progress != nil {
				p.progress(i+1, total)
			}
		}
		p.fingerprintJob(job, prints)
	}
}

// fingerprintJob records the current fingerprint of the job's file. A
// file that vanished between discovery and now is simply left out.
func (p *Pipeline) fingerprintJob(job Job, prints map[string]string) {
	info, err := os.Stat(job.AbsPath)
	if err != nil {
		return
	}
	prints[job.RelPath] = Fingerprint(info.Name(), info.Size(), info.ModTime())
}

// processJob runs the four extraction stages for one document and
// assembles its catalog row. A nil return means the document could not
// be opened and is excluded from the catalog.
func (p *Pipeline) processJob(job Job) *catalog.Record {
	doc, err := extract.Open(job.AbsPath)
	if err != nil {
		p.errs.Logf(job.AbsPath, "PDF open failed: %v", err)
		metrics.DocumentsFailed.Inc()
		return nil
	}

	pages := doc.PageCount()
	meta := extract.Metadata(doc, p.cfg.MetadataPages)

	hasOutline, toc, err := extract.Outline(job.AbsPath, p.det, p.cfg.OutlinePages)
	if err != nil {
		p.errs.Logf(job.AbsPath, "Bookmark extraction failed: %v", err)
		metrics.StageFailures.WithLabelValues("outline").Inc()
	}

	preview, err := p.thumb.Render(job.AbsPath, job.Index)
	if err != nil {
		p.errs.Logf(job.AbsPath, "Image generation failed: %v", err)
		metrics.StageFailures.WithLabelValues("thumbnail").Inc()
		preview = ""
	}

	keywords, err := extract.Keywords(job.AbsPath, p.det, extract.KeywordParams{
		MaxPages:  p.cfg.KeywordPages,
		TopN:      p.cfg.TopKeywords,
		MinLength: p.cfg.MinKeywordLength,
		StopWords: p.cfg.StopWordSet(),
	})
	if err != nil {
		p.errs.Logf(job.AbsPath, "Keyword extraction failed: %v", err)
		metrics.StageFailures.WithLabelValues("keywords").Inc()
		keywords = ""
	}

	metrics.DocumentsProcessed.Inc()

	return &catalog.Record{
		Index:           job.Index,
		FileName:        filepath.Base(job.AbsPath),
		Year:            meta.Year,
		ISBN:            meta.ISBN,
		PageCount:       pages,
		Author:          meta.Author,
		Section:         filepath.Base(filepath.Dir(job.AbsPath)),
		AbsolutePath:    job.AbsPath,
		HasBookmarks:    hasOutline,
		TableOfContents: toc,
		PreviewImage:    preview,
		ReadStatus:      catalog.StatusUnread,
		Keywords:        keywords,
		Description:     "",
	}
}
