package scan

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/logging"
	"pdf-catalog/internal/workers"
)

// maxWorkers caps the pool regardless of configuration; document
// extraction holds page buffers and rendered pixmaps in memory.
const maxWorkers = 16

// runParallel distributes jobs over a bounded worker pool. Jobs are
// independent: the only shared state is the position-indexed result
// slice, the fingerprint map and the append-only error log, so per-job
// semantics match the sequential path exactly. Results land at their
// job's position, which keeps the final catalog in discovery order no
// matter when each job finishes.
//
// Progress here reports the number of successfully processed documents
// so far, since completion order no longer matches job order.
func (p *Pipeline) runParallel(jobs []Job, requested int, results []*catalog.Record, prints map[string]string) {
	limit := requested
	if limit > maxWorkers {
		limit = maxWorkers
	}
	if cpuBound := workers.ForMixed(maxWorkers); limit > cpuBound {
		limit = cpuBound
	}
	if limit < 2 {
		limit = 2
	}
	logging.Info("Processing %d documents with %d workers", len(jobs), limit)

	total := len(jobs)
	var g errgroup.Group
	g.SetLimit(limit)

	var mu sync.Mutex
	completed := 0

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			rec := p.processJob(job)

			mu.Lock()
			if rec != nil {
				results[i] = rec
				completed++
				if p.progress != nil {
					p.progress(completed, total)
				}
			}
			p.fingerprintJob(job, prints)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures are per-document and logged.
	_ = g.Wait()
}
