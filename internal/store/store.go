package store

import (
	"fmt"
	"time"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/logging"
	"pdf-catalog/internal/metrics"
)

// Format names reported by Load.
const (
	FormatSnapshot = "Snapshot"
	FormatBackup   = "Backup"
	FormatNone     = "None"
)

// Format is one persisted representation of the catalog.
type Format interface {
	// Name identifies the format in logs and load results.
	Name() string
	// Save writes the whole catalog, replacing any previous file.
	Save(cat catalog.Catalog) error
	// Load reads the whole catalog back.
	Load() (catalog.Catalog, error)
}

// Store persists the catalog in two formats under one directory: a
// binary snapshot as the primary copy and a delimited text backup as
// the human-readable fallback.
type Store struct {
	dir     string
	formats []Format
}

// New returns a Store writing under dir. Format order is significant:
// Load tries formats front to back and returns the first that succeeds.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		formats: []Format{
			&Snapshot{path: snapshotPath(dir)},
			&Backup{path: backupPath(dir)},
		},
	}
}

// Dir returns the directory the catalog files live in.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes cat in every configured format. Each format is attempted
// independently: a snapshot failure does not prevent the backup from
// being written, and vice versa. The returned error wraps the first
// failure, if any.
func (s *Store) Save(cat catalog.Catalog) error {
	var first error
	for _, f := range s.formats {
		if err := f.Save(cat); err != nil {
			logging.Error("saving catalog as %s: %v", f.Name(), err)
			metrics.CatalogSaveFailures.WithLabelValues(f.Name()).Inc()
			if first == nil {
				first = fmt.Errorf("saving catalog as %s: %w", f.Name(), err)
			}
			continue
		}
		logging.Debug("saved %d catalog rows as %s", len(cat), f.Name())
	}
	return first
}

// Load returns the persisted catalog, the time the read took, and the
// name of the format that served it. Formats are tried in order; when
// none can be read an empty catalog is returned with format "None" and
// no error, since a missing catalog just means no scan has run yet.
func (s *Store) Load() (catalog.Catalog, time.Duration, string) {
	for _, f := range s.formats {
		start := time.Now()
		cat, err := f.Load()
		if err != nil {
			logging.Warn("loading catalog from %s: %v", f.Name(), err)
			continue
		}
		elapsed := time.Since(start)
		metrics.CatalogLoadDuration.WithLabelValues(f.Name()).Set(elapsed.Seconds())
		metrics.CatalogRows.Set(float64(len(cat)))
		return cat, elapsed, f.Name()
	}
	return catalog.Catalog{}, 0, FormatNone
}
