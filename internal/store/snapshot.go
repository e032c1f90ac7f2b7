package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"pdf-catalog/internal/catalog"
)

// SnapshotFile is the binary snapshot file name.
const SnapshotFile = "Books_Data.bin"

func snapshotPath(dir string) string {
	return filepath.Join(dir, SnapshotFile)
}

// Snapshot is the primary catalog format: the whole row set encoded as
// CBOR. Compact, fast to reload, not meant for human eyes.
type Snapshot struct {
	path string
}

func (s *Snapshot) Name() string { return FormatSnapshot }

// Save writes the catalog to a temp file and renames it into place, so
// a crash mid-write never leaves a truncated snapshot behind.
func (s *Snapshot) Save(cat catalog.Catalog) error {
	data, err := cbor.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *Snapshot) Load() (catalog.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var cat catalog.Catalog
	if err := cbor.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return cat, nil
}
