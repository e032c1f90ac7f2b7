package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pdf-catalog/internal/logging"
)

// Fingerprint derives the change-detection string for a file: name, byte
// size and whole-second modification time. Two scans of an unchanged
// file produce identical fingerprints; any size or mtime change produces
// a different one.
func Fingerprint(name string, size int64, mtime time.Time) string {
	return fmt.Sprintf("%s_%d_%d", name, size, mtime.Unix())
}

// FingerprintStore persists the relative-path → fingerprint map between
// runs. It is written at the end of every scan and exists so a future
// run could skip unchanged files; the job list is currently built
// without consulting it.
type FingerprintStore struct {
	path string
}

// NewFingerprintStore returns a store over the JSON file at path.
func NewFingerprintStore(path string) *FingerprintStore {
	return &FingerprintStore{path: path}
}

// Load returns the persisted map. Missing or unreadable state yields an
// empty map, never an error.
func (s *FingerprintStore) Load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		logging.Warn("fingerprint store %s is corrupt, starting fresh: %v", s.path, err)
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}

// Save atomically replaces the persisted state: the map is written to a
// temp file and renamed over the previous one.
func (s *FingerprintStore) Save(m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding fingerprints: %w", err)
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
