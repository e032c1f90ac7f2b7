package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pdf-catalog/internal/logging"
)

// documentExt is the file extension (case-insensitive) of catalogable
// documents.
const documentExt = ".pdf"

// Job is one document queued for extraction. Index is the stable
// 1-based sequence number assigned in discovery order.
type Job struct {
	Index   int
	AbsPath string
	RelPath string
}

// Discover walks the tree under root and returns the ordered job list.
// Within each directory, files are visited in ascending lexicographic
// name order before any subdirectory is entered, so Index assignment is
// reproducible across runs on an unchanged tree. Unreadable
// subdirectories are skipped silently; only an unreadable root is an
// error.
func Discover(root string) ([]Job, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, err
	}

	var jobs []Job
	index := 1

	var walk func(dir string)
	walk = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			logging.Debug("skipping unreadable directory %s: %v", dir, err)
			return
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		// Files of this directory first, subdirectories after.
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !strings.HasSuffix(strings.ToLower(name), documentExt) {
				continue
			}
			abs := filepath.Join(dir, name)
			rel, err := filepath.Rel(absRoot, abs)
			if err != nil {
				continue
			}
			jobs = append(jobs, Job{Index: index, AbsPath: abs, RelPath: rel})
			index++
		}
		for _, entry := range entries {
			if entry.IsDir() {
				walk(filepath.Join(dir, entry.Name()))
			}
		}
	}
	walk(absRoot)

	return jobs, nil
}
