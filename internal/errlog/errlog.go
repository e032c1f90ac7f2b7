package errlog

import (
	"fmt"
	"os"
	"sync"

	"pdf-catalog/internal/logging"
)

// Log is an append-only sink for per-document stage failures. Each entry
// is one line of the form "<source_path> - <message>". Entries are written
// immediately so a crash mid-scan loses at most the line in flight.
type Log struct {
	path string
	mu   sync.Mutex
}

// New returns a Log that appends to the file at path. The file is created
// on first write.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the location of the underlying log file.
func (l *Log) Path() string {
	return l.path
}

// Log appends one entry for the given source file. Write failures are
// reported to the application log but never propagated: the error log is
// a diagnostic channel and must not fail the scan.
func (l *Log) Log(source, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logging.Warn("error log: cannot open %s: %v", l.path, err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s - %s\n", source, message); err != nil {
		logging.Warn("error log: write failed: %v", err)
	}
}

// Logf is Log with printf-style message formatting.
func (l *Log) Logf(source, format string, args ...interface{}) {
	l.Log(source, fmt.Sprintf(format, args...))
}
