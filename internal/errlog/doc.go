// Package errlog implements the append-only failure log written during a
// scan. The pipeline only ever writes to it; nothing reads it back.
package errlog
