// Command catalogdump prints a persisted catalog to the terminal. It
// loads through the same snapshot-then-backup fallback as the scanner,
// so it also serves as a quick integrity check on the catalog files.
//
// Usage:
//
//	catalogdump -dir /library
//	catalogdump -dir /library -full
package main
