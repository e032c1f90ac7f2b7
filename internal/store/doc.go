// Package store persists the catalog between runs. Every save writes
// two files side by side: a CBOR snapshot for fast reloads and a CSV
// backup that stays readable if the snapshot is ever corrupted. Loads
// prefer the snapshot and fall back to the backup; a directory with
// neither simply yields an empty catalog.
package store
