package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pdf-catalog/internal/catalog"
)

// BackupFile is the delimited text backup file name.
const BackupFile = "Books_Data.csv"

func backupPath(dir string) string {
	return filepath.Join(dir, BackupFile)
}

// Backup is the secondary catalog format: one header row of column
// names followed by one delimited row per record. It survives snapshot
// corruption and opens in any spreadsheet.
type Backup struct {
	path string
}

func (b *Backup) Name() string { return FormatBackup }

func (b *Backup) Save(cat catalog.Catalog) error {
	tmp := b.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(catalog.Columns()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range cat {
		if err := w.Write(recordRow(r)); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("writing row %d: %w", r.Index, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flushing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", b.path, err)
	}
	return nil
}

func (b *Backup) Load() (catalog.Catalog, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no header row", b.path)
	}

	cat := make(catalog.Catalog, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := rowRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", b.path, i+2, err)
		}
		cat = append(cat, rec)
	}
	return cat, nil
}

// recordRow flattens r into column order. Keep in sync with
// catalog.Columns and rowRecord.
func recordRow(r catalog.Record) []string {
	return []string{
		strconv.Itoa(r.Index),
		r.FileName,
		r.Year,
		r.ISBN,
		strconv.Itoa(r.PageCount),
		r.Author,
		r.Section,
		r.AbsolutePath,
		strconv.FormatBool(r.HasBookmarks),
		r.TableOfContents,
		r.PreviewImage,
		r.ReadStatus,
		r.Keywords,
		r.Description,
	}
}

func rowRecord(row []string) (catalog.Record, error) {
	var r catalog.Record
	if len(row) != len(catalog.Columns()) {
		return r, fmt.Errorf("has %d columns, want %d", len(row), len(catalog.Columns()))
	}

	var err error
	if r.Index, err = strconv.Atoi(row[0]); err != nil {
		return r, fmt.Errorf("bad index %q: %w", row[0], err)
	}
	if r.PageCount, err = strconv.Atoi(row[4]); err != nil {
		return r, fmt.Errorf("bad page count %q: %w", row[4], err)
	}
	if r.HasBookmarks, err = strconv.ParseBool(row[8]); err != nil {
		return r, fmt.Errorf("bad bookmark flag %q: %w", row[8], err)
	}

	r.FileName = row[1]
	r.Year = row[2]
	r.ISBN = row[3]
	r.Author = row[5]
	r.Section = row[6]
	r.AbsolutePath = row[7]
	r.TableOfContents = row[9]
	r.PreviewImage = row[10]
	r.ReadStatus = row[11]
	r.Keywords = row[12]
	r.Description = row[13]
	return r, nil
}
