package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/store"
)

func main() {
	dir := flag.String("dir", ".", "directory holding the catalog files")
	full := flag.Bool("full", false, "print every column instead of the summary set")
	flag.Parse()

	cat, elapsed, format := store.New(*dir).Load()
	if format == store.FormatNone {
		fmt.Fprintf(os.Stderr, "No catalog found in %s\n", *dir)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d rows from %s in %v\n\n", len(cat), format, elapsed)
	dump(os.Stdout, cat, *full)
}

// dump renders the catalog as an aligned table. The summary view keeps
// the columns that fit a terminal; -full prints everything.
func dump(w io.Writer, cat catalog.Catalog, full bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if full {
		writeRow(tw, catalog.Columns())
		for _, r := range cat {
			writeRow(tw, []string{
				fmt.Sprint(r.Index), r.FileName, r.Year, r.ISBN,
				fmt.Sprint(r.PageCount), r.Author, r.Section,
				r.AbsolutePath, fmt.Sprint(r.HasBookmarks),
				r.TableOfContents, r.PreviewImage, r.ReadStatus,
				r.Keywords, r.Description,
			})
		}
		return
	}

	writeRow(tw, []string{"Index", "File Name", "Year", "Pages", "Author", "Section"})
	for _, r := range cat {
		writeRow(tw, []string{
			fmt.Sprint(r.Index), r.FileName, r.Year,
			fmt.Sprint(r.PageCount), r.Author, r.Section,
		})
	}
}

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
