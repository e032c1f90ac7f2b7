package catalog

// Read status values for a catalog record.
const (
	StatusUnread = "Unread"
)

// Record is one row of the catalog: the extraction result for a single
// document. Every field is always populated; stages that fail leave a
// placeholder or empty value, never an absent field.
type Record struct {
	Index           int    `cbor:"index" json:"index"`
	FileName        string `cbor:"file_name" json:"fileName"`
	Year            string `cbor:"year" json:"year"`
	ISBN            string `cbor:"isbn" json:"isbn"`
	PageCount       int    `cbor:"page_count" json:"pageCount"`
	Author          string `cbor:"author" json:"author"`
	Section         string `cbor:"section" json:"section"`
	AbsolutePath    string `cbor:"absolute_path" json:"absolutePath"`
	HasBookmarks    bool   `cbor:"has_bookmarks" json:"hasBookmarks"`
	TableOfContents string `cbor:"table_of_contents" json:"tableOfContents"`
	PreviewImage    string `cbor:"preview_image" json:"previewImage"`
	ReadStatus      string `cbor:"read_status" json:"readStatus"`
	Keywords        string `cbor:"keywords" json:"keywords"`
	Description     string `cbor:"description" json:"description"`
}

// Catalog is the ordered result set of one scan, one record per document
// that could be opened. Rows are independent; Index values are unique and
// assigned in discovery order.
type Catalog []Record

// Columns lists the catalog column names in their canonical order. The
// text backup writer and the dump tool both rely on this ordering.
func Columns() []string {
	return []string{
		"Index", "File Name", "Year", "ISBN", "Page Count", "Author",
		"Section", "Absolute Path", "Has Bookmarks", "Table of Contents",
		"Preview Image", "Read Status", "Keywords", "Description",
	}
}

// textFields returns pointers to every text-valued field of r, in column
// order. Normalization walks these so new string columns are picked up in
// one place.
func (r *Record) textFields() []*string {
	return []*string{
		&r.FileName, &r.Year, &r.ISBN, &r.Author, &r.Section,
		&r.AbsolutePath, &r.TableOfContents, &r.PreviewImage,
		&r.ReadStatus, &r.Keywords, &r.Description,
	}
}
