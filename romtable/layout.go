package romtable

// Layout describes where a table lives inside a ROM image and its shape.
// The zero value is not valid; call Validate before use.
type Layout struct {
	// Offset is the byte offset of the table's first cell within the image
	Offset int `json:"offset"`

	// Rows is the number of table rows
	Rows int `json:"rows"`

	// Cols is the number of table columns
	Cols int `json:"cols"`

	// RowLabel names the row axis (e.g. "RPM")
	RowLabel string `json:"row_label"`

	// ColLabel names the column axis (e.g. "Load")
	ColLabel string `json:"col_label"`
}

// Validate checks the layout's dimensions. Returns an *InvalidLayoutError
// when rows or cols is non-positive or the offset is negative.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 || l.Offset < 0 {
		return &InvalidLayoutError{Offset: l.Offset, Rows: l.Rows, Cols: l.Cols}
	}
	return nil
}

// Size returns the table's byte size, rows*cols.
func (l Layout) Size() int {
	return l.Rows * l.Cols
}
