package romtable

// CellDiff records one cell that differs between two grids.
type CellDiff struct {
	// Row and Col locate the cell within the table
	Row int
	Col int

	// A is the cell value in the first grid
	A byte

	// B is the cell value in the second grid
	B byte
}

// DiffReport is the exhaustive result of comparing two equally-shaped grids.
// It carries the shared shape so a renderer can lay the differences back out
// as a matrix. Truncation is a rendering concern; the report always holds
// every differing cell.
type DiffReport struct {
	// Rows and Cols are the shape shared by both compared grids
	Rows int
	Cols int

	// Diffs holds every differing cell in row-major order
	Diffs []CellDiff
}

// Count returns the total number of differing cells.
func (r *DiffReport) Count() int {
	return len(r.Diffs)
}

// Diff compares two grids cell by cell and returns the complete set of
// differences in row-major order (row ascending, then column ascending).
// Grids of different shape fail with a *ShapeMismatchError; no partial
// comparison is attempted.
func Diff(a, b *Grid) (*DiffReport, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, &ShapeMismatchError{
			RowsA: a.rows, ColsA: a.cols,
			RowsB: b.rows, ColsB: b.cols,
		}
	}

	report := &DiffReport{Rows: a.rows, Cols: a.cols}
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			va, vb := a.At(row, col), b.At(row, col)
			if va != vb {
				report.Diffs = append(report.Diffs, CellDiff{Row: row, Col: col, A: va, B: vb})
			}
		}
	}

	return report, nil
}
