package romtable

// Grid is an extracted row-major matrix of byte values. Grids are immutable
// once extracted: the cell data is copied out of the source image and never
// shared or mutated afterwards.
type Grid struct {
	rows  int
	cols  int
	cells []byte // row-major, len == rows*cols
}

// Extract reads the table described by layout out of image and returns it as
// a fresh Grid. The layout is validated first; a layout that extends beyond
// the end of the image fails with an *OutOfBoundsError. Extract never
// aliases the image: the returned grid owns its own copy of the cells.
func Extract(image []byte, layout Layout) (*Grid, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	size := layout.Size()
	if layout.Offset+size > len(image) {
		return nil, &OutOfBoundsError{
			Offset:    layout.Offset,
			Size:      size,
			BufferLen: len(image),
		}
	}

	cells := make([]byte, size)
	copy(cells, image[layout.Offset:layout.Offset+size])

	return &Grid{
		rows:  layout.Rows,
		cols:  layout.Cols,
		cells: cells,
	}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell value at the given row and column. Indices follow
// row-major order: row selects the table row, col the position within it.
func (g *Grid) At(row, col int) byte {
	return g.cells[row*g.cols+col]
}

// Row returns a copy of a single table row.
func (g *Grid) Row(row int) []byte {
	out := make([]byte, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}
