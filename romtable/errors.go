package romtable

import (
	"fmt"
	"strings"
)

// InvalidLayoutError indicates a layout with non-positive dimensions or a
// negative offset.
type InvalidLayoutError struct {
	Offset int
	Rows   int
	Cols   int
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid table layout: offset=%d, rows=%d, cols=%d (rows and cols must be positive, offset non-negative)",
		e.Offset, e.Rows, e.Cols)
}

// OutOfBoundsError indicates that a table layout extends beyond the end of
// the ROM image it is being extracted from.
type OutOfBoundsError struct {
	// Offset is the table's byte offset within the image
	Offset int

	// Size is the table's byte size, rows*cols
	Size int

	// BufferLen is the length of the image the table did not fit in
	BufferLen int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("table extends beyond ROM end (offset=0x%X, size=%d, rom_size=%d)",
		e.Offset, e.Size, e.BufferLen)
}

// ShapeMismatchError indicates an attempt to diff two grids of different
// shape. Grids extracted with the same layout always share a shape;
// comparing grids from different layouts is a caller error.
type ShapeMismatchError struct {
	RowsA int
	ColsA int
	RowsB int
	ColsB int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("grid shape mismatch: %dx%d vs %dx%d",
		e.RowsA, e.ColsA, e.RowsB, e.ColsB)
}

// UnknownTableError indicates a catalog lookup for a table name that is not
// configured. Available lists the configured names in sorted order.
type UnknownTableError struct {
	Name      string
	Available []string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}
