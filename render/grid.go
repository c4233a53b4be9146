package render

import (
	"fmt"
	"strings"

	"github.com/bgutch/evorom/romtable"
)

// Grid formats a grid as an aligned text matrix: column indices as a header
// row, row indices as a left gutter, fixed-width right-aligned cells. A
// non-empty title becomes the first line.
func Grid(g *romtable.Grid, title string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "%s\n", title)
	}

	cells := make([]string, g.Cols())
	for c := 0; c < g.Cols(); c++ {
		cells[c] = fmt.Sprintf("%4d", c)
	}
	header := fmt.Sprintf("%4s | %s", "", strings.Join(cells, " "))
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(header)))

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cells[c] = fmt.Sprintf("%4d", g.At(r, c))
		}
		fmt.Fprintf(&b, "%4d | %s\n", r, strings.Join(cells, " "))
	}

	return b.String()
}

// CSVRows flattens a grid into tabular rows ready for a CSV or spreadsheet
// writer. The first row is the header: the combined axis label followed by
// the column indices. Each remaining row is the row index followed by that
// row's cell values, as decimal strings. No file I/O happens here; hand the
// result to the export package.
func CSVRows(g *romtable.Grid, rowLabel, colLabel string) [][]string {
	rows := make([][]string, 0, g.Rows()+1)

	header := make([]string, 0, g.Cols()+1)
	header = append(header, rowLabel+` \ `+colLabel)
	for c := 0; c < g.Cols(); c++ {
		header = append(header, fmt.Sprintf("%d", c))
	}
	rows = append(rows, header)

	for r := 0; r < g.Rows(); r++ {
		row := make([]string, 0, g.Cols()+1)
		row = append(row, fmt.Sprintf("%d", r))
		for c := 0; c < g.Cols(); c++ {
			row = append(row, fmt.Sprintf("%d", g.At(r, c)))
		}
		rows = append(rows, row)
	}

	return rows
}
