package render

import (
	"fmt"
	"strings"

	"github.com/bgutch/evorom/bindiff"
	"github.com/bgutch/evorom/romtable"
)

// DefaultLimit is the byte-diff entry cutoff used when ByteDiff is called
// with a non-positive limit.
const DefaultLimit = 200

// cellWidth is the width of one cell in the side-by-side diff matrix:
// two spaces, a 4-wide old value, the arrow, and a 4-wide new value.
const cellWidth = 11

// CellDiff formats a grid diff as a side-by-side matrix. Changed cells
// render as "old→new"; unchanged cells are blank placeholders of the same
// width, preserving column alignment. The trailer states the changed-cell
// count and the two compared labels.
func CellDiff(report *romtable.DiffReport, labelA, labelB string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%4s", "Col")
	for c := 0; c < report.Cols; c++ {
		fmt.Fprintf(&b, "  %9d", c)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 4+report.Cols*cellWidth))

	// Diffs are in row-major order, so a single cursor tracks the next
	// changed cell while scanning every position.
	next := 0
	for r := 0; r < report.Rows; r++ {
		fmt.Fprintf(&b, "%4d", r)
		for c := 0; c < report.Cols; c++ {
			if next < len(report.Diffs) && report.Diffs[next].Row == r && report.Diffs[next].Col == c {
				d := report.Diffs[next]
				fmt.Fprintf(&b, "  %4d→%-4d", d.A, d.B)
				next++
			} else {
				fmt.Fprintf(&b, "  %9s", "")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d cell(s) differ between %s and %s.\n", report.Count(), labelA, labelB)
	return b.String()
}

// ByteDiff formats up to limit entries of a byte-level diff report, one line
// per differing offset: the offset as 8-digit uppercase hex, then each
// side's byte as 2-digit uppercase hex or "--" when that side is absent.
// A non-positive limit means DefaultLimit. If the report holds more entries
// than the limit, a single trailer line states how many were omitted.
func ByteDiff(report *bindiff.Report, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %-10s %s\n", "Offset (hex)", "A (hex)", "B (hex)")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 36))

	shown := report.Entries
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, e := range shown {
		fmt.Fprintf(&b, "0x%08X     %-10s %s\n", e.Offset, hexByte(e.A), hexByte(e.B))
	}

	if omitted := report.Count() - len(shown); omitted > 0 {
		word := "differences"
		if omitted == 1 {
			word = "difference"
		}
		fmt.Fprintf(&b, "  … and %d more %s omitted.\n", omitted, word)
	}

	return b.String()
}

func hexByte(v bindiff.Byte) string {
	if !v.Present {
		return "--"
	}
	return fmt.Sprintf("%02X", v.Value)
}
