// Package bindiff compares raw ROM images byte by byte.
//
// Unlike a table-level comparison, bindiff has no notion of layout: it scans
// two byte buffers of possibly different length and records every offset
// where they disagree. A position past the end of the shorter buffer is
// recorded as absent on that side, never as a zero byte, so a genuine 0x00
// cell is always distinguishable from a missing one.
//
// The report is exhaustive. Callers that only want to display the first N
// differences truncate at render time (see the render package); the counts
// in the report itself are never clipped.
//
//	report := bindiff.Diff(imageA, imageB)
//	if report.Count() == 0 {
//	    fmt.Println("images are identical")
//	}
package bindiff
