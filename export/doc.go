// Package export writes tabular rows (as produced by render.CSVRows) to CSV
// streams and XLSX workbooks. It is the only place in the module that turns
// table data into file formats; the core packages never touch the
// filesystem.
package export
