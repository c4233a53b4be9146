// Package render formats extracted tables and diff reports as plain text.
//
// Every renderer is a pure function from values to a string: rendering the
// same grid or report twice yields byte-identical output, and nothing is
// written to any file or terminal. Truncation of long byte-diff listings
// happens here, at the display layer; the reports themselves (see the
// romtable and bindiff packages) are always exhaustive.
package render
