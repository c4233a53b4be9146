// Package romtable extracts fixed-layout calibration tables from Evo 8 ROM
// images and compares them cell by cell.
//
// # Table layout
//
// The Mitsubishi 4G63 ECU stores fuel and ignition calibration as flat grids
// of byte values at fixed offsets inside the ROM image. A [Layout] names
// where a table lives and its shape:
//
//	{offset: 0x3000, rows: 16, cols: 16, row_label: "RPM", col_label: "Load"}
//
// A table occupies rows*cols contiguous bytes starting at offset, stored
// row-major with no padding between rows.
//
// # Usage
//
// Extract a table from a ROM image held in memory:
//
//	layout, err := romtable.Defaults().Lookup("octane")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid, err := romtable.Extract(romData, layout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cell [0][0] = %d\n", grid.At(0, 0))
//
// Compare the same table across two ROM revisions:
//
//	report, err := romtable.Diff(gridA, gridB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d cell(s) changed\n", report.Count())
//
// # Layout catalogs
//
// Layouts are looked up by table name from a [Catalog]. [Defaults] carries
// the built-in octane and ignition entries; [LoadCatalog] reads a JSONC
// document mapping table names to layouts:
//
//	{
//	    // offsets verified against the 2003 USDM image
//	    "octane":   {"offset": 12288, "rows": 16, "cols": 16, "row_label": "RPM", "col_label": "Load"},
//	    "ignition": {"offset": 16384, "rows": 16, "cols": 16, "row_label": "RPM", "col_label": "Load"}
//	}
//
// # Error Handling
//
// All failures are typed values returned to the caller:
//   - [InvalidLayoutError]: non-positive dimensions or negative offset
//   - [OutOfBoundsError]: layout extends beyond the end of the image
//   - [ShapeMismatchError]: diffing grids of different shape
//   - [UnknownTableError]: catalog lookup for an unconfigured table name
//
// Failed operations never produce a partial Grid or report.
package romtable
