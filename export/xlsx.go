package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes rows to an XLSX workbook at path, on a single sheet with
// the given name. Cells that parse as integers are written as numbers so
// spreadsheet formulas work on exported table values; everything else is
// written as text.
func WriteXLSX(path, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", r+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, toCellValues(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func toCellValues(row []string) *[]interface{} {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		if n, err := strconv.Atoi(cell); err == nil {
			values[i] = n
		} else {
			values[i] = cell
		}
	}
	return &values
}
