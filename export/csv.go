package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes rows to w in CSV form, one record per row.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
