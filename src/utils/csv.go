package utils

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes a header row followed by data rows with standard CSV
// quoting and "\n" line endings. An empty header is skipped entirely, so a
// dataset without fields produces no output at all.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
