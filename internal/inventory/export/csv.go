// Package export renders report tables as comma-separated values.
package export

import (
	"fmt"
	"io"
	"strings"
)

// Table is an ordered report: a header row plus uniform value rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV writes the table. Every value is quoted, with embedded quotes
// doubled. A table with no rows is a recognized no-op: nothing is written.
func WriteCSV(w io.Writer, t Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Header, ","))

	for _, row := range t.Rows {
		quoted := make([]string, len(row))
		for i, value := range row {
			quoted[i] = quote(value)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
