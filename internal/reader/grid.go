package reader

import (
	"strings"

	"github.com/jpittner/finqa/internal/metric"
)

// renderGrid flattens rows into readable lines, header row first. Cells
// are joined with two spaces, like a plain spreadsheet dump.
func renderGrid(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// gridColumns turns a header row plus data rows into labeled columns.
// Cells past the header width are dropped; short rows contribute only
// the cells they have.
func gridColumns(rows [][]string) []metric.Column {
	if len(rows) == 0 {
		return nil
	}
	headers := rows[0]
	cols := make([]metric.Column, len(headers))
	for i, h := range headers {
		cols[i] = metric.Column{Label: strings.TrimSpace(h)}
	}
	for _, row := range rows[1:] {
		for i := range cols {
			if i < len(row) {
				cols[i].Values = append(cols[i].Values, row[i])
			}
		}
	}
	return cols
}
