package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jpittner/finqa/internal/document"
)

// CSVReader handles CSV files. The whole file is treated as one sheet:
// the first row labels the columns, every later row is data.
type CSVReader struct{}

func (p *CSVReader) Parse(r io.Reader, filename string) (*document.Content, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	// Exported sheets are frequently ragged.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	content := &document.Content{
		Title: strings.TrimSuffix(filename, ".csv"),
	}
	if len(records) == 0 {
		return content, nil
	}

	content.Text = strings.TrimSpace(renderGrid(records))
	content.Columns = gridColumns(records)
	return content, nil
}
