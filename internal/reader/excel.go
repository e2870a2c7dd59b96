package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jpittner/finqa/internal/document"
)

// ExcelReader handles .xlsx workbooks. Every sheet contributes a
// "Sheet: <name>" label line followed by its rendered grid, and every
// sheet's first row labels its columns.
type ExcelReader struct{}

func (p *ExcelReader) Parse(r io.Reader, filename string) (*document.Content, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	content := &document.Content{
		Title: strings.TrimSuffix(filename, ".xlsx"),
	}

	var text strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		writeBlock(&text, "Sheet: "+sheet+"\n"+renderGrid(rows))
		content.Columns = append(content.Columns, gridColumns(rows)...)
	}
	content.Text = text.String()
	return content, nil
}
