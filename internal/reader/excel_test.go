package reader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jpittner/finqa/internal/metric"
)

// buildWorkbook writes cells into a fresh in-memory workbook and returns
// the serialized bytes.
func buildWorkbook(t *testing.T, cells map[string]map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for sheet, sheetCells := range cells {
		if sheet != "Sheet1" {
			if _, err := f.NewSheet(sheet); err != nil {
				t.Fatalf("new sheet %s: %v", sheet, err)
			}
		}
		for ref, v := range sheetCells {
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				t.Fatalf("set %s!%s: %v", sheet, ref, err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestExcelReader_SheetLabelGridAndColumns(t *testing.T) {
	data := buildWorkbook(t, map[string]map[string]any{
		"Sheet1": {
			"A1": "Revenue", "B1": "Profit",
			"A2": 100, "B2": 30,
			"A3": 300, "B3": 90,
		},
	})

	p := &ExcelReader{}
	content, err := p.Parse(bytes.NewReader(data), "fy24.xlsx")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if content.Title != "fy24" {
		t.Errorf("expected title 'fy24', got %q", content.Title)
	}
	if !strings.Contains(content.Text, "Sheet: Sheet1") {
		t.Errorf("expected sheet label line, got %q", content.Text)
	}
	if !strings.Contains(content.Text, "Revenue  Profit") {
		t.Errorf("expected header row in grid text, got %q", content.Text)
	}
	if !strings.Contains(content.Text, "100  30") {
		t.Errorf("expected data row in grid text, got %q", content.Text)
	}

	if len(content.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(content.Columns))
	}
	if content.Columns[0].Label != "Revenue" {
		t.Errorf("expected first label 'Revenue', got %q", content.Columns[0].Label)
	}
	want := []string{"100", "300"}
	for i, v := range want {
		if content.Columns[0].Values[i] != v {
			t.Errorf("expected revenue value %q at %d, got %q", v, i, content.Columns[0].Values[i])
		}
	}
}

func TestExcelReader_MultipleSheets(t *testing.T) {
	data := buildWorkbook(t, map[string]map[string]any{
		"Sheet1": {"A1": "Revenue", "A2": 500},
		"Costs":  {"A1": "Expenses", "A2": 120},
	})

	p := &ExcelReader{}
	content, err := p.Parse(bytes.NewReader(data), "book.xlsx")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !strings.Contains(content.Text, "Sheet: Sheet1") || !strings.Contains(content.Text, "Sheet: Costs") {
		t.Errorf("expected a label line per sheet, got %q", content.Text)
	}
	if len(content.Columns) != 2 {
		t.Fatalf("expected one column per sheet, got %d", len(content.Columns))
	}

	m := metric.ScanColumns(content.Columns)
	if tok, ok := m[metric.Expenses]; !ok || tok.Value != "120" {
		t.Errorf("expected expenses 120 from Costs sheet, got %+v", m)
	}
}

func TestExcelReader_NotAWorkbook(t *testing.T) {
	p := &ExcelReader{}
	if _, err := p.Parse(strings.NewReader("plain text"), "fake.xlsx"); err == nil {
		t.Error("expected error for non-xlsx bytes")
	}
}
