package reader

import (
	"strings"
	"testing"
)

func TestTextReader_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."

	p := &TextReader{}
	content, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if content.Text != want {
		t.Errorf("expected text %q, got %q", want, content.Text)
	}
	if content.Title != "notes" {
		t.Errorf("expected title 'notes', got %q", content.Title)
	}
	if len(content.Columns) != 0 {
		t.Errorf("expected no columns from plain text, got %d", len(content.Columns))
	}
}

func TestTextReader_EmptyInput(t *testing.T) {
	p := &TextReader{}
	content, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if content.Text != "" {
		t.Errorf("expected empty text, got %q", content.Text)
	}
}

func TestTextReader_SingleLine(t *testing.T) {
	p := &TextReader{}
	content, err := p.Parse(strings.NewReader("Just one line."), "single.txt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if content.Text != "Just one line." {
		t.Errorf("expected single line, got %q", content.Text)
	}
}

func TestTextReader_MultipleBlankLines(t *testing.T) {
	input := "Para one.\n\n\n\nPara two."

	p := &TextReader{}
	content, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if content.Text != "Para one.\n\nPara two." {
		t.Errorf("expected runs of blank lines collapsed, got %q", content.Text)
	}
}

func TestTextReader_WhitespaceOnlyLines(t *testing.T) {
	input := "Para one.\n   \nPara two."

	p := &TextReader{}
	content, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if content.Text != "Para one.\n\nPara two." {
		t.Errorf("expected whitespace-only line to split paragraphs, got %q", content.Text)
	}
}

func TestTextReader_TitleStripsOnlyTxtSuffix(t *testing.T) {
	p := &TextReader{}
	content, err := p.Parse(strings.NewReader("body"), "report.md")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if content.Title != "report.md" {
		t.Errorf("expected non-.txt filename kept verbatim, got %q", content.Title)
	}
}
