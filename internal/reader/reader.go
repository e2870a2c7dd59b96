package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jpittner/finqa/internal/document"
)

// Reader converts raw document bytes into flat Content: text for the
// extractor plus any tabular columns for the column scanner.
type Reader interface {
	Parse(r io.Reader, filename string) (*document.Content, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".xlsx": true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextReader{}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".csv":
		return &CSVReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".pdf":
		return &PDFReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	case ".xlsx":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// writeBlock appends one trimmed text block, blank-line separated from
// whatever came before it.
func writeBlock(b *strings.Builder, block string) {
	block = strings.TrimSpace(block)
	if block == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString(block)
}
