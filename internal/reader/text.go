package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/jpittner/finqa/internal/document"
)

// TextReader handles plain text files.
type TextReader struct{}

func (p *TextReader) Parse(r io.Reader, filename string) (*document.Content, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &document.Content{
		Title: strings.TrimSuffix(filename, ".txt"),
		Text:  strings.Join(paragraphs, "\n\n"),
	}, nil
}
