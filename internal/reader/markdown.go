package reader

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jpittner/finqa/internal/document"
)

// MarkdownReader handles Markdown files using goldmark. Headings become
// label lines in the flat text; block content follows in order.
type MarkdownReader struct{}

func (p *MarkdownReader) Parse(r io.Reader, filename string) (*document.Content, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	content := &document.Content{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	var buf strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			writeBlock(&buf, string(node.Text(src)))
		default:
			writeBlock(&buf, extractText(n, src))
		}
	}
	content.Text = buf.String()
	return content, nil
}

// extractText gets the text content of a goldmark AST node. Inline
// children carry the text for parsed blocks; raw blocks like fenced code
// only have their source lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.HasChildren() {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				// Recurse for nested structure. Block children such as
				// list items get their own line.
				buf.WriteString(extractText(c, src))
				if c.Type() == ast.TypeBlock {
					buf.WriteByte('\n')
				}
			}
		}
	} else if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}
