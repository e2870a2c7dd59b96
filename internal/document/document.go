package document

import (
	"time"
	"unicode/utf8"

	"github.com/jpittner/finqa/internal/metric"
)

// Content is what a reader produces from one source file: the flat
// document text with advisory section label lines (e.g. "Sheet: Q3"),
// plus any tabular columns encountered along the way.
type Content struct {
	Title   string          // from metadata or filename
	Text    string          // full text, sections separated by blank lines
	Columns []metric.Column // tabular data, empty for prose formats
}

// Document is one processed record in the registry. Documents are
// treated as immutable once stored.
type Document struct {
	ID          string          `json:"id"`
	Filename    string          `json:"filename"`
	Title       string          `json:"title"`
	Text        string          `json:"-"`
	Columns     []metric.Column `json:"-"`
	ContentHash string          `json:"content_hash"`
	Metrics     metric.Mapping  `json:"metrics"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// Preview returns the first n bytes of the document text, cut back to a
// rune boundary, with an ellipsis when truncated.
func (d *Document) Preview(n int) string {
	if len(d.Text) <= n {
		return d.Text
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(d.Text[cut]) {
		cut--
	}
	return d.Text[:cut] + "..."
}
