package qa

import (
	"fmt"
	"strings"

	"github.com/jpittner/finqa/internal/metric"
)

// group is one routing rule: trigger terms looked for anywhere in the
// question, the metrics that can answer it in priority order, and the
// phrase template the answer is rendered with.
type group struct {
	triggers   []string
	candidates []metric.Name
	template   string
}

// groups is the fixed routing order. The first group with a trigger
// inside the question wins and later groups are never consulted, even
// when the winning group has no candidate in the mapping. Trigger terms
// are substrings, so "expense" also catches "expenses" and "liabilit"
// catches every inflection.
var groups = []group{
	{
		triggers:   []string{"revenue", "sales", "income", "turnover"},
		candidates: []metric.Name{metric.Revenue},
		template:   "Based on the financial document, the %s is $%s.",
	},
	{
		triggers:   []string{"profit", "net income", "net profit", "earnings", "bottom line"},
		candidates: []metric.Name{metric.Profit, metric.NetIncome},
		template:   "The document shows a %s of $%s.",
	},
	{
		triggers:   []string{"expense", "cost", "spending", "cogs"},
		candidates: []metric.Name{metric.Expenses},
		template:   "Total %s are $%s according to the document.",
	},
	{
		triggers:   []string{"asset", "property", "equipment", "inventory"},
		candidates: []metric.Name{metric.Assets},
		template:   "The document reports %s of $%s.",
	},
	{
		triggers:   []string{"liabilit", "debt", "payable", "loan"},
		candidates: []metric.Name{metric.Liabilities},
		template:   "The document shows %s of $%s.",
	},
	{
		triggers:   []string{"equity", "shareholder", "owner"},
		candidates: []metric.Name{metric.Equity},
		template:   "According to the document, %s is $%s.",
	},
}

const noData = "I've analyzed the document but couldn't extract specific financial metrics. The document may use different terminology. You can ask me to look for specific terms or try uploading a different financial document."

// Answer routes a free-text question to one extracted metric and renders
// a reply. When no routing group triggers, or the triggered group has no
// extracted candidate, it falls back to listing everything that was
// extracted, or to a fixed no-data message for an empty mapping. Pure
// and deterministic: a fixed (question, mapping) pair always yields the
// identical string.
func Answer(question string, m metric.Mapping) string {
	q := strings.ToLower(question)
	for _, g := range groups {
		if !triggered(q, g.triggers) {
			continue
		}
		for _, name := range g.candidates {
			if tok, ok := m[name]; ok {
				return fmt.Sprintf(g.template, name.Display(), tok.Value)
			}
		}
		// The winning group cannot answer; later groups stay out of it.
		break
	}
	return fallback(m)
}

func triggered(q string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

// fallback lists every extracted metric in canonical order, or concedes
// that nothing was extracted.
func fallback(m metric.Mapping) string {
	if len(m) == 0 {
		return noData
	}
	lines := make([]string, 0, len(m))
	for _, name := range metric.Names() {
		if tok, ok := m[name]; ok {
			lines = append(lines, fmt.Sprintf("• **%s**: $%s", name.Display(), tok.Value))
		}
	}
	return "I found these financial metrics in the document:\n\n" +
		strings.Join(lines, "\n") +
		"\n\nYou can ask about any of these specific values."
}
