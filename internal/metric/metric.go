package metric

import "strings"

// Name identifies one of the canonical financial metrics.
type Name string

const (
	Revenue     Name = "revenue"
	Profit      Name = "profit"
	Expenses    Name = "expenses"
	Assets      Name = "assets"
	Liabilities Name = "liabilities"
	Equity      Name = "equity"
	NetIncome   Name = "net_income"
)

// names is the canonical enumeration order. Pattern priority, proximity
// assignment, column matching, and listings all iterate in this order.
var names = []Name{Revenue, Profit, Expenses, Assets, Liabilities, Equity, NetIncome}

// Names returns every metric in canonical enumeration order.
func Names() []Name { return names }

// Display returns the form used in rendered answers ("net_income" becomes
// "net income").
func (n Name) Display() string { return strings.ReplaceAll(string(n), "_", " ") }

// synonyms are the detection terms per metric, shared by the proximity
// fallback and the column scanner. Metrics are always tested in the
// canonical order above, so the first metric whose term appears wins.
var synonyms = map[Name][]string{
	Revenue:     {"revenue", "sales", "income", "turnover"},
	Profit:      {"profit", "net income", "net profit", "earnings"},
	Expenses:    {"expenses", "costs", "operating expenses", "cogs", "cost of goods sold"},
	Assets:      {"assets", "total assets", "current assets", "fixed assets"},
	Liabilities: {"liabilities", "debt", "total liabilities", "current liabilities"},
	Equity:      {"equity", "shareholders equity", "owners equity"},
	NetIncome:   {"net income", "net profit", "bottom line"},
}

// Source records which strategy produced a value.
type Source string

const (
	SourcePattern   Source = "pattern"   // phase-1 directional match
	SourceProximity Source = "proximity" // phase-2 window match
	SourceColumn    Source = "column"    // tabular column scan
)

// Token is one parsed numeric value: the lexical form as matched, its
// normalized decimal string, and the byte offset where it was found.
// Offset is -1 for values that did not come from running text.
type Token struct {
	Raw    string `json:"raw"`
	Value  string `json:"value"`
	Offset int    `json:"offset"`
	Source Source `json:"source,omitempty"`
}

// Column is one labeled column of tabular cell values, in row order.
type Column struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Mapping holds at most one value per metric. The first confident match
// wins; entries are never overwritten once set.
type Mapping map[Name]Token

// Set records tok for name unless name already has a value. It reports
// whether the token was stored.
func (m Mapping) Set(name Name, tok Token) bool {
	if _, ok := m[name]; ok {
		return false
	}
	m[name] = tok
	return true
}

// Merge copies entries from other for names this mapping does not hold
// yet. Existing entries are left untouched.
func (m Mapping) Merge(other Mapping) {
	for _, name := range names {
		if tok, ok := other[name]; ok {
			m.Set(name, tok)
		}
	}
}

// Values flattens the mapping to name -> normalized decimal string.
func (m Mapping) Values() map[Name]string {
	out := make(map[Name]string, len(m))
	for name, tok := range m {
		out[name] = tok.Value
	}
	return out
}

// ExtractAll is the combined entry point: text extraction first, then any
// still-unset metrics are filled from tabular columns. Text-derived
// values always win over column-derived ones.
func ExtractAll(text string, columns []Column) Mapping {
	m := Extract(text)
	m.Merge(ScanColumns(columns))
	return m
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
