package metric

import "strings"

// ScanColumns flags columns whose label names a financial metric and
// records the last numeric cell of each, on the theory that spreadsheets
// put a running or period total in the final row. The result is a partial
// mapping for the caller to merge; text-derived values keep precedence
// because Merge never overwrites.
func ScanColumns(columns []Column) Mapping {
	m := make(Mapping)
	for _, col := range columns {
		name, ok := matchLabel(strings.ToLower(col.Label))
		if !ok {
			continue
		}
		// First matching column wins for a metric.
		if _, done := m[name]; done {
			continue
		}
		raw, value, ok := lastNumeric(col.Values)
		if !ok {
			continue
		}
		m.Set(name, Token{Raw: raw, Value: value, Offset: -1, Source: SourceColumn})
	}
	return m
}

// matchLabel assigns a case-folded column label to the first metric in
// enumeration order with a synonym inside it. A column never contributes
// to more than one metric.
func matchLabel(label string) (Name, bool) {
	for _, name := range names {
		if containsAny(label, synonyms[name]) {
			return name, true
		}
	}
	return "", false
}

// lastNumeric walks the column bottom-up and returns the last cell that
// coerces to a number. Non-numeric cells are skipped, not errors.
func lastNumeric(values []string) (raw, normalized string, ok bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if v, good := coerceNumeric(values[i]); good {
			return values[i], v, true
		}
	}
	return "", "", false
}
