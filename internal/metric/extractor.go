package metric

import (
	"regexp"
	"strings"
)

// proximityWindow is the context size in bytes on each side of a numeric
// token during the phase-2 fallback.
const proximityWindow = 100

// number is the numeric-group fragment shared by every directional
// pattern. The currency marker stays outside the capture group.
const number = `\$?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

// directional is one compiled phase-1 pattern. num is the submatch index
// of the numeric group, which differs by direction: the term group comes
// first in term-before-number patterns and second in the reverse.
type directional struct {
	re  *regexp.Regexp
	num int
}

// patternTable lists the phase-1 directional patterns per metric,
// term-before-number first. Table order is the resolution order and the
// per-metric slice order is the pattern priority: the first pattern with
// a validly normalizing numeric group settles the metric. The non-greedy
// span never crosses a line boundary.
var patternTable = []struct {
	name Name
	pats []directional
}{
	{Revenue, []directional{
		{regexp.MustCompile(`(?i)(revenue|sales|income).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(revenue|sales|income)`), 1},
	}},
	{Profit, []directional{
		{regexp.MustCompile(`(?i)(profit|net income|net profit|earnings).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(profit|net income|net profit|earnings)`), 1},
	}},
	{Expenses, []directional{
		{regexp.MustCompile(`(?i)(expenses|costs|operating expenses|cost of goods sold|cogs).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(expenses|costs|operating expenses)`), 1},
	}},
	{Assets, []directional{
		{regexp.MustCompile(`(?i)(total assets|assets).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(total assets|assets)`), 1},
	}},
	{Liabilities, []directional{
		{regexp.MustCompile(`(?i)(liabilities|debt|total liabilities).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(liabilities|debt)`), 1},
	}},
	{Equity, []directional{
		{regexp.MustCompile(`(?i)(equity|shareholders equity|owners equity).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(equity|shareholders equity)`), 1},
	}},
	{NetIncome, []directional{
		{regexp.MustCompile(`(?i)(net income|net profit|bottom line).*?` + number), 2},
		{regexp.MustCompile(`(?i)` + number + `.*?(net income|net profit)`), 1},
	}},
}

// Extract scans text and resolves each metric with the two-phase
// strategy: directional patterns first, then the proximity fallback for
// anything still unresolved. Phase 1 always beats phase 2 regardless of
// text position; within a phase the earliest occurrence wins, and a
// resolved metric is never overwritten. Absence of a match leaves the
// metric unset, which is not an error.
func Extract(text string) Mapping {
	m := make(Mapping)
	if text == "" {
		return m
	}
	for _, entry := range patternTable {
		for _, p := range entry.pats {
			tok, ok := firstValid(p, text)
			if !ok {
				continue
			}
			m.Set(entry.name, tok)
			break
		}
	}
	proximityFill(text, m)
	return m
}

// firstValid returns the earliest match of p whose numeric group
// normalizes to a plain decimal.
func firstValid(p directional, text string) (Token, bool) {
	pos := 0
	for pos < len(text) {
		idx := p.re.FindStringSubmatchIndex(text[pos:])
		if idx == nil {
			break
		}
		lo, hi := idx[2*p.num], idx[2*p.num+1]
		if lo >= 0 {
			raw := text[pos+lo : pos+hi]
			if value, ok := Normalize(raw); ok {
				return Token{Raw: raw, Value: value, Offset: pos + lo, Source: SourcePattern}, true
			}
		}
		pos += idx[1]
	}
	return Token{}, false
}

// proximityFill assigns numeric tokens to still-unresolved metrics when a
// synonym term appears within the window around the token's own offset.
// Tokens are visited in scan order and each token settles at most one
// metric, the first unresolved one in enumeration order.
func proximityFill(text string, m Mapping) {
	if len(m) == len(names) {
		return
	}
	for tok := range Numbers(text) {
		start := max(tok.Offset-proximityWindow, 0)
		end := min(tok.Offset+len(tok.Raw)+proximityWindow, len(text))
		window := strings.ToLower(text[start:end])
		for _, name := range names {
			if _, done := m[name]; done {
				continue
			}
			if !containsAny(window, synonyms[name]) {
				continue
			}
			tok.Source = SourceProximity
			m.Set(name, tok)
			break
		}
		if len(m) == len(names) {
			return
		}
	}
}
