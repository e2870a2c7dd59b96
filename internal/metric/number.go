package metric

import (
	"iter"
	"regexp"
	"strings"
)

// numberPattern recognizes one numeric lexeme: optional currency marker,
// one to three leading digits, zero or more comma-separated groups of
// exactly three digits, and an optional two-digit decimal fraction.
var numberPattern = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

// Numbers scans text left to right and yields every well-formed numeric
// token together with its byte offset. The sequence is finite and
// restartable; candidates that do not normalize to a plain decimal are
// skipped. A malformed comma group is never matched as one token, only
// its well-formed pieces are.
func Numbers(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		for pos < len(text) {
			loc := numberPattern.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			raw := text[start:end]
			pos = end
			value, ok := Normalize(raw)
			if !ok {
				continue
			}
			if !yield(Token{Raw: raw, Value: value, Offset: start}) {
				return
			}
		}
	}
}

// Normalize strips the currency marker and thousands separators from a
// numeric lexeme and returns the normalized decimal string. ok is false
// when the remainder is not purely digits with at most one decimal point.
func Normalize(raw string) (string, bool) {
	s := strings.TrimPrefix(raw, "$")
	s = strings.ReplaceAll(s, ",", "")
	if !plainDecimal(s) {
		return "", false
	}
	return s, true
}

// plainDecimal reports whether s consists of nothing but digits with at
// most one decimal point, and at least one digit.
func plainDecimal(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			dots++
		case c >= '0' && c <= '9':
			digits++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// coerceNumeric interprets one tabular cell as a number. Currency
// markers, thousands separators, surrounding whitespace, and
// accounting-style parentheses for negatives are tolerated; any other
// content makes the cell non-numeric.
func coerceNumeric(cell string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg, s = true, strings.TrimSpace(s[1:len(s)-1])
	} else if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if !plainDecimal(s) {
		return "", false
	}
	if neg {
		s = "-" + s
	}
	return s, true
}
