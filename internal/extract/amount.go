package extract

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeAmount converts a raw numeric token with ambiguous Turkish/English
// separator conventions into a float, and canonicalizes the currency token
// alongside it. The separator policy:
//
//   - interior whitespace is stripped (space-grouped thousands)
//   - if both ',' and '.' occur, whichever occurs last is the decimal
//     separator and the other is stripped
//   - a lone ',' is a decimal separator (Turkish convention)
//   - a lone '.' followed by exactly 3 digits is a thousands separator,
//     otherwise a decimal point; a known misclassification source for
//     genuine 3-digit decimals
//
// Tokens with fewer than 3 significant digits (trailing fraction zeros do
// not count) are rejected to suppress false positives like "1.00". On any
// rejection or parse failure both return values are empty; currency is never
// returned without an amount.
func NormalizeAmount(raw, currency string, aliases map[string]string) (*float64, string) {
	cleaned := stripSpace(raw)

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastDot >= 0:
		if isThousandsTail(cleaned[lastDot+1:]) {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	if significantDigits(cleaned) < 3 {
		return nil, ""
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 {
		return nil, ""
	}
	return &v, NormalizeCurrency(currency, aliases)
}

// NormalizeCurrency maps a raw currency token to its canonical code via the
// alias table; unknown tokens pass through upper-cased, empty stays empty.
func NormalizeCurrency(tok string, aliases map[string]string) string {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return ""
	}
	if canonical, ok := aliases[strings.ToLower(tok)]; ok {
		return canonical
	}
	return strings.ToUpper(tok)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isThousandsTail reports whether the text after the last dot is exactly
// three digits, i.e. "27.560" style grouping rather than a decimal fraction.
func isThousandsTail(tail string) bool {
	if len(tail) != 3 {
		return false
	}
	for _, r := range tail {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// significantDigits counts digits, ignoring trailing zeros in the decimal
// fraction so that "1.00" counts as one digit, not three.
func significantDigits(s string) int {
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot] + strings.TrimRight(s[dot+1:], "0")
	}
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
