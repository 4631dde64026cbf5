package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FirmNormalizer case-normalizes extracted firm names. Title-casing alone
// corrupts legal-entity abbreviations ("A.Ş" becomes "A.ş", "LTD" loses its
// dot), so a substitution table re-applies canonical casing afterwards. The
// order is fixed: capitalize first, then fix abbreviations, otherwise the
// table has nothing consistent to match.
type FirmNormalizer struct {
	rules []abbrevRule
}

type abbrevRule struct {
	re *regexp.Regexp
	to string
}

// NewFirmNormalizer builds a normalizer from an abbreviation table. Longer
// keys are applied first so "ltd. şti." wins over "ltd.".
func NewFirmNormalizer(abbrevs []Abbrev) *FirmNormalizer {
	sorted := make([]Abbrev, len(abbrevs))
	copy(sorted, abbrevs)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i].From) > len(sorted[j].From) })

	n := &FirmNormalizer{rules: make([]abbrevRule, 0, len(sorted))}
	for _, a := range sorted {
		// Anchored to whitespace rather than \b: abbreviation keys end in
		// dots and contain non-ASCII letters.
		re := regexp.MustCompile(`(?i)(^|\s)` + regexp.QuoteMeta(a.From) + `(\s|$)`)
		n.rules = append(n.rules, abbrevRule{re: re, to: a.To})
	}
	return n
}

// Normalize title-cases a firm name with Turkish casing rules and restores
// legal abbreviation casing. Inputs of 2 runes or fewer pass through
// untouched.
func (n *FirmNormalizer) Normalize(firm string) string {
	if utf8.RuneCountInString(firm) <= 2 {
		return firm
	}
	out := cases.Title(language.Turkish).String(firm)
	for _, rule := range n.rules {
		out = rule.re.ReplaceAllString(out, "${1}"+rule.to+"${2}")
	}
	return strings.TrimSpace(out)
}
