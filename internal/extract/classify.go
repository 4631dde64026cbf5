package extract

import "unicode/utf8"

// LooksLikeOffer decides whether the extracted fields add up to a commercial
// offer. Each of firm, subject and amount contributes one signal; the
// document is accepted when at least Threshold signals are present. The
// default of 2 suppresses false positives from unrelated PDFs that happen to
// contain a stray number or a greeting line.
func (p *Parser) LooksLikeOffer(firm, subject string, amount *float64) bool {
	return p.signals(firm, subject, amount) >= p.opts.Threshold
}

func (p *Parser) signals(firm, subject string, amount *float64) int {
	n := 0
	if utf8.RuneCountInString(firm) > p.opts.MinFieldLen {
		n++
	}
	if utf8.RuneCountInString(subject) > p.opts.MinFieldLen {
		n++
	}
	if amount != nil {
		n++
	}
	return n
}
