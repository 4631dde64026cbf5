package extract

import "fmt"

// extractAmount applies the ordered pattern list (label-anchored first, bare
// number+currency second) across all pages and returns the first match that
// normalizes to a valid amount. Matches that fail normalization are skipped;
// a malformed numeric token is recovered locally, never an error.
func (p *Parser) extractAmount(sourceID string, pages []string) (*float64, string) {
	for ri, re := range p.amountRes {
		for pi, page := range pages {
			m := re.FindStringSubmatch(page)
			if m == nil {
				continue
			}
			rawCurrency := ""
			if len(m) > 2 {
				rawCurrency = m[2]
			}
			amount, currency := NormalizeAmount(m[1], rawCurrency, p.opts.CurrencyAliases)
			if amount == nil {
				continue
			}
			p.trace(Event{
				Source:   sourceID,
				Field:    "amount",
				Strategy: fmt.Sprintf("%s_%d", StrategyPattern, ri),
				Page:     pi,
				Value:    m[1],
			})
			return amount, currency
		}
	}
	return nil, ""
}
