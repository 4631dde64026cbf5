package extract

import "strings"

// extractSubject mirrors the firm cascade without the suffix and salutation
// fallbacks: same-line label match over the subject window, then a re-run
// against the joined header block of each page.
func (p *Parser) extractSubject(sourceID string, pages []string) string {
	maxP := minInt(len(pages), p.opts.MaxPages)

	for pi := 0; pi < maxP; pi++ {
		lines := pageLines(pages[pi])
		n := minInt(len(lines), p.opts.SubjectWindow)
		for i := 0; i < n; i++ {
			m := p.subjectLabelRe.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			strategy := StrategyLabel
			val := m[1]
			if p.trimNoise(val) == "" && i+1 < len(lines) {
				strategy = StrategyNextLine
				val = lines[i+1]
			}
			val = p.trimNoise(val)
			if p.accept(val) {
				p.trace(Event{Source: sourceID, Field: "subject", Strategy: strategy, Page: pi, Value: val})
				return val
			}
		}
	}

	for pi := 0; pi < maxP; pi++ {
		lines := pageLines(pages[pi])
		block := strings.Join(lines[:minInt(len(lines), p.opts.SubjectHeaderBlock)], "\n")
		m := p.subjectLabelRe.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		val := p.trimNoise(m[1])
		if p.accept(val) {
			p.trace(Event{Source: sourceID, Field: "subject", Strategy: StrategyHeaderBlock, Page: pi, Value: val})
			return val
		}
	}

	return ""
}
