package extract

// extractFirm runs the firm cascade: same-line label match, header-block
// legal-suffix detection, then salutation. First accepted candidate wins.
func (p *Parser) extractFirm(sourceID string, pages []string) string {
	maxP := minInt(len(pages), p.opts.MaxPages)

	for pi := 0; pi < maxP; pi++ {
		lines := pageLines(pages[pi])
		n := minInt(len(lines), p.opts.FirmWindow)
		for i := 0; i < n; i++ {
			m := p.firmLabelRe.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			strategy := StrategyLabel
			val := m[1]
			if p.trimNoise(val) == "" && i+1 < len(lines) {
				// Label with nothing after the delimiter: the value sits on
				// the following line.
				strategy = StrategyNextLine
				val = lines[i+1]
			}
			val = p.trimNoise(val)
			if p.accept(val) {
				p.trace(Event{Source: sourceID, Field: "firm", Strategy: strategy, Page: pi, Value: val})
				return val
			}
		}
	}

	for pi := 0; pi < maxP; pi++ {
		lines := pageLines(pages[pi])
		n := minInt(len(lines), p.opts.FirmHeaderBlock)
		for i := 0; i < n; i++ {
			m := p.suffixLineRe.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			val := p.trimNoise(m[1])
			if p.accept(val) {
				p.trace(Event{Source: sourceID, Field: "firm", Strategy: StrategyHeaderBlock, Page: pi, Value: val})
				return val
			}
		}
	}

	for pi := 0; pi < maxP; pi++ {
		lines := pageLines(pages[pi])
		n := minInt(len(lines), p.opts.FirmWindow)
		for i := 0; i < n; i++ {
			m := p.greetingRe.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			val := p.trimNoise(m[1])
			if p.honorificRe.MatchString(val) {
				// "Sayın Ahmet Bey" greets a person, not a firm.
				continue
			}
			if p.accept(val) {
				p.trace(Event{Source: sourceID, Field: "firm", Strategy: StrategyGreeting, Page: pi, Value: val})
				return val
			}
		}
	}

	return ""
}
