package extract

// Extraction strategies reported through the observer.
const (
	StrategyLabel       = "label"
	StrategyNextLine    = "next_line"
	StrategyHeaderBlock = "header_block"
	StrategyGreeting    = "greeting"
	StrategyPattern     = "pattern"
	StrategyClassifier  = "classifier"
)

// Event describes one step of the extraction cascade: a label hit, a
// fallback strategy being used, or a classifier rejection.
type Event struct {
	Source   string // document identity, as passed to Parse
	Field    string // "firm", "subject" or "amount"; empty for classifier events
	Strategy string
	Page     int    // page index the value came from
	Value    string // extracted value, where applicable
	Reason   string // rejection reason, where applicable
}

// Observer receives trace events from the parser. Implementations must be
// safe for concurrent use; the parser itself holds no state between calls.
type Observer func(Event)

func (p *Parser) trace(ev Event) {
	if p.observer != nil {
		p.observer(ev)
	}
}
