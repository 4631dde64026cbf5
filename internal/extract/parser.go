package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/deltagida/offerscan/internal/model"
)

// Parser runs the full extraction pipeline over one document at a time.
// It is stateless between calls and safe for concurrent use.
type Parser struct {
	opts       Options
	observer   Observer
	normalizer *FirmNormalizer

	firmLabelRe    *regexp.Regexp
	subjectLabelRe *regexp.Regexp
	greetingRe     *regexp.Regexp
	honorificRe    *regexp.Regexp
	suffixLineRe   *regexp.Regexp
	stopRe         *regexp.Regexp
	amountRes      []*regexp.Regexp
}

// New compiles the pattern tables for the given options. The observer may be
// nil; it receives trace events for label hits, fallbacks and rejections.
func New(opts Options, observer Observer) (*Parser, error) {
	if opts.MaxPages <= 0 {
		return nil, eris.New("extract: max_pages must be positive")
	}
	if opts.Threshold <= 0 {
		return nil, eris.New("extract: threshold must be positive")
	}
	if len(opts.FirmLabels) == 0 || len(opts.SubjectLabels) == 0 || len(opts.AmountLabels) == 0 {
		return nil, eris.New("extract: label sets must not be empty")
	}

	p := &Parser{
		opts:       opts,
		observer:   observer,
		normalizer: NewFirmNormalizer(opts.LegalAbbrevs),
	}

	var err error
	if p.firmLabelRe, err = compileLabelRe(opts.FirmLabels); err != nil {
		return nil, eris.Wrap(err, "extract: compile firm labels")
	}
	if p.subjectLabelRe, err = compileLabelRe(opts.SubjectLabels); err != nil {
		return nil, eris.Wrap(err, "extract: compile subject labels")
	}
	if p.greetingRe, err = regexp.Compile(`(?i)(?:` + alternation(opts.GreetingWords) + `)\s+(.+)`); err != nil {
		return nil, eris.Wrap(err, "extract: compile greetings")
	}
	if p.honorificRe, err = regexp.Compile(`(?i)(?:^|\s)(?:` + alternation(opts.HonorificNoise) + `)(?:\s|$)`); err != nil {
		return nil, eris.Wrap(err, "extract: compile honorifics")
	}
	if p.suffixLineRe, err = regexp.Compile(`(?i)^(.{2,}?\s(?:` + alternation(opts.LegalSuffixes) + `))\s*$`); err != nil {
		return nil, eris.Wrap(err, "extract: compile legal suffixes")
	}
	if p.stopRe, err = regexp.Compile(`(?i)\s+(?:` + alternation(opts.StopWords) + `)`); err != nil {
		return nil, eris.Wrap(err, "extract: compile stop words")
	}

	num := `\d[\d.,]*(?:\s\d{3}(?:[.,]\d+)?)*`
	cur := alternation(opts.CurrencyTokens)
	labeled := `(?i)(?:` + alternation(opts.AmountLabels) + `)\s*[:\-]?\s*(` + num + `)\s*(` + cur + `)?`
	bare := `(?i)(` + num + `)\s*(` + cur + `)`
	for _, pat := range []string{labeled, bare} {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, eris.Wrap(err, "extract: compile amount pattern")
		}
		p.amountRes = append(p.amountRes, re)
	}

	return p, nil
}

// Parse runs firm, subject and amount extraction over the sanitized pages,
// gates the result through the classifier, and returns nil when the document
// does not look like an offer. It never fails: absent fields are empty.
func (p *Parser) Parse(sourceID string, pages []string) *model.OfferRecord {
	clean := make([]string, len(pages))
	for i, pg := range pages {
		clean[i] = Sanitize(pg)
	}

	firm := p.normalizer.Normalize(p.extractFirm(sourceID, clean))
	subject := truncateRunes(p.extractSubject(sourceID, clean), p.opts.MaxSubjectLen)
	amount, currency := p.extractAmount(sourceID, clean)

	if !p.LooksLikeOffer(firm, subject, amount) {
		p.trace(Event{
			Source:   sourceID,
			Strategy: StrategyClassifier,
			Reason: fmt.Sprintf("%d of %d signals present, need %d",
				p.signals(firm, subject, amount), 3, p.opts.Threshold),
		})
		return nil
	}

	return &model.OfferRecord{
		SourcePath: sourceID,
		Firm:       firm,
		Subject:    subject,
		Amount:     amount,
		Currency:   currency,
	}
}

// Options returns the policy the parser was compiled with.
func (p *Parser) Options() Options {
	return p.opts
}

// accept rejects short candidates as noise.
func (p *Parser) accept(v string) bool {
	return utf8.RuneCountInString(v) > p.opts.MinFieldLen
}

// trimNoise truncates v at the first stopword that follows whitespace,
// cutting off unrelated adjacent fields bleeding into the same line.
func (p *Parser) trimNoise(v string) string {
	if loc := p.stopRe.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	return strings.TrimSpace(v)
}

// pageLines splits a page into trimmed, non-blank lines.
func pageLines(page string) []string {
	raw := strings.FieldsFunc(page, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// alternation builds a regexp alternation from literal words, longest first
// so that "Teklif Konusu" wins over "Konu". Interior spaces match any run of
// whitespace.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(parts, "|")
}

func compileLabelRe(labels []string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)(?:` + alternation(labels) + `)\s*[:\-]\s*(.*)`)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
