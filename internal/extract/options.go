// Package extract implements the heuristic field-extraction pipeline for
// commercial offer documents. The pipeline is pure: it consumes per-page
// text and produces a typed record (or nothing), performing no I/O.
package extract

// Abbrev maps a case-insensitive legal-entity abbreviation back to its
// canonical casing after title-casing has run over a firm name.
type Abbrev struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Options holds every policy knob of the extraction pipeline. All word lists
// are bilingual (Turkish/English). Zero values are not usable; start from
// DefaultOptions and override.
type Options struct {
	// Label tokens recognized before a ':' or '-' delimiter.
	FirmLabels    []string
	SubjectLabels []string
	AmountLabels  []string

	// StopWords mark the start of an unrelated field bleeding into the same
	// line; extracted values are truncated at the first occurrence.
	StopWords []string

	// GreetingWords introduce a salutation line ("Sayın X", "Dear X") used as
	// the last-resort firm source. Candidates containing an honorific noise
	// word are rejected.
	GreetingWords  []string
	HonorificNoise []string

	// LegalSuffixes drive the header-block firm fallback: a leading line
	// ending in one of these is taken as the firm name.
	LegalSuffixes []string

	// CurrencyTokens are the raw tokens the amount patterns accept;
	// CurrencyAliases canonicalizes them (anything absent passes through
	// upper-cased).
	CurrencyTokens  []string
	CurrencyAliases map[string]string

	// LegalAbbrevs restore abbreviation casing after title-casing.
	LegalAbbrevs []Abbrev

	// Scan windows, in non-blank lines from the top of a page.
	FirmWindow         int
	SubjectWindow      int
	FirmHeaderBlock    int
	SubjectHeaderBlock int

	// MaxPages bounds how many leading pages the firm/subject extractors
	// inspect, to tolerate cover pages. Amount extraction always scans all
	// pages.
	MaxPages int

	// Threshold is the minimum number of present signals (firm, subject,
	// amount) for a document to classify as an offer. 2 is the strict
	// default; 1 reproduces the legacy lenient behavior.
	Threshold int

	// MinFieldLen rejects extracted candidates at or below this rune count.
	MinFieldLen int

	// MaxSubjectLen truncates the subject, in runes.
	MaxSubjectLen int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		FirmLabels: []string{
			"Firma Adı", "Firma", "Şirket", "Müşteri", "Kurum", "Kuruluş",
			"Company Name", "Company", "Client", "Customer", "Organization",
		},
		SubjectLabels: []string{
			"Teklif Konusu", "Konu", "İlgi",
			"Subject", "Regarding", "Project", "Ref", "RE", "Re",
		},
		AmountLabels: []string{
			"Toplam Tutar", "Teklif Tutarı", "Genel Toplam", "Tutar",
			"Total Price", "Total Amount", "Total Quote", "Grand Total",
			"Total", "Sum", "Amount",
		},
		StopWords: []string{
			"Referans", "Teklif No", "Tarih", "Sayfa",
			"Your", "Offer", "Page", "History", "Topic", "Reference",
		},
		GreetingWords:  []string{"Sayın", "Dear"},
		HonorificNoise: []string{"hanım", "bey"},
		LegalSuffixes: []string{
			"A.Ş.", "A.Ş", "Ltd. Şti.", "Ltd. Şti", "Ltd.", "Ltd",
			"Şti.", "Şti", "Inc.", "Inc", "GmbH", "S.A.", "A.G.",
		},
		CurrencyTokens: []string{"EURO", "EUR", "€", "TRY", "TL", "₺", "USD", "$"},
		CurrencyAliases: map[string]string{
			"€": "EUR", "euro": "EUR", "eur": "EUR",
			"₺": "TL", "tl": "TL", "try": "TL",
			"$": "USD", "usd": "USD",
		},
		LegalAbbrevs: []Abbrev{
			{From: "ltd. şti.", To: "Ltd. Şti."},
			{From: "ltd. şti", To: "Ltd. Şti."},
			{From: "a.ş.", To: "A.Ş."},
			{From: "a.ş", To: "A.Ş"},
			{From: "ltd.", To: "Ltd."},
			{From: "ltd", To: "Ltd."},
			{From: "şti.", To: "Şti."},
			{From: "şti", To: "Şti."},
			{From: "inc.", To: "Inc."},
			{From: "inc", To: "Inc."},
			{From: "gmbh", To: "GmbH"},
		},
		FirmWindow:         20,
		SubjectWindow:      25,
		FirmHeaderBlock:    12,
		SubjectHeaderBlock: 18,
		MaxPages:           3,
		Threshold:          2,
		MinFieldLen:        2,
		MaxSubjectLen:      200,
	}
}
