package extract

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Dictionary is an optional YAML override for the extraction word lists.
// Only non-empty fields replace the corresponding Options entries, so a
// dictionary file can adjust one list without restating the others.
type Dictionary struct {
	FirmLabels      []string          `yaml:"firm_labels"`
	SubjectLabels   []string          `yaml:"subject_labels"`
	AmountLabels    []string          `yaml:"amount_labels"`
	StopWords       []string          `yaml:"stop_words"`
	GreetingWords   []string          `yaml:"greeting_words"`
	HonorificNoise  []string          `yaml:"honorific_noise"`
	LegalSuffixes   []string          `yaml:"legal_suffixes"`
	CurrencyTokens  []string          `yaml:"currency_tokens"`
	CurrencyAliases map[string]string `yaml:"currency_aliases"`
	LegalAbbrevs    []Abbrev          `yaml:"legal_abbreviations"`
}

// LoadDictionary reads a dictionary override from a YAML file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: read dictionary %s", path)
	}
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, eris.Wrapf(err, "extract: parse dictionary %s", path)
	}
	return &d, nil
}

// WithDictionary returns a copy of o with non-empty dictionary fields applied.
func (o Options) WithDictionary(d *Dictionary) Options {
	if d == nil {
		return o
	}
	if len(d.FirmLabels) > 0 {
		o.FirmLabels = d.FirmLabels
	}
	if len(d.SubjectLabels) > 0 {
		o.SubjectLabels = d.SubjectLabels
	}
	if len(d.AmountLabels) > 0 {
		o.AmountLabels = d.AmountLabels
	}
	if len(d.StopWords) > 0 {
		o.StopWords = d.StopWords
	}
	if len(d.GreetingWords) > 0 {
		o.GreetingWords = d.GreetingWords
	}
	if len(d.HonorificNoise) > 0 {
		o.HonorificNoise = d.HonorificNoise
	}
	if len(d.LegalSuffixes) > 0 {
		o.LegalSuffixes = d.LegalSuffixes
	}
	if len(d.CurrencyTokens) > 0 {
		o.CurrencyTokens = d.CurrencyTokens
	}
	if len(d.CurrencyAliases) > 0 {
		o.CurrencyAliases = d.CurrencyAliases
	}
	if len(d.LegalAbbrevs) > 0 {
		o.LegalAbbrevs = d.LegalAbbrevs
	}
	return o
}
