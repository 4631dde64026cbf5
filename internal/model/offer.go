// Package model defines the shared data types for offer extraction.
package model

import "time"

// OfferRecord is one parsed offer document. The extraction pipeline fills
// everything except ID and ExtractedAt, which the store assigns on upsert.
// Amount and Currency are only ever set from the same pattern match: an
// amount may carry an empty currency (legacy amount-only pattern), but a
// currency is never recorded without an amount.
type OfferRecord struct {
	ID          string    `json:"id,omitempty"`
	SourcePath  string    `json:"source_path"`
	Firm        string    `json:"firm"`
	Subject     string    `json:"subject"`
	Amount      *float64  `json:"amount,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
}

// HasAmount reports whether a monetary amount was extracted.
func (r *OfferRecord) HasAmount() bool {
	return r.Amount != nil
}

// OfferSummary is one firm/subject aggregation row.
type OfferSummary struct {
	Firm    string  `json:"firm"`
	Subject string  `json:"subject"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}
