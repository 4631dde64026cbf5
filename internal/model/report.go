package model

// DocError records a single document that could not be processed.
type DocError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ScanReport holds the outcome of one batch scan. The three counts are
// independent: a document is processed (stored), skipped (classifier said
// not an offer), or errored (text extraction or storage failed).
type ScanReport struct {
	Processed int        `json:"processed"`
	Skipped   int        `json:"skipped"`
	Errored   int        `json:"errored"`
	Errors    []DocError `json:"errors,omitempty"`
}

// Total returns the number of documents the scan attempted.
func (r *ScanReport) Total() int {
	return r.Processed + r.Skipped + r.Errored
}
