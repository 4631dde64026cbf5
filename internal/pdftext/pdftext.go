// Package pdftext turns PDF files into per-page text for the extraction
// pipeline. Two providers exist: the pdftotext CLI (best layout fidelity)
// and a pure-Go reader that needs no external binary.
package pdftext

import (
	"context"

	"github.com/rotisserie/eris"
)

// Extractor produces the ordered page texts of one document. Page 0 is the
// first physical page; blank pages come back as empty strings so that page
// indices stay aligned with the document.
type Extractor interface {
	ExtractPages(ctx context.Context, pdfPath string) ([]string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider      string `yaml:"provider" mapstructure:"provider"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// New creates an Extractor based on config.
func New(cfg Config) (Extractor, error) {
	switch cfg.Provider {
	case "pdftotext", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	case "native":
		return NewNativeReader(), nil
	default:
		return nil, eris.Errorf("pdftext: unknown provider %q", cfg.Provider)
	}
}
