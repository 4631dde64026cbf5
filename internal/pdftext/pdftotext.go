package pdftext

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rotisserie/eris"
)

// PdfToText extracts page text using the pdftotext CLI tool, one invocation
// per page so that page boundaries survive. The page count comes from pdfcpu
// without shelling out.
type PdfToText struct {
	binPath string
}

// NewPdfToText creates a PdfToText extractor. If binPath is empty,
// "pdftotext" is used.
func NewPdfToText(binPath string) *PdfToText {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PdfToText{binPath: binPath}
}

// ExtractPages runs pdftotext -layout over each page of the document.
func (p *PdfToText) ExtractPages(ctx context.Context, pdfPath string) ([]string, error) {
	count, err := api.PageCountFile(pdfPath)
	if err != nil {
		return nil, eris.Wrapf(err, "pdftext: page count for %s", pdfPath)
	}

	pages := make([]string, 0, count)
	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "pdftext: cancelled")
		}
		text, err := p.extractPage(ctx, pdfPath, n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (p *PdfToText) extractPage(ctx context.Context, pdfPath string, page int) (string, error) {
	n := strconv.Itoa(page)
	cmd := exec.CommandContext(ctx, p.binPath, "-f", n, "-l", n, "-layout", pdfPath, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "pdftext: pdftotext failed for %s page %d: %s", pdfPath, page, stderr.String())
	}
	return stdout.String(), nil
}
