package pdftext

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

// NativeReader extracts page text in-process via github.com/ledongthuc/pdf.
// Layout fidelity is lower than pdftotext, but label-anchored extraction only
// needs lines, which GetTextByRow preserves well enough.
type NativeReader struct{}

// NewNativeReader creates the pure-Go extractor.
func NewNativeReader() *NativeReader {
	return &NativeReader{}
}

// ExtractPages reads every page of the document. Pages that cannot be
// decoded come back empty rather than failing the document.
func (r *NativeReader) ExtractPages(ctx context.Context, pdfPath string) ([]string, error) {
	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, eris.Wrapf(err, "pdftext: open %s", pdfPath)
	}
	defer f.Close()

	n := reader.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "pdftext: cancelled")
		}
		pages = append(pages, pageText(reader.Page(i)))
	}
	return pages, nil
}

func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for wi, word := range row.Content {
			if wi > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
