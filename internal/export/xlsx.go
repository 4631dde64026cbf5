// Package export writes stored offers to spreadsheet files.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/deltagida/offerscan/internal/model"
)

var offerColumns = []string{"Firm", "Subject", "Amount", "Currency", "Source", "Extracted At"}

var summaryColumns = []string{"Firm", "Subject", "Total", "Offers"}

// WriteXLSX writes an offers sheet and a summary sheet to outputPath.
func WriteXLSX(offers []model.OfferRecord, summary []model.OfferSummary, outputPath string) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet("Offers")
	if err != nil {
		return eris.Wrap(err, "export: add offers sheet")
	}
	header := sheet.AddRow()
	for _, col := range offerColumns {
		header.AddCell().SetString(col)
	}
	for _, o := range offers {
		row := sheet.AddRow()
		row.AddCell().SetString(o.Firm)
		row.AddCell().SetString(o.Subject)
		if o.Amount != nil {
			row.AddCell().SetFloatWithFormat(*o.Amount, "#,##0.00")
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(o.Currency)
		row.AddCell().SetString(o.SourcePath)
		row.AddCell().SetString(o.ExtractedAt.Format("2006-01-02 15:04:05"))
	}

	sumSheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}
	sumHeader := sumSheet.AddRow()
	for _, col := range summaryColumns {
		sumHeader.AddCell().SetString(col)
	}
	for _, s := range summary {
		row := sumSheet.AddRow()
		row.AddCell().SetString(s.Firm)
		row.AddCell().SetString(s.Subject)
		row.AddCell().SetFloatWithFormat(s.Total, "#,##0.00")
		row.AddCell().SetInt(s.Count)
	}

	if err := f.Save(outputPath); err != nil {
		return eris.Wrapf(err, "export: save %s", outputPath)
	}
	return nil
}
