package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/deltagida/offerscan/internal/model"
)

// WriteCSV writes offers as a CSV file with the same columns as the XLSX
// offers sheet.
func WriteCSV(offers []model.OfferRecord, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", outputPath)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(offerColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, o := range offers {
		amount := ""
		if o.Amount != nil {
			amount = strconv.FormatFloat(*o.Amount, 'f', 2, 64)
		}
		row := []string{
			o.Firm,
			o.Subject,
			amount,
			o.Currency,
			o.SourcePath,
			o.ExtractedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}
