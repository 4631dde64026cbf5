package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/deltagida/offerscan/internal/export"
	"github.com/deltagida/offerscan/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored offers to XLSX or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		offers, err := e.Store.ListOffers(ctx, store.OfferFilter{Limit: -1})
		if err != nil {
			return err
		}

		switch strings.ToLower(filepath.Ext(exportOut)) {
		case ".xlsx":
			summary, err := e.Store.Summarize(ctx)
			if err != nil {
				return err
			}
			if err := export.WriteXLSX(offers, summary, exportOut); err != nil {
				return err
			}
		case ".csv":
			if err := export.WriteCSV(offers, exportOut); err != nil {
				return err
			}
		default:
			return eris.Errorf("unsupported export format %q (use .xlsx or .csv)", filepath.Ext(exportOut))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d offers exported to %s\n", len(offers), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "offers.xlsx", "output file (.xlsx or .csv)")
	rootCmd.AddCommand(exportCmd)
}
