package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deltagida/offerscan/internal/store"
)

var (
	listFirm     string
	listCurrency string
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		offers, err := e.Store.ListOffers(ctx, store.OfferFilter{
			Firm:     listFirm,
			Currency: listCurrency,
			Limit:    listLimit,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIRM\tSUBJECT\tAMOUNT\tCURRENCY\tSOURCE")
		for _, o := range offers {
			amount := ""
			if o.Amount != nil {
				amount = fmt.Sprintf("%.2f", *o.Amount)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Firm, o.Subject, amount, o.Currency, o.SourcePath)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listFirm, "firm", "", "filter by firm")
	listCmd.Flags().StringVar(&listCurrency, "currency", "", "filter by currency")
	listCmd.Flags().IntVar(&listLimit, "limit", 100, "max offers to list")
	rootCmd.AddCommand(listCmd)
}
