package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate offer totals per firm and subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		sums, err := e.Store.Summarize(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIRM\tSUBJECT\tTOTAL\tOFFERS")
		for _, s := range sums {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", s.Firm, s.Subject, s.Total, s.Count)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
