package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/deltagida/offerscan/internal/model"
	"github.com/deltagida/offerscan/internal/scan"
)

var (
	scanDepth       int
	scanConcurrency int
)

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Scan PDF files or folders for offers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		paths, err := collectPaths(args, scanDepth)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return eris.New("no PDF files found")
		}

		runner := newRunner(e)
		if scanConcurrency > 0 {
			runner.Concurrency = scanConcurrency
		}

		report, err := runner.Run(ctx, paths)
		if report != nil {
			printReport(cmd, report)
		}
		return err
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanDepth, "depth", 0, "max folder depth to descend (default from config)")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "documents processed in parallel (default from config)")
	rootCmd.AddCommand(scanCmd)
}

// collectPaths expands folder arguments into the PDF files they contain;
// file arguments pass through as-is.
func collectPaths(args []string, depth int) ([]string, error) {
	if depth <= 0 {
		depth = cfg.Scan.MaxDepth
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, eris.Wrapf(err, "stat %s", arg)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := scan.WalkPDFs(arg, depth)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

func printReport(cmd *cobra.Command, report *model.ScanReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d processed, %d skipped, %d errored\n",
		report.Processed, report.Skipped, report.Errored)
	for _, de := range report.Errors {
		fmt.Fprintf(out, "  %s: %s\n", de.Path, firstLine(de.Message))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
