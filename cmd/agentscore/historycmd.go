package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/history"
)

var (
	historyLimit     int
	historyTolerance float64
	historyGuard     float64
)

var historyCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "Show recorded score runs",
	Long: `History lists the score runs recorded in the project's local database,
newest first. With --guard it compares the given score to the previous run
and exits non-zero on a regression.

Examples:
  agentscore history .
  agentscore history --limit=5 .
  agentscore history --guard=82.5 --tolerance=2 .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().Float64Var(&historyGuard, "guard", -1, "Check this score against the last run for regressions")
	historyCmd.Flags().Float64Var(&historyTolerance, "tolerance", 0, "Allowed score drop before --guard fails")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	root := projectRoot(args)

	store, err := history.Open(root, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if historyGuard >= 0 {
		regressed, drop, err := store.CheckRegression(historyGuard, historyTolerance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if regressed {
			fmt.Fprintf(os.Stderr, "Regression: score dropped by %.1f\n", drop)
			os.Exit(1)
		}
		fmt.Println("No regression")
		return
	}

	runs, err := store.Recent(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %-8s  %.1f  (%d penalties, %d files)\n",
			run.Timestamp.Format("2006-01-02 15:04:05"), run.ID[:8], run.Profile, run.Score, run.Penalties, run.Files)
	}
}
