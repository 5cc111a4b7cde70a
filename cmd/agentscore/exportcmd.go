package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/project"
	"agentscore/internal/report"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the full report as a compressed archive",
	Long: `Export runs the full analysis and writes the JSON report zstd-compressed,
suitable for CI artifact storage and later comparison.

Examples:
  agentscore export .
  agentscore export -o artifacts/score.json.zst .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "agentscore.json.zst", "Archive output path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := projectRoot(args)
	cfg := loadConfig(root)

	analysis, err := project.Analyze(context.Background(), root, cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	if err := report.WriteArchive(exportOutput, analysis.Report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (score %.1f)\n", exportOutput, analysis.Report.Score)
}
