package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"agentscore/internal/project"
	"agentscore/internal/remedy"
	"agentscore/internal/report"
)

var reportOutputDir string

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Write SCORECARD.md and RECOMMENDATIONS.md",
	Long: `Report runs the full analysis and writes a Markdown scorecard with CRAFT
remediation prompts plus a recommendations table.

Examples:
  agentscore report .
  agentscore report --out=docs .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOutputDir, "out", ".", "Directory to write report files into")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := projectRoot(args)
	cfg := loadConfig(root)

	analysis, err := project.Analyze(context.Background(), root, cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	missing := project.MissingContextFiles(root, cfg.Thresholds.RequiredContextFiles)

	scorecard := report.Markdown(analysis.Report, cfg, report.Options{IncludePrompts: true})
	recommendations := remedy.Recommendations(analysis.Report, missing)

	if err := os.MkdirAll(reportOutputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputs := map[string]string{
		"SCORECARD.md":       scorecard,
		"RECOMMENDATIONS.md": recommendations,
	}
	for name, content := range outputs {
		path := filepath.Join(reportOutputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}
