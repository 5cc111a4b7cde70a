package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/project"
	"agentscore/internal/report"
)

var badgeOutput string

var badgeCmd = &cobra.Command{
	Use:   "badge [path]",
	Short: "Generate an SVG score badge",
	Long: `Badge scores the project and writes a shields-style SVG badge.

Examples:
  agentscore badge .
  agentscore badge -o docs/agent-score.svg .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBadge,
}

func init() {
	badgeCmd.Flags().StringVarP(&badgeOutput, "output", "o", "agent-score.svg", "Badge output path")
	rootCmd.AddCommand(badgeCmd)
}

func runBadge(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := projectRoot(args)
	cfg := loadConfig(root)

	analysis, err := project.Analyze(context.Background(), root, cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	svg := report.Badge(analysis.Report.Score)
	if err := os.WriteFile(badgeOutput, []byte(svg), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write badge: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (score %.1f)\n", badgeOutput, analysis.Report.Score)
}
