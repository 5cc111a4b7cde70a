package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/project"
	"agentscore/internal/report"
)

var (
	diffBase   string
	diffFormat string
)

var diffCmd = &cobra.Command{
	Use:   "diff [path]",
	Short: "Score only the files changed against a git ref",
	Long: `Diff restricts per-file scoring to Python files that differ from the given
git ref. The dependency graph is still built from the whole project, so
cycle and god-module penalties reflect global health even when only one
file changed.

Examples:
  agentscore diff .
  agentscore diff --base=origin/main --format=json .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffBase, "base", "HEAD", "Git ref to diff against")
	diffCmd.Flags().StringVar(&diffFormat, "format", "markdown", "Output format (markdown, json, yaml)")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) {
	logger := newLogger(diffFormat)
	root := projectRoot(args)
	cfg := loadConfig(root)
	ctx := context.Background()

	changed, err := project.ChangedPythonFiles(ctx, root, diffBase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if changed == nil {
		changed = []string{}
	}

	analysis, err := project.Analyze(ctx, root, cfg, changed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	switch diffFormat {
	case "json":
		data, err := report.EncodeJSON(analysis.Report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	case "yaml":
		data, err := report.EncodeYAML(analysis.Report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	default:
		fmt.Printf("Changed files: %d\n\n", len(changed))
		fmt.Print(report.Markdown(analysis.Report, cfg, report.Options{}))
	}

	if analysis.Report.Score < cfg.FailUnder {
		fmt.Fprintf(os.Stderr, "Score %.1f is below fail-under %.1f\n", analysis.Report.Score, cfg.FailUnder)
		os.Exit(1)
	}
}
