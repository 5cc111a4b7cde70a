package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/project"
	"agentscore/internal/remedy"
)

var fixDocsOnly bool

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Create missing context docs and remediate flagged files",
	Long: `Fix creates the profile's required context files from starter templates,
then runs the remediation hook over files with red cognitive load or
missing type annotations.

Examples:
  agentscore fix .
  agentscore fix --docs-only --profile=jules .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixDocsOnly, "docs-only", false, "Only create missing context docs, never rewrite source")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := projectRoot(args)
	cfg := loadConfig(root)
	ctx := context.Background()

	created, err := remedy.EnsureProjectDocs(root, cfg.Thresholds.RequiredContextFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, name := range created {
		fmt.Printf("Created %s\n", name)
	}

	if fixDocsOnly {
		return
	}

	analysis, err := project.Analyze(ctx, root, cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	fixer := remedy.NewFixer(nil, logger)
	fixedCount := 0
	for _, summary := range analysis.Summaries {
		fixed, err := fixer.FixFile(ctx, root, summary, cfg.Thresholds)
		if err != nil {
			logger.Warn("fix failed", map[string]interface{}{
				"file":  summary.Path,
				"error": err.Error(),
			})
			continue
		}
		if fixed {
			fixedCount++
		}
	}
	fmt.Printf("Fixed %d file(s)\n", fixedCount)
}
