package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/history"
	"agentscore/internal/logging"
	"agentscore/internal/project"
	"agentscore/internal/report"
)

var (
	scoreFormat    string
	scorePrompts   bool
	scoreNoHistory bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [path]",
	Short: "Score a project's agent readiness",
	Long: `Score analyzes every Python file under the given path, builds the module
dependency graph, and prints the agent-readiness scorecard.

Examples:
  agentscore score .
  agentscore score --profile=jules --format=json src/
  agentscore score --prompts --fail-under=80 .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "markdown", "Output format (markdown, json, yaml)")
	scoreCmd.Flags().BoolVar(&scorePrompts, "prompts", false, "Include CRAFT remediation prompts in markdown output")
	scoreCmd.Flags().BoolVar(&scoreNoHistory, "no-history", false, "Skip recording the run in the history database")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) {
	logger := newLogger(scoreFormat)
	root := projectRoot(args)
	cfg := loadConfig(root)

	analysis, err := project.Analyze(context.Background(), root, cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	switch scoreFormat {
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
		fmt.Print(report.Markdown(analysis.Report, cfg, report.Options{IncludePrompts: scorePrompts}))
		printEnvironment(analysis)
	}

	if !scoreNoHistory {
		recordRun(root, analysis, cfg.Profile, logger)
	}

	if analysis.Report.Score < cfg.FailUnder {
		fmt.Fprintf(os.Stderr, "Score %.1f is below fail-under %.1f\n", analysis.Report.Score, cfg.FailUnder)
		os.Exit(1)
	}
}

func printEnvironment(analysis *project.Analysis) {
	fmt.Println("## Environment")
	fmt.Println()
	fmt.Printf("- AGENTS.md: %s\n", presence(analysis.Health.AgentsMD))
	fmt.Printf("- Linter config: %s\n", presence(analysis.Health.LinterConfig))
	fmt.Printf("- Lock file: %s\n", presence(analysis.Health.LockFile))
	fmt.Printf("- Critical context: ~%d tokens", analysis.Tokens.Tokens)
	if analysis.Tokens.Alert {
		fmt.Print(" (exceeds single-window budget)")
	}
	fmt.Println()
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}

func recordRun(root string, analysis *project.Analysis, profile string, logger *logging.Logger) {
	store, err := history.Open(root, nil)
	if err != nil {
		logger.Warn("failed to open history store", map[string]interface{}{"error": err.Error()})
		return
	}
	defer store.Close()

	if _, err := store.Record(analysis.Report, profile); err != nil {
		logger.Warn("failed to record run", map[string]interface{}{"error": err.Error()})
	}
}
