package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentscore/internal/prompts"
)

var checkPromptsMinScore int

var checkPromptsCmd = &cobra.Command{
	Use:   "check-prompts <file>...",
	Short: "Lint prompt files against LLM prompting heuristics",
	Long: `Check-prompts scores each prompt file on role definition, chain-of-thought
scaffolding, delimiter hygiene, and few-shot examples, and flags negatively
phrased constraints.

Examples:
  agentscore check-prompts prompts/review.md
  agentscore check-prompts --min-score=75 prompts/*.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheckPrompts,
}

func init() {
	checkPromptsCmd.Flags().IntVar(&checkPromptsMinScore, "min-score", 50, "Exit non-zero when any prompt scores below this")
	rootCmd.AddCommand(checkPromptsCmd)
}

func runCheckPrompts(cmd *cobra.Command, args []string) {
	failed := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", path, err)
			failed = true
			continue
		}

		result := prompts.Analyze(string(data))
		fmt.Printf("%s: %d/100\n", path, result.Score)
		for _, imp := range result.Improvements {
			fmt.Printf("  - %s\n", imp)
		}

		if result.Score < checkPromptsMinScore {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
