package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"agentscore/internal/config"
	"agentscore/internal/logging"
)

var (
	// profileFlag is the CLI --profile flag value
	profileFlag string

	// failUnderFlag overrides the configured fail-under score when >= 0
	failUnderFlag float64

	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "agentscore",
	Short: "agentscore - agent readiness analyzer for Python projects",
	Long: `agentscore statically analyzes a Python source tree and scores how easily
an autonomous coding agent can reason about and safely modify it: per-function
cognitive load, type-annotation coverage, module dependency cycles, fan-in
pressure, and the presence of agent context files.`,
	Version: version,
}

const version = "0.3.0"

func init() {
	rootCmd.SetVersionTemplate("agentscore version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "",
		"Agent profile: generic, jules, or copilot (default: from config)")
	rootCmd.PersistentFlags().Float64Var(&failUnderFlag, "fail-under", -1,
		"Exit non-zero when the score falls below this value (default: from config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn",
		"Log level: debug, info, warn, error")
}

// projectRoot resolves the positional path argument, defaulting to the
// working directory.
func projectRoot(args []string) string {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}

// loadConfig resolves configuration for a root and applies CLI overrides.
// Flags beat config files which beat profile defaults.
func loadConfig(root string) *config.Config {
	cfg := config.Load(root, profileFlag)
	if failUnderFlag >= 0 {
		cfg.FailUnder = failUnderFlag
	}
	return cfg
}

func newLogger(format string) *logging.Logger {
	if format != "json" {
		format = "human"
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(format),
		Level:  logging.LogLevel(logLevelFlag),
		Output: os.Stderr,
	})
}
