package remedy

import (
	"context"
	"fmt"
	"os"
	"strings"

	"agentscore/internal/config"
	"agentscore/internal/logging"
	"agentscore/internal/metrics"
	"agentscore/internal/paths"
)

// LLM generates corrected source from a remediation prompt. The default
// implementation is a no-op echo; real integrations plug in here.
type LLM interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// EchoLLM returns the source unchanged. It keeps the fix pipeline wired
// end to end without any network dependency.
type EchoLLM struct{}

func (EchoLLM) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	if i := strings.LastIndex(userPrompt, "Source Code:\n"); i >= 0 {
		return userPrompt[i+len("Source Code:\n"):], nil
	}
	return "", nil
}

const fixPersona = "You are an Elite DevOps Engineer specializing in Python code quality."
const fixFrame = "Maintain strictly the same functionality. Do not add new features. Do not explain your reasoning; just output code."

var fixActions = []string{
	"Read the source code provided.",
	"Identify the specific violation (high cognitive load or missing types).",
	"Apply the fix strictly to the violations.",
	"Verify that the code is syntactically correct.",
}

// Fixer rewrites files that violate cognitive-load or typing thresholds.
type Fixer struct {
	llm LLM
	log *logging.Logger
}

// NewFixer creates a fixer. A nil llm falls back to EchoLLM and a nil
// logger discards output.
func NewFixer(llm LLM, log *logging.Logger) *Fixer {
	if llm == nil {
		llm = EchoLLM{}
	}
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Fixer{llm: llm, log: log}
}

// FixFile rewrites one file when its summary shows a function past the red
// cognitive-load threshold or without annotations. Returns true when the
// file was changed on disk.
func (f *Fixer) FixFile(ctx context.Context, root string, summary *metrics.FileSummary, t config.Thresholds) (bool, error) {
	violated := false
	for _, fn := range summary.Functions {
		if fn.ACL() >= t.ACLRed || !fn.IsTyped() {
			violated = true
			break
		}
	}
	if !violated {
		return false, nil
	}

	path := paths.JoinProject(root, summary.Path)
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", summary.Path, err)
	}

	var user strings.Builder
	user.WriteString("Action Steps:\n")
	for _, step := range fixActions {
		user.WriteString("- " + step + "\n")
	}
	user.WriteString("\nSource Code:\n")
	user.Write(content)

	fixed, err := f.llm.Generate(ctx, fixPersona+"\n\n"+fixFrame, user.String())
	if err != nil {
		return false, fmt.Errorf("llm generation failed for %s: %w", summary.Path, err)
	}

	if fixed == "" || strings.TrimSpace(fixed) == strings.TrimSpace(string(content)) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", summary.Path, err)
	}
	f.log.Info("applied fixes", map[string]interface{}{"file": summary.Path})
	return true, nil
}
