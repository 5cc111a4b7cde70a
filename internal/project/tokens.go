package project

import (
	"os"
	"path/filepath"

	"agentscore/internal/paths"
)

// TokenAlertLimit is the critical-context size beyond which an agent can
// no longer hold the project orientation material in one window.
const TokenAlertLimit = 32000

// TokenEstimate approximates how many tokens the critical context
// occupies: README.md and AGENTS.md plus all Python source in scope.
type TokenEstimate struct {
	Tokens int  `json:"tokens"`
	Alert  bool `json:"alert"`
}

// EstimateContextTokens sums the byte sizes of the orientation files and
// the given Python files and divides by four, the usual bytes-per-token
// rule of thumb for English and code.
func EstimateContextTokens(root string, pyFiles []string) TokenEstimate {
	var total int64

	for _, name := range []string{"README.md", "AGENTS.md"} {
		if info, err := os.Stat(filepath.Join(root, name)); err == nil && !info.IsDir() {
			total += info.Size()
		}
	}
	for _, f := range pyFiles {
		if info, err := os.Stat(paths.JoinProject(root, f)); err == nil {
			total += info.Size()
		}
	}

	tokens := int(total / 4)
	return TokenEstimate{
		Tokens: tokens,
		Alert:  tokens > TokenAlertLimit,
	}
}
