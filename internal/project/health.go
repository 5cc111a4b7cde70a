package project

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvHealth reports whether the project ships the files an agent relies on
// to orient itself and reproduce the environment.
type EnvHealth struct {
	AgentsMD     bool `json:"agentsMd"`
	LinterConfig bool `json:"linterConfig"`
	LockFile     bool `json:"lockFile"`
}

var (
	linterConfigs = []string{"ruff.toml", ".flake8", ".eslintrc"}
	lockFiles     = []string{"package-lock.json", "poetry.lock", "uv.lock"}
)

// CheckEnvironment inspects the project root for an agent instructions
// file, a linter configuration, and a dependency lock file. The AGENTS.md
// check is case-insensitive; a pyproject.toml with a [tool.ruff] table
// counts as linter config.
func CheckEnvironment(root string) EnvHealth {
	var health EnvHealth

	entries, err := os.ReadDir(root)
	if err != nil {
		return health
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
		if strings.EqualFold(e.Name(), "AGENTS.md") {
			health.AgentsMD = true
		}
	}

	for _, f := range linterConfigs {
		if names[f] {
			health.LinterConfig = true
		}
	}
	if !health.LinterConfig && names["pyproject.toml"] {
		if data, err := os.ReadFile(filepath.Join(root, "pyproject.toml")); err == nil {
			if strings.Contains(string(data), "[tool.ruff]") {
				health.LinterConfig = true
			}
		}
	}

	for _, f := range lockFiles {
		if names[f] {
			health.LockFile = true
		}
	}

	return health
}

// MissingContextFiles returns the required context files absent from the
// project root, in the order they were required. Matching is
// case-insensitive.
func MissingContextFiles(root string, required []string) []string {
	entries, err := os.ReadDir(root)
	present := make(map[string]bool)
	if err == nil {
		for _, e := range entries {
			present[strings.ToLower(e.Name())] = true
		}
	}

	var missing []string
	for _, name := range required {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
