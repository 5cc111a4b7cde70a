package remedy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const agentContextTemplate = `# Agent Context: %s

## Project Goal
[Brief description of what this project does]

## Architecture
- **Entry Point:** [Main file]
- **Key Modules:**
    - ` + "`module_a`" + `: Handles X
    - ` + "`module_b`" + `: Handles Y

## Developer Constraints
- Use Python 3.10+
- All functions must have docstrings
- Type hints are strict
`

const instructionsTemplate = `# Instructions

1. **Install Dependencies:** ` + "`pip install -r requirements.txt`" + `
2. **Run Tests:** ` + "`pytest`" + `
3. **Lint:** ` + "`pylint src/`" + `
`

// EnsureProjectDocs creates each required context file that is missing
// from the project root, seeding it with a starter template. Existing
// files are never touched. Returns the names it created.
func EnsureProjectDocs(root string, required []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read project root: %w", err)
	}
	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		existing[strings.ToLower(e.Name())] = true
	}

	var created []string
	for _, name := range required {
		if existing[strings.ToLower(name)] {
			continue
		}

		var content string
		switch strings.ToLower(name) {
		case "agents.md":
			content = fmt.Sprintf(agentContextTemplate, filepath.Base(root))
		case "instructions.md":
			content = instructionsTemplate
		case "readme.md":
			content = "# Project\n\nAuto-generated README.\n"
		default:
			continue
		}

		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("failed to create %s: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}
