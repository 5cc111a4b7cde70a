package project

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// InGitRepo reports whether root is inside a git work tree.
func InGitRepo(ctx context.Context, root string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = root
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// ChangedPythonFiles returns the canonical paths of .py files that differ
// from baseRef, including staged and unstaged changes. baseRef defaults
// to HEAD. Outside a git work tree it returns an empty set so diff-scoped
// runs degrade to "nothing changed" instead of failing.
func ChangedPythonFiles(ctx context.Context, root string, baseRef string) ([]string, error) {
	if baseRef == "" {
		baseRef = "HEAD"
	}
	if !InGitRepo(ctx, root) {
		return nil, nil
	}

	// --relative rebases output against root so paths line up with the
	// canonical paths discovery produces when root is a repo subdirectory.
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", "--relative", "-z", baseRef, "--", "*.py")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff against %s failed: %w", baseRef, err)
	}

	var files []string
	for _, f := range strings.Split(string(out), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}
