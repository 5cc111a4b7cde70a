package project

import (
	"context"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{"-c", "user.email=test@example.com", "-c", "user.name=test"}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func TestChangedPythonFilesInSubdirectory(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	repo := t.TempDir()
	writeFile(t, repo, "svc/mod.py", "x = 1\n")
	writeFile(t, repo, "svc/other.py", "y = 1\n")
	writeFile(t, repo, "top.py", "z = 1\n")
	runGit(t, repo, "init", "-q")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-q", "-m", "initial")

	writeFile(t, repo, "svc/mod.py", "x = 2\n")
	writeFile(t, repo, "top.py", "z = 2\n")

	// Scoring svc/ must yield paths relative to svc/, and changes outside
	// the scored root must not leak in.
	changed, err := ChangedPythonFiles(context.Background(), filepath.Join(repo, "svc"), "HEAD")
	if err != nil {
		t.Fatalf("ChangedPythonFiles failed: %v", err)
	}
	if !reflect.DeepEqual(changed, []string{"mod.py"}) {
		t.Errorf("got %v, want [mod.py]", changed)
	}
}
