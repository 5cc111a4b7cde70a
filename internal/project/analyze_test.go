//go:build cgo

package project

import (
	"context"
	"testing"

	"agentscore/internal/config"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# demo\n")
	writeFile(t, root, "AGENTS.md", "# agent context\n")
	writeFile(t, root, "pkg/__init__.py", "")
	writeFile(t, root, "pkg/a.py", "from .b import thing\n\ndef use(x: int) -> int:\n    return thing(x)\n")
	writeFile(t, root, "pkg/b.py", "from .a import use\n\ndef thing(x: int) -> int:\n    return x + 1\n")

	analysis, err := Analyze(context.Background(), root, config.DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// One a<->b cycle is the only finding.
	if analysis.Report.Score != 95 {
		t.Errorf("expected 95, got %f", analysis.Report.Score)
	}
	if len(analysis.Report.Cycles) != 1 {
		t.Errorf("expected one cycle, got %v", analysis.Report.Cycles)
	}
	if len(analysis.Summaries) != 3 {
		t.Errorf("expected 3 summaries, got %d", len(analysis.Summaries))
	}
	if !analysis.Health.AgentsMD {
		t.Error("expected AGENTS.md to be detected")
	}
}

func TestAnalyzeUnparsableFileStaysIsolated(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# demo\n")
	writeFile(t, root, "AGENTS.md", "# agent context\n")
	writeFile(t, root, "a.py", "import b\ndef broken(:\n")
	writeFile(t, root, "b.py", "import a\n")

	analysis, err := Analyze(context.Background(), root, config.DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// The unparsable file surfaces as a warning, never as graph edges.
	if len(analysis.Report.Cycles) != 0 {
		t.Errorf("expected no cycles, got %v", analysis.Report.Cycles)
	}
	if len(analysis.Graph.Nodes["a"].Imports) != 0 {
		t.Errorf("expected no edges from broken file, got %v", analysis.Graph.Nodes["a"].Imports)
	}
	if len(analysis.Report.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", analysis.Report.Warnings)
	}
	if analysis.Report.Score != 100 {
		t.Errorf("expected 100, got %f", analysis.Report.Score)
	}
}

func TestAnalyzeDiffScope(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# demo\n")
	writeFile(t, root, "AGENTS.md", "# agent context\n")
	writeFile(t, root, "good.py", "def ok(x: int) -> int:\n    return x\n")
	writeFile(t, root, "bad.py", "def nope(x):\n    return x\n")

	analysis, err := Analyze(context.Background(), root, config.DefaultConfig(), []string{"good.py"}, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// bad.py's missing-types penalty is outside the diff scope.
	if analysis.Report.Score != 100 {
		t.Errorf("expected 100, got %f", analysis.Report.Score)
	}
	if len(analysis.Report.Files) != 1 || analysis.Report.Files[0].Path != "good.py" {
		t.Errorf("expected only good.py scored, got %+v", analysis.Report.Files)
	}
}
