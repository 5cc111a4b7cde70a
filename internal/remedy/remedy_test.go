package remedy

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agentscore/internal/config"
	"agentscore/internal/metrics"
	"agentscore/internal/scoring"
)

func TestCRAFTFormat(t *testing.T) {
	prompt := CRAFT{
		Context:  "ctx",
		Request:  "req",
		Actions:  []string{"one", "two"},
		Frame:    "frame",
		Template: "tmpl",
	}.Format()

	for _, want := range []string{
		"> **Context**: ctx",
		"> **Request**: req",
		"> - one",
		"> - two",
		"> **Frame**: frame",
		"> **Template**: tmpl",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("formatted prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestPromptsSectionCoversFindings(t *testing.T) {
	report := &scoring.ScoreReport{
		GodModules: []string{"core"},
		Files: []scoring.FileScore{{
			Path:  "app.py",
			Score: 65,
			Penalties: []scoring.PenaltyRecord{
				{Category: scoring.CategoryCognitiveLoad, Target: "app.churn", Points: -15},
				{Category: scoring.CategoryMissingTypes, Target: "app.py", Points: -20},
			},
		}},
	}

	section := PromptsSection(report, config.DefaultConfig().Thresholds)

	for _, want := range []string{
		"God Module `core`",
		"`app.py` - High Cognitive Load",
		"`app.churn`",
		"`app.py` - Low Type Safety",
	} {
		if !strings.Contains(section, want) {
			t.Errorf("section missing %q", want)
		}
	}
}

func TestRecommendationsCleanProject(t *testing.T) {
	got := Recommendations(&scoring.ScoreReport{Score: 100}, nil)
	if !strings.Contains(got, "Agent-Ready") {
		t.Errorf("expected clean project message, got:\n%s", got)
	}
}

func TestRecommendationsTable(t *testing.T) {
	report := &scoring.ScoreReport{
		Cycles: [][]string{{"a", "b"}},
		TopOffenders: []scoring.Offender{
			{Name: "m.f", File: "m.py", Complexity: 25, ACL: 30},
		},
	}

	got := Recommendations(report, []string{"AGENTS.md"})
	for _, want := range []string{
		"High Complexity: m.py",
		"Circular Dependency: a -> b",
		"Missing AGENTS.md",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("recommendations missing %q:\n%s", want, got)
		}
	}
}

func TestEnsureProjectDocs(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	created, err := EnsureProjectDocs(root, []string{"AGENTS.md", "INSTRUCTIONS.md", "README.md"})
	if err != nil {
		t.Fatalf("EnsureProjectDocs failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 created files, got %v", created)
	}

	data, err := os.ReadFile(filepath.Join(root, "AGENTS.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# Agent Context:") {
		t.Error("AGENTS.md missing template header")
	}

	// Existing README is left alone.
	data, _ = os.ReadFile(filepath.Join(root, "README.md"))
	if string(data) != "existing" {
		t.Error("existing README.md was overwritten")
	}
}

func TestFixFileSkipsCleanFile(t *testing.T) {
	root := t.TempDir()
	summary := &metrics.FileSummary{
		Path: "clean.py",
		Functions: []metrics.FunctionRecord{
			{Name: "clean.f", Complexity: 1, LogicalLines: 2, TypeCoverage: 1},
		},
	}

	fixed, err := NewFixer(nil, nil).FixFile(context.Background(), root, summary, config.DefaultConfig().Thresholds)
	if err != nil {
		t.Fatalf("FixFile failed: %v", err)
	}
	if fixed {
		t.Error("expected clean file to be skipped")
	}
}

type rewriteLLM struct{ output string }

func (l rewriteLLM) Generate(ctx context.Context, system string, user string) (string, error) {
	return l.output, nil
}

func TestFixFileRewritesViolations(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "hot.py"), []byte("def f():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary := &metrics.FileSummary{
		Path: "hot.py",
		Functions: []metrics.FunctionRecord{
			{Name: "hot.f", Complexity: 20, LogicalLines: 100, TypeCoverage: 0},
		},
	}

	fixer := NewFixer(rewriteLLM{output: "def f() -> None:\n    pass\n"}, nil)
	fixed, err := fixer.FixFile(context.Background(), root, summary, config.DefaultConfig().Thresholds)
	if err != nil {
		t.Fatalf("FixFile failed: %v", err)
	}
	if !fixed {
		t.Fatal("expected file to be rewritten")
	}

	data, _ := os.ReadFile(filepath.Join(root, "hot.py"))
	if !strings.Contains(string(data), "-> None") {
		t.Errorf("unexpected content: %s", data)
	}
}
