package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Profile != ProfileGeneric {
		t.Errorf("Profile = %q, want %q", cfg.Profile, ProfileGeneric)
	}
	if cfg.Thresholds.ACLYellow != 10 {
		t.Errorf("ACLYellow = %v, want 10", cfg.Thresholds.ACLYellow)
	}
	if cfg.Thresholds.ACLRed != 15 {
		t.Errorf("ACLRed = %v, want 15", cfg.Thresholds.ACLRed)
	}
	if cfg.Thresholds.TypeSafetyMinimum != 0.90 {
		t.Errorf("TypeSafetyMinimum = %v, want 0.90", cfg.Thresholds.TypeSafetyMinimum)
	}
	if cfg.Thresholds.BloatLineLimit != 200 {
		t.Errorf("BloatLineLimit = %v, want 200", cfg.Thresholds.BloatLineLimit)
	}
	if cfg.Thresholds.GodModuleInboundLimit != 50 {
		t.Errorf("GodModuleInboundLimit = %v, want 50", cfg.Thresholds.GodModuleInboundLimit)
	}
	if cfg.Invalid {
		t.Error("default config should not be invalid")
	}
}

func TestProfileConfig(t *testing.T) {
	tests := []struct {
		name      string
		bloat     int
		typeMin   float64
		required  int
	}{
		{ProfileGeneric, 200, 0.90, 2},
		{ProfileJules, 150, 0.80, 2},
		{ProfileCopilot, 100, 0.50, 0},
	}

	for _, tt := range tests {
		cfg := ProfileConfig(tt.name)
		if cfg.Profile != tt.name {
			t.Errorf("%s: Profile = %q", tt.name, cfg.Profile)
		}
		if cfg.Thresholds.BloatLineLimit != tt.bloat {
			t.Errorf("%s: BloatLineLimit = %d, want %d", tt.name, cfg.Thresholds.BloatLineLimit, tt.bloat)
		}
		if cfg.Thresholds.TypeSafetyMinimum != tt.typeMin {
			t.Errorf("%s: TypeSafetyMinimum = %v, want %v", tt.name, cfg.Thresholds.TypeSafetyMinimum, tt.typeMin)
		}
		if len(cfg.Thresholds.RequiredContextFiles) != tt.required {
			t.Errorf("%s: RequiredContextFiles = %v", tt.name, cfg.Thresholds.RequiredContextFiles)
		}
	}
}

func TestProfileConfig_UnknownFallsBack(t *testing.T) {
	cfg := ProfileConfig("nonsense")
	if cfg.Profile != ProfileGeneric {
		t.Errorf("unknown profile should fall back to generic, got %q", cfg.Profile)
	}
}

func TestLoad_MissingFilesUsesDefaults(t *testing.T) {
	cfg := Load(t.TempDir(), "")

	if cfg.Invalid {
		t.Error("missing config files should not mark config invalid")
	}
	if cfg.Thresholds.ACLRed != 15 {
		t.Errorf("ACLRed = %v, want 15", cfg.Thresholds.ACLRed)
	}
}

func TestLoad_Pyproject(t *testing.T) {
	dir := t.TempDir()
	content := `
[tool.agent-scorecard]
profile = "jules"

[tool.agent-scorecard.thresholds]
acl_red = 20.0
bloat_line_limit = 300
`
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}

	cfg := Load(dir, "")

	if cfg.Invalid {
		t.Fatalf("config unexpectedly invalid: %s", cfg.InvalidReason)
	}
	if cfg.Profile != ProfileJules {
		t.Errorf("Profile = %q, want jules", cfg.Profile)
	}
	if cfg.Thresholds.ACLRed != 20 {
		t.Errorf("ACLRed = %v, want 20", cfg.Thresholds.ACLRed)
	}
	if cfg.Thresholds.BloatLineLimit != 300 {
		t.Errorf("BloatLineLimit = %v, want 300", cfg.Thresholds.BloatLineLimit)
	}
	// Fields the file does not set keep profile values.
	if cfg.Thresholds.TypeSafetyMinimum != 0.80 {
		t.Errorf("TypeSafetyMinimum = %v, want jules default 0.80", cfg.Thresholds.TypeSafetyMinimum)
	}
}

func TestLoad_YAMLOverridesPyproject(t *testing.T) {
	dir := t.TempDir()
	pyproject := `
[tool.agent-scorecard.thresholds]
acl_red = 20.0
`
	yaml := `
thresholds:
  acl_red: 25.0
`
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyproject), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".agentscore.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	cfg := Load(dir, "")
	if cfg.Thresholds.ACLRed != 25 {
		t.Errorf("ACLRed = %v, want yaml override 25", cfg.Thresholds.ACLRed)
	}
}

func TestLoad_ExplicitProfileWins(t *testing.T) {
	dir := t.TempDir()
	content := `
[tool.agent-scorecard]
profile = "jules"
`
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}

	cfg := Load(dir, ProfileCopilot)
	if cfg.Profile != ProfileCopilot {
		t.Errorf("Profile = %q, want explicit copilot", cfg.Profile)
	}
}

func TestLoad_MalformedTOMLMarksInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[tool.agent-scorecard\nbroken"), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}

	cfg := Load(dir, "")

	if !cfg.Invalid {
		t.Fatal("malformed pyproject.toml should mark config invalid")
	}
	if cfg.InvalidReason == "" {
		t.Error("InvalidReason should be set")
	}
	// Defaults still apply; the run proceeds.
	if cfg.Thresholds.ACLRed != 15 {
		t.Errorf("ACLRed = %v, want default 15", cfg.Thresholds.ACLRed)
	}
}
