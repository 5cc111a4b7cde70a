// Package config resolves scoring thresholds from agent profiles,
// pyproject.toml and .agentscore.yaml. Precedence: CLI flags (applied by the
// command layer) > .agentscore.yaml > pyproject [tool.agent-scorecard] >
// profile defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Thresholds holds every limit the scoring engine compares against.
type Thresholds struct {
	ACLYellow             float64  `json:"aclYellow" mapstructure:"acl_yellow"`
	ACLRed                float64  `json:"aclRed" mapstructure:"acl_red"`
	TypeSafetyMinimum     float64  `json:"typeSafetyMinimum" mapstructure:"type_safety_minimum"`
	BloatLineLimit        int      `json:"bloatLineLimit" mapstructure:"bloat_line_limit"`
	GodModuleInboundLimit int      `json:"godModuleInboundLimit" mapstructure:"god_module_inbound_limit"`
	DirectoryEntropyLimit int      `json:"directoryEntropyLimit" mapstructure:"directory_entropy_limit"`
	TopOffenders          int      `json:"topOffenders" mapstructure:"top_offenders"`
	RequiredContextFiles  []string `json:"requiredContextFiles" mapstructure:"required_context_files"`
}

// Config is the fully resolved configuration handed to the engine and commands.
type Config struct {
	Profile    string     `json:"profile"`
	FailUnder  float64    `json:"failUnder"`
	Thresholds Thresholds `json:"thresholds"`

	// Invalid marks a config source that existed but could not be parsed.
	// The engine charges it like a missing context file; it is never fatal.
	Invalid       bool   `json:"invalid,omitempty"`
	InvalidReason string `json:"invalidReason,omitempty"`
}

// Profile names. A profile is a named baseline; file and flag settings
// override it field by field.
const (
	ProfileGeneric = "generic"
	ProfileJules   = "jules"
	ProfileCopilot = "copilot"
)

// DefaultConfig returns the generic profile configuration.
func DefaultConfig() *Config {
	return ProfileConfig(ProfileGeneric)
}

// ProfileConfig returns the baseline configuration for a named agent profile.
// Unknown names fall back to the generic profile.
func ProfileConfig(name string) *Config {
	cfg := &Config{
		Profile:   ProfileGeneric,
		FailUnder: 70,
		Thresholds: Thresholds{
			ACLYellow:             10,
			ACLRed:                15,
			TypeSafetyMinimum:     0.90,
			BloatLineLimit:        200,
			GodModuleInboundLimit: 50,
			DirectoryEntropyLimit: 50,
			TopOffenders:          10,
			RequiredContextFiles:  []string{"AGENTS.md", "README.md"},
		},
	}

	switch name {
	case ProfileJules:
		// Strict typing and autonomy instructions.
		cfg.Profile = ProfileJules
		cfg.Thresholds.BloatLineLimit = 150
		cfg.Thresholds.TypeSafetyMinimum = 0.80
		cfg.Thresholds.RequiredContextFiles = []string{"AGENTS.md", "INSTRUCTIONS.md"}
	case ProfileCopilot:
		// Optimized for small context completion: tiny files, relaxed typing.
		cfg.Profile = ProfileCopilot
		cfg.Thresholds.BloatLineLimit = 100
		cfg.Thresholds.TypeSafetyMinimum = 0.50
		cfg.Thresholds.RequiredContextFiles = nil
	}

	return cfg
}

// ProfileNames lists the known profiles in stable order.
func ProfileNames() []string {
	names := []string{ProfileGeneric, ProfileJules, ProfileCopilot}
	sort.Strings(names)
	return names
}

// fileSettings mirrors the user-facing settings surface. Pointer fields
// distinguish "absent" from zero so partial files override selectively.
type fileSettings struct {
	Profile    string            `toml:"profile" mapstructure:"profile"`
	FailUnder  *float64          `toml:"fail_under" mapstructure:"fail_under"`
	Thresholds thresholdSettings `toml:"thresholds" mapstructure:"thresholds"`
}

type thresholdSettings struct {
	ACLYellow             *float64 `toml:"acl_yellow" mapstructure:"acl_yellow"`
	ACLRed                *float64 `toml:"acl_red" mapstructure:"acl_red"`
	TypeSafetyMinimum     *float64 `toml:"type_safety_minimum" mapstructure:"type_safety_minimum"`
	BloatLineLimit        *int     `toml:"bloat_line_limit" mapstructure:"bloat_line_limit"`
	GodModuleInboundLimit *int     `toml:"god_module_inbound_limit" mapstructure:"god_module_inbound_limit"`
	DirectoryEntropyLimit *int     `toml:"directory_entropy_limit" mapstructure:"directory_entropy_limit"`
	TopOffenders          *int     `toml:"top_offenders" mapstructure:"top_offenders"`
	RequiredContextFiles  []string `toml:"required_context_files" mapstructure:"required_context_files"`
}

// pyprojectFile models the subset of pyproject.toml we read.
type pyprojectFile struct {
	Tool struct {
		AgentScorecard *fileSettings `toml:"agent-scorecard"`
	} `toml:"tool"`
}

// Load resolves configuration for a project root. A malformed source marks
// the config invalid and the remaining sources still apply; Load never
// returns an error for user mistakes in config files.
func Load(projectRoot string, profile string) *Config {
	// Profile precedence: explicit flag > pyproject/yaml setting > generic.
	// Read both files first so a profile named in a file takes effect.
	pySettings, pyErr := readPyproject(projectRoot)
	yamlSettings, yamlErr := readAgentscoreYAML(projectRoot)

	name := profile
	if name == "" && yamlSettings != nil && yamlSettings.Profile != "" {
		name = yamlSettings.Profile
	}
	if name == "" && pySettings != nil && pySettings.Profile != "" {
		name = pySettings.Profile
	}

	cfg := ProfileConfig(name)

	if pySettings != nil {
		applySettings(cfg, pySettings)
	}
	if yamlSettings != nil {
		applySettings(cfg, yamlSettings)
	}

	if pyErr != nil {
		cfg.Invalid = true
		cfg.InvalidReason = pyErr.Error()
	}
	if yamlErr != nil {
		cfg.Invalid = true
		cfg.InvalidReason = yamlErr.Error()
	}

	return cfg
}

// readPyproject reads the [tool.agent-scorecard] table from pyproject.toml.
// Returns (nil, nil) when the file or table is absent.
func readPyproject(projectRoot string) (*fileSettings, error) {
	path := filepath.Join(projectRoot, "pyproject.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pyproject.toml: %w", err)
	}

	var py pyprojectFile
	if err := toml.Unmarshal(data, &py); err != nil {
		return nil, fmt.Errorf("pyproject.toml: %w", err)
	}

	return py.Tool.AgentScorecard, nil
}

// readAgentscoreYAML reads .agentscore.yaml from the project root via viper.
// Returns (nil, nil) when the file is absent.
func readAgentscoreYAML(projectRoot string) (*fileSettings, error) {
	v := viper.New()
	v.SetConfigName(".agentscore")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf(".agentscore.yaml: %w", err)
	}

	var settings fileSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf(".agentscore.yaml: %w", err)
	}
	return &settings, nil
}

func applySettings(cfg *Config, s *fileSettings) {
	if s.FailUnder != nil {
		cfg.FailUnder = *s.FailUnder
	}

	t := s.Thresholds
	if t.ACLYellow != nil {
		cfg.Thresholds.ACLYellow = *t.ACLYellow
	}
	if t.ACLRed != nil {
		cfg.Thresholds.ACLRed = *t.ACLRed
	}
	if t.TypeSafetyMinimum != nil {
		cfg.Thresholds.TypeSafetyMinimum = *t.TypeSafetyMinimum
	}
	if t.BloatLineLimit != nil {
		cfg.Thresholds.BloatLineLimit = *t.BloatLineLimit
	}
	if t.GodModuleInboundLimit != nil {
		cfg.Thresholds.GodModuleInboundLimit = *t.GodModuleInboundLimit
	}
	if t.DirectoryEntropyLimit != nil {
		cfg.Thresholds.DirectoryEntropyLimit = *t.DirectoryEntropyLimit
	}
	if t.TopOffenders != nil {
		cfg.Thresholds.TopOffenders = *t.TopOffenders
	}
	if t.RequiredContextFiles != nil {
		cfg.Thresholds.RequiredContextFiles = t.RequiredContextFiles
	}
}
