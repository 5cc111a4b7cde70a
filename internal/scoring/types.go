// Package scoring turns extracted metrics and the dependency graph into a
// deterministic agent-readiness score. The engine is a pure function: no
// I/O, no input mutation, identical inputs always produce an identical
// report.
package scoring

import (
	"agentscore/internal/depgraph"
)

// Penalty categories in the order they appear in a report.
const (
	CategoryBloat          = "bloated-file"
	CategoryCognitiveLoad  = "high-cognitive-load"
	CategoryMissingTypes   = "missing-types"
	CategoryMissingContext = "missing-context-file"
	CategoryGodModule      = "god-module"
	CategoryEntropy        = "high-entropy"
	CategoryCycle          = "circular-dependency"
	CategoryInvalidConfig  = "invalid-config"
)

// PenaltyRecord is one applied deduction. Points are always negative.
type PenaltyRecord struct {
	Category string  `json:"category"`
	Target   string  `json:"target"`
	Detail   string  `json:"detail"`
	Points   float64 `json:"points"`
}

// FileScore is the per-file view: the 100-point baseline minus only that
// file's own penalties. Project-wide penalties are never charged here.
type FileScore struct {
	Path      string          `json:"path"`
	Score     float64         `json:"score"`
	Penalties []PenaltyRecord `json:"penalties,omitempty"`
}

// Offender is one entry in the ranked cognitive-load listing.
type Offender struct {
	Name         string  `json:"name"`
	File         string  `json:"file"`
	ACL          float64 `json:"acl"`
	Complexity   int     `json:"complexity"`
	LogicalLines int     `json:"logicalLines"`
}

// Warning is a recovered per-file failure surfaced alongside penalties.
type Warning struct {
	File     string `json:"file"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ScoreReport is the full structured result. Reporters render it; nothing
// downstream recomputes.
type ScoreReport struct {
	Score        float64                   `json:"score"`
	Penalties    []PenaltyRecord           `json:"penalties"`
	TopOffenders []Offender                `json:"topOffenders"`
	Files        []FileScore               `json:"files"`
	Cycles       [][]string                `json:"cycles"`
	GodModules   []string                  `json:"godModules"`
	Entropy      []depgraph.DirectoryCount `json:"entropy"`
	Warnings     []Warning                 `json:"warnings,omitempty"`
}
