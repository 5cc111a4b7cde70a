// Package metrics extracts per-function structural metrics from Python
// source via tree-sitter.
package metrics

// FunctionRecord contains the structural metrics for a single function or
// method. Records are created once during extraction and never mutated by
// downstream stages.
type FunctionRecord struct {
	// Name is the qualified dotted name including enclosing classes and
	// functions (e.g. "pkg.mod.Handler.dispatch")
	Name string `json:"name"`

	// File is the canonical project-relative path of the defining file
	File string `json:"file"`

	// StartLine is the line where the definition starts (1-based)
	StartLine int `json:"startLine"`

	// EndLine is the line where the definition ends
	EndLine int `json:"endLine"`

	// Complexity is the cyclomatic complexity (decision points + 1, always >= 1)
	Complexity int `json:"complexity"`

	// LogicalLines is the number of statement-bearing lines in the function
	LogicalLines int `json:"logicalLines"`

	// TypeCoverage is annotated slots / total slots in [0, 1]; 1.0 when the
	// function has no annotation slots at all
	TypeCoverage float64 `json:"typeCoverage"`

	// HasDocstring is true when the first body statement is a string literal
	HasDocstring bool `json:"hasDocstring"`

	// IsAsync is true for async def
	IsAsync bool `json:"isAsync"`
}

// ACL returns the Agent Cognitive Load for the function:
// complexity + logical lines / 20. No rounding is applied; threshold
// comparisons happen on the exact value.
func (r FunctionRecord) ACL() float64 {
	return float64(r.Complexity) + float64(r.LogicalLines)/20.0
}

// IsTyped reports whether the function carries at least one annotation.
// Functions with zero annotation slots count as typed.
func (r FunctionRecord) IsTyped() bool {
	return r.TypeCoverage > 0
}

// FileSummary contains the metrics for one source file.
type FileSummary struct {
	// Path is the canonical project-relative file path
	Path string `json:"path"`

	// Module is the dotted in-project module identifier
	Module string `json:"module"`

	// LogicalLines is the statement-bearing line count for the whole file
	LogicalLines int `json:"logicalLines"`

	// Functions holds one record per function definition, in source order
	Functions []FunctionRecord `json:"functions"`

	// TypeCoverage is typed functions / total functions; 1.0 for a file
	// with no functions
	TypeCoverage float64 `json:"typeCoverage"`

	// Error is set when the file could not be parsed. The file then
	// contributes no function records and stays an isolated graph node.
	Error string `json:"error,omitempty"`
}

// Aggregate computes the file-level type coverage from function records.
func (fs *FileSummary) Aggregate() {
	if len(fs.Functions) == 0 {
		fs.TypeCoverage = 1.0
		return
	}

	typed := 0
	for _, f := range fs.Functions {
		if f.IsTyped() {
			typed++
		}
	}
	fs.TypeCoverage = float64(typed) / float64(len(fs.Functions))
}
