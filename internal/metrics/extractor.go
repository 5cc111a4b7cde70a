//go:build cgo

package metrics

import (
	"context"
	"errors"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"agentscore/internal/paths"
)

// Extractor produces FileSummary values from Python source files.
type Extractor struct {
	parser *Parser
}

// NewExtractor creates a new metric extractor.
func NewExtractor() *Extractor {
	return &Extractor{parser: NewParser()}
}

// ExtractFile reads and analyzes a single file. canonicalPath is the
// project-relative path recorded on every emitted record. Read and parse
// failures are reported on the summary, never as a process error.
func (e *Extractor) ExtractFile(ctx context.Context, path string, canonicalPath string) (*FileSummary, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return &FileSummary{
			Path:         canonicalPath,
			Module:       paths.ModuleID(canonicalPath),
			TypeCoverage: 1.0,
			Error:        "failed to read file: " + err.Error(),
		}, nil
	}
	return e.ExtractSource(ctx, canonicalPath, source)
}

// ExtractSource analyzes source bytes and returns the file summary with one
// FunctionRecord per function or method definition. Lambdas are not
// recorded; nested and async definitions are.
func (e *Extractor) ExtractSource(ctx context.Context, canonicalPath string, source []byte) (*FileSummary, error) {
	fs := &FileSummary{
		Path:      canonicalPath,
		Module:    paths.ModuleID(canonicalPath),
		Functions: make([]FunctionRecord, 0),
	}

	root, err := e.parser.Parse(ctx, source)
	if err != nil {
		if errors.Is(err, ErrParse) {
			fs.Error = "parse error"
			fs.TypeCoverage = 1.0
			return fs, nil
		}
		return nil, err
	}

	rows := statementRows(root)
	fs.LogicalLines = len(rows)

	e.collect(root, source, fs.Module, fs, rows)
	fs.Aggregate()
	return fs, nil
}

// statementRows returns the set of rows on which a statement starts.
func statementRows(root *sitter.Node) map[uint32]bool {
	rows := make(map[uint32]bool)
	walk(root, func(n *sitter.Node) bool {
		if statementKinds[n.Type()] {
			rows[n.StartPoint().Row] = true
		}
		return true
	})
	return rows
}

// collect walks a subtree accumulating function records. qualifier is the
// dotted scope of the current node (module, then classes and enclosing
// functions).
func (e *Extractor) collect(node *sitter.Node, source []byte, qualifier string, fs *FileSummary, rows map[uint32]bool) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}

		switch child.Type() {
		case "decorated_definition":
			// Decorators neither add complexity nor open a scope.
			if def := child.ChildByFieldName("definition"); def != nil {
				e.collectDefinition(def, source, qualifier, fs, rows)
				continue
			}
			e.collect(child, source, qualifier, fs, rows)

		case "function_definition", "class_definition":
			e.collectDefinition(child, source, qualifier, fs, rows)

		default:
			e.collect(child, source, qualifier, fs, rows)
		}
	}
}

func (e *Extractor) collectDefinition(def *sitter.Node, source []byte, qualifier string, fs *FileSummary, rows map[uint32]bool) {
	name := nodeText(def.ChildByFieldName("name"), source)
	scoped := name
	if qualifier != "" {
		scoped = qualifier + "." + name
	}

	if def.Type() == "function_definition" {
		fs.Functions = append(fs.Functions, e.functionRecord(def, source, scoped, fs.Path, rows))
	}

	if body := def.ChildByFieldName("body"); body != nil {
		e.collect(body, source, scoped, fs, rows)
	}
}

// functionRecord builds the metric record for one function definition.
func (e *Extractor) functionRecord(fn *sitter.Node, source []byte, qualifiedName string, file string, rows map[uint32]bool) FunctionRecord {
	startRow := fn.StartPoint().Row
	endRow := fn.EndPoint().Row

	logical := 0
	for row := range rows {
		if row >= startRow && row <= endRow {
			logical++
		}
	}

	annotated, total := annotationSlots(fn, source)
	coverage := 1.0
	if total > 0 {
		coverage = float64(annotated) / float64(total)
	}

	return FunctionRecord{
		Name:         qualifiedName,
		File:         file,
		StartLine:    int(startRow) + 1,
		EndLine:      int(endRow) + 1,
		Complexity:   cyclomaticComplexity(fn),
		LogicalLines: logical,
		TypeCoverage: coverage,
		HasDocstring: hasDocstring(fn),
		IsAsync:      isAsync(fn),
	}
}

// cyclomaticComplexity counts decision points within the function's own
// body, starting from the base path of 1. Nested function bodies are
// attributed solely to the innermost definition and excluded here; lambda
// bodies belong to the enclosing function.
func cyclomaticComplexity(fn *sitter.Node) int {
	complexity := 1
	walk(fn, func(n *sitter.Node) bool {
		if n != fn && n.Type() == "function_definition" {
			return false
		}
		if decisionKinds[n.Type()] {
			complexity++
		}
		return true
	})
	return complexity
}

// annotationSlots counts (annotated, total) type-annotation slots: every
// parameter except a leading self/cls receiver, plus the return value.
func annotationSlots(fn *sitter.Node, source []byte) (int, int) {
	annotated := 0
	total := 0

	params := fn.ChildByFieldName("parameters")
	if params != nil {
		first := true
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			name, typed, isParam := classifyParameter(p, source)
			if !isParam {
				continue
			}
			if first {
				first = false
				if name == "self" || name == "cls" {
					continue
				}
			}
			total++
			if typed {
				annotated++
			}
		}
	}

	// Return annotation slot.
	total++
	if fn.ChildByFieldName("return_type") != nil {
		annotated++
	}

	return annotated, total
}

// classifyParameter returns the parameter name, whether it carries a type
// annotation, and whether the node is a parameter at all (separators like
// "*" and "/" are not).
func classifyParameter(p *sitter.Node, source []byte) (string, bool, bool) {
	switch p.Type() {
	case "identifier":
		return nodeText(p, source), false, true
	case "typed_parameter":
		// First child is the pattern being annotated.
		name := ""
		if p.NamedChildCount() > 0 {
			name = strings.TrimLeft(nodeText(p.NamedChild(0), source), "*")
		}
		return name, true, true
	case "default_parameter":
		return nodeText(p.ChildByFieldName("name"), source), false, true
	case "typed_default_parameter":
		return nodeText(p.ChildByFieldName("name"), source), true, true
	case "list_splat_pattern", "dictionary_splat_pattern":
		return strings.TrimLeft(nodeText(p, source), "*"), false, true
	default:
		return "", false, false
	}
}

// hasDocstring reports whether the first body statement is a bare string.
func hasDocstring(fn *sitter.Node) bool {
	body := fn.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return false
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return false
	}
	return first.NamedChild(0).Type() == "string"
}

// isAsync reports whether the definition uses async def.
func isAsync(fn *sitter.Node) bool {
	for i := 0; i < int(fn.ChildCount()); i++ {
		child := fn.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "async" {
			return true
		}
		if child.Type() == "def" {
			break
		}
	}
	return false
}

// IsAvailable returns whether metric extraction is available.
// Returns true when CGO is enabled.
func IsAvailable() bool {
	return true
}
