//go:build cgo

package metrics

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrParse is returned when tree-sitter cannot produce a usable tree.
var ErrParse = errors.New("source could not be parsed")

// Parser wraps tree-sitter configured for Python.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses source code and returns the root node. A tree containing
// syntax errors is reported as ErrParse so callers can apply the
// skip-and-report policy.
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, ErrParse
	}

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, ErrParse
	}
	return root, nil
}

// decisionKinds maps Python node types that count as a decision point for
// cyclomatic complexity. Each occurrence adds one to the base complexity
// of the innermost enclosing function.
var decisionKinds = map[string]bool{
	"if_statement":           true,
	"elif_clause":            true,
	"for_statement":          true,
	"while_statement":        true,
	"except_clause":          true,
	"boolean_operator":       true, // and / or short-circuit
	"conditional_expression": true, // ternary
	"if_clause":              true, // comprehension / generator filter
}

// statementKinds are the node types whose start row counts as one logical
// line. Multi-line statements start on exactly one row, so continuation
// lines never double-count; blank and comment-only lines carry no
// statement and never count.
var statementKinds = map[string]bool{
	"expression_statement":    true,
	"return_statement":        true,
	"pass_statement":          true,
	"assert_statement":        true,
	"delete_statement":        true,
	"raise_statement":         true,
	"global_statement":        true,
	"nonlocal_statement":      true,
	"import_statement":        true,
	"import_from_statement":   true,
	"future_import_statement": true,
	"break_statement":         true,
	"continue_statement":      true,
	"if_statement":            true,
	"elif_clause":             true,
	"else_clause":             true,
	"for_statement":           true,
	"while_statement":         true,
	"try_statement":           true,
	"except_clause":           true,
	"finally_clause":          true,
	"with_statement":          true,
	"match_statement":         true,
	"case_clause":             true,
	"function_definition":     true,
	"class_definition":        true,
	"decorated_definition":    true,
}

// walk visits node and its subtree depth-first. The visitor returns false
// to stop descending into a node's children.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), visit)
	}
}

// nodeText returns the source text covered by a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
