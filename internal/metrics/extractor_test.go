//go:build cgo

package metrics

import (
	"context"
	"testing"
)

func extractSource(t *testing.T, path, src string) *FileSummary {
	t.Helper()
	fs, err := NewExtractor().ExtractSource(context.Background(), path, []byte(src))
	if err != nil {
		t.Fatalf("ExtractSource failed: %v", err)
	}
	return fs
}

func findFunction(t *testing.T, fs *FileSummary, name string) FunctionRecord {
	t.Helper()
	for _, fn := range fs.Functions {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("function %q not found in %v", name, functionNames(fs))
	return FunctionRecord{}
}

func functionNames(fs *FileSummary) []string {
	names := make([]string, 0, len(fs.Functions))
	for _, fn := range fs.Functions {
		names = append(names, fn.Name)
	}
	return names
}

func TestExtractSimpleFunction(t *testing.T) {
	src := `def add(a: int, b: int) -> int:
    """Add two numbers."""
    return a + b
`
	fs := extractSource(t, "app.py", src)

	if fs.Module != "app" {
		t.Errorf("expected module app, got %q", fs.Module)
	}
	if len(fs.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fs.Functions))
	}

	fn := fs.Functions[0]
	if fn.Name != "app.add" {
		t.Errorf("expected name app.add, got %q", fn.Name)
	}
	if fn.Complexity != 1 {
		t.Errorf("expected complexity 1, got %d", fn.Complexity)
	}
	if fn.LogicalLines != 3 {
		t.Errorf("expected 3 logical lines, got %d", fn.LogicalLines)
	}
	if fn.TypeCoverage != 1.0 {
		t.Errorf("expected full type coverage, got %f", fn.TypeCoverage)
	}
	if !fn.HasDocstring {
		t.Error("expected docstring to be detected")
	}
	if fn.IsAsync {
		t.Error("did not expect async")
	}
	if fn.StartLine != 1 || fn.EndLine != 3 {
		t.Errorf("expected span 1-3, got %d-%d", fn.StartLine, fn.EndLine)
	}
}

func TestExtractDecisionPoints(t *testing.T) {
	src := `def classify(n):
    if n < 0 and n != -1:
        return "neg"
    elif n == 0:
        return "zero"
    for i in range(n):
        if i % 2:
            continue
    return [x for x in range(n) if x > 1] if n else []
`
	fs := extractSource(t, "app.py", src)
	fn := findFunction(t, fs, "app.classify")

	// if + boolean and + elif + for + nested if + comprehension filter + ternary.
	if fn.Complexity != 8 {
		t.Errorf("expected complexity 8, got %d", fn.Complexity)
	}
	if fn.TypeCoverage != 0.0 {
		t.Errorf("expected zero type coverage, got %f", fn.TypeCoverage)
	}
	if fn.HasDocstring {
		t.Error("did not expect a docstring")
	}
}

func TestExtractNestedFunctions(t *testing.T) {
	src := `def outer():
    def inner(x):
        if x:
            return 1
        return 0
    return inner
`
	fs := extractSource(t, "app.py", src)
	if len(fs.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d: %v", len(fs.Functions), functionNames(fs))
	}

	outer := findFunction(t, fs, "app.outer")
	inner := findFunction(t, fs, "app.outer.inner")

	// The nested body's branch belongs to inner only.
	if outer.Complexity != 1 {
		t.Errorf("expected outer complexity 1, got %d", outer.Complexity)
	}
	if inner.Complexity != 2 {
		t.Errorf("expected inner complexity 2, got %d", inner.Complexity)
	}
	if outer.LogicalLines != 6 {
		t.Errorf("expected outer logical lines 6, got %d", outer.LogicalLines)
	}
	if inner.LogicalLines != 4 {
		t.Errorf("expected inner logical lines 4, got %d", inner.LogicalLines)
	}
}

func TestExtractMethodsAndReceivers(t *testing.T) {
	src := `class Greeter:
    def greet(self, name: str) -> str:
        return "hi " + name

    @staticmethod
    def version():
        return 1
`
	fs := extractSource(t, "pkg/greeting.py", src)

	greet := findFunction(t, fs, "pkg.greeting.Greeter.greet")
	if greet.TypeCoverage != 1.0 {
		t.Errorf("expected self to be excluded from slots, got coverage %f", greet.TypeCoverage)
	}

	version := findFunction(t, fs, "pkg.greeting.Greeter.version")
	if version.TypeCoverage != 0.0 {
		t.Errorf("expected unannotated return slot, got coverage %f", version.TypeCoverage)
	}

	// One fully annotated function out of two.
	if fs.TypeCoverage != 0.5 {
		t.Errorf("expected file coverage 0.5, got %f", fs.TypeCoverage)
	}
}

func TestExtractPartialAnnotations(t *testing.T) {
	src := `def mix(a: int, b, *args, **kwargs) -> int:
    return a
`
	fs := extractSource(t, "app.py", src)
	fn := findFunction(t, fs, "app.mix")

	// Slots: a, b, *args, **kwargs, return. Annotated: a, return.
	if fn.TypeCoverage != 0.4 {
		t.Errorf("expected 0.4 coverage, got %f", fn.TypeCoverage)
	}
}

func TestExtractAsyncFunction(t *testing.T) {
	src := `async def fetch(url: str) -> str:
    return url
`
	fs := extractSource(t, "app.py", src)
	fn := findFunction(t, fs, "app.fetch")
	if !fn.IsAsync {
		t.Error("expected async to be detected")
	}
}

func TestExtractMultiLineStatementCountsOnce(t *testing.T) {
	src := `value = (
    1 +
    2
)

# just a comment
other = 3
`
	fs := extractSource(t, "app.py", src)
	if fs.LogicalLines != 2 {
		t.Errorf("expected 2 logical lines, got %d", fs.LogicalLines)
	}
}

func TestExtractParseError(t *testing.T) {
	fs := extractSource(t, "broken.py", "def broken(:\n")

	if fs.Error == "" {
		t.Error("expected a recorded parse error")
	}
	if len(fs.Functions) != 0 {
		t.Errorf("expected no records for unparsable file, got %d", len(fs.Functions))
	}
	if fs.TypeCoverage != 1.0 {
		t.Errorf("expected neutral coverage for unparsable file, got %f", fs.TypeCoverage)
	}
}

func TestExtractNoFunctions(t *testing.T) {
	fs := extractSource(t, "consts.py", "LIMIT = 10\n")
	if fs.TypeCoverage != 1.0 {
		t.Errorf("expected coverage 1.0 for file without functions, got %f", fs.TypeCoverage)
	}
	if fs.LogicalLines != 1 {
		t.Errorf("expected 1 logical line, got %d", fs.LogicalLines)
	}
}

func TestExtractInitModule(t *testing.T) {
	fs := extractSource(t, "pkg/__init__.py", "def setup():\n    pass\n")
	if fs.Module != "pkg" {
		t.Errorf("expected module pkg, got %q", fs.Module)
	}
	findFunction(t, fs, "pkg.setup")
}

func TestACLThresholding(t *testing.T) {
	fn := FunctionRecord{Complexity: 14, LogicalLines: 250}
	if got := fn.ACL(); got != 26.5 {
		t.Errorf("expected ACL 26.5, got %f", got)
	}

	fn = FunctionRecord{Complexity: 9, LogicalLines: 20}
	if got := fn.ACL(); got != 10.0 {
		t.Errorf("expected ACL 10.0, got %f", got)
	}
}
