package depgraph

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

// ImportRef is one raw import statement before resolution. Dots is the
// number of leading dots on a relative "from" import; zero means absolute.
type ImportRef struct {
	Dots   int
	Module string
}

var (
	fromPattern   = regexp.MustCompile(`^\s*from\s+([.\w]+)\s+import\b`)
	importPattern = regexp.MustCompile(`^\s*import\s+(.+)$`)
	dottedName    = regexp.MustCompile(`^[A-Za-z_][\w.]*`)
)

// ScanImports extracts import references from Python source line by line.
// Comma-separated and aliased imports each yield one reference. A bare
// "from . import x" carries no module path and is skipped.
func ScanImports(source []byte) []ImportRef {
	var refs []ImportRef

	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := fromPattern.FindStringSubmatch(line); m != nil {
			dots := 0
			target := m[1]
			for strings.HasPrefix(target, ".") {
				dots++
				target = target[1:]
			}
			if target == "" && dots == 0 {
				continue
			}
			if target == "" {
				// "from . import x": the imported names may be attributes
				// or submodules; without the module path there is nothing
				// to resolve against.
				continue
			}
			refs = append(refs, ImportRef{Dots: dots, Module: target})
			continue
		}

		if m := importPattern.FindStringSubmatch(line); m != nil {
			rest := m[1]
			if i := strings.Index(rest, "#"); i >= 0 {
				rest = rest[:i]
			}
			for _, part := range strings.Split(rest, ",") {
				name := dottedName.FindString(strings.TrimSpace(part))
				if name == "" {
					continue
				}
				refs = append(refs, ImportRef{Module: name})
			}
		}
	}

	return refs
}
