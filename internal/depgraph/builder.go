package depgraph

import (
	"context"
	"os"
	"path"
	"sort"
	"strings"

	"agentscore/internal/logging"
	"agentscore/internal/paths"
)

// Builder assembles the dependency graph for one project.
type Builder struct {
	log *logging.Logger
}

// NewBuilder creates a graph builder. A nil logger discards output.
func NewBuilder(log *logging.Logger) *Builder {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Builder{log: log}
}

// Build reads every listed Python file under projectRoot and assembles the
// graph. files are canonical project-relative paths. broken marks files
// that failed to parse; their imports are never scanned, so they become
// isolated nodes with no outbound edges, the same as a file that cannot
// be read. The context is checked between files so a long walk can be
// interrupted.
func (b *Builder) Build(ctx context.Context, projectRoot string, files []string, broken map[string]bool) (*Graph, error) {
	sources := make(map[string][]byte, len(files))
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if broken[f] {
			sources[f] = nil
			continue
		}

		data, err := os.ReadFile(paths.JoinProject(projectRoot, f))
		if err != nil {
			b.log.Warn("failed to read file for import scan", map[string]interface{}{
				"file":  f,
				"error": err.Error(),
			})
			sources[f] = nil
			continue
		}
		sources[f] = data
	}
	return b.BuildFromSources(sources), nil
}

// BuildFromSources assembles the graph from in-memory file contents keyed
// by canonical path. A nil source yields an isolated node.
func (b *Builder) BuildFromSources(sources map[string][]byte) *Graph {
	files := make([]string, 0, len(sources))
	for f := range sources {
		files = append(files, f)
	}
	sort.Strings(files)

	// First pass: the module namespace. Edges may only land on these.
	modules := make(map[string]string, len(files))
	for _, f := range files {
		id := paths.ModuleID(f)
		if id == "" {
			continue
		}
		if existing, ok := modules[id]; ok {
			b.log.Warn("duplicate module identifier", map[string]interface{}{
				"module": id,
				"kept":   existing,
				"file":   f,
			})
			continue
		}
		modules[id] = f
	}

	graph := &Graph{Nodes: make(map[string]*ModuleNode, len(modules))}
	for id, file := range modules {
		graph.Nodes[id] = &ModuleNode{ID: id, File: file}
	}

	// Second pass: resolve imports to edges, deduplicated per source.
	inboundFrom := make(map[string]map[string]bool)
	for _, f := range files {
		id := paths.ModuleID(f)
		node, ok := graph.Nodes[id]
		if !ok || modules[id] != f {
			continue
		}

		targets := make(map[string]bool)
		for _, ref := range ScanImports(sources[f]) {
			target := resolveImport(ref, f, modules)
			if target == "" {
				continue
			}
			targets[target] = true
		}

		node.Imports = make([]string, 0, len(targets))
		for t := range targets {
			node.Imports = append(node.Imports, t)
			if inboundFrom[t] == nil {
				inboundFrom[t] = make(map[string]bool)
			}
			inboundFrom[t][id] = true
		}
		sort.Strings(node.Imports)
	}

	for id, node := range graph.Nodes {
		node.Inbound = len(inboundFrom[id])
	}
	return graph
}

// resolveImport maps one import reference to an in-project module
// identifier, or "" when the import is external or unresolvable. Relative
// references walk up one directory per leading dot from the importing
// file; absolute references match from the project root. Trailing
// segments that name attributes rather than modules are stripped until a
// module matches.
func resolveImport(ref ImportRef, fromFile string, modules map[string]string) string {
	candidate := ref.Module

	if ref.Dots > 0 {
		dir := path.Dir(paths.Normalize(fromFile))
		var parts []string
		if dir != "." {
			parts = strings.Split(dir, "/")
		}
		up := ref.Dots - 1
		if up > len(parts) {
			return ""
		}
		parts = parts[:len(parts)-up]
		candidate = strings.Join(append(parts, ref.Module), ".")
		candidate = strings.Trim(candidate, ".")
	}

	for candidate != "" {
		if _, ok := modules[candidate]; ok {
			return candidate
		}
		i := strings.LastIndex(candidate, ".")
		if i < 0 {
			return ""
		}
		candidate = candidate[:i]
	}
	return ""
}
