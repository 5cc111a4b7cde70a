// Package depgraph builds the project-wide module dependency graph from
// Python import statements and derives fan-in, cycle, and directory
// entropy information from it.
package depgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ModuleNode is one resolved in-project module.
type ModuleNode struct {
	// ID is the canonical dotted module identifier derived from the file path
	ID string `json:"id"`

	// File is the canonical project-relative source path
	File string `json:"file"`

	// Imports lists outbound edges (in-project modules this one imports),
	// deduplicated and sorted
	Imports []string `json:"imports"`

	// Inbound is the number of distinct modules importing this one
	Inbound int `json:"inbound"`
}

// Graph is the full module dependency graph. Edges only ever point to
// modules present in Nodes; external and unresolvable imports are dropped
// during construction.
type Graph struct {
	Nodes map[string]*ModuleNode `json:"nodes"`
}

// SortedIDs returns all module identifiers in lexicographic order.
func (g *Graph) SortedIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Cycles returns every strongly connected component of size two or more,
// plus each self-importing module as a size-1 cycle. Member lists are
// sorted lexicographically and components are ordered by comparing their
// member lists in full, so identical graphs always produce identical
// listings.
func (g *Graph) Cycles() [][]string {
	ids := g.SortedIDs()

	index := make(map[string]int64, len(ids))
	dg := simple.NewDirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		dg.AddNode(simple.Node(int64(i)))
	}

	var cycles [][]string
	for _, id := range ids {
		from := index[id]
		for _, imp := range g.Nodes[id].Imports {
			to, ok := index[imp]
			if !ok {
				continue
			}
			if from == to {
				// gonum simple graphs reject self-edges; report directly.
				cycles = append(cycles, []string{id})
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}

	for _, scc := range topo.TarjanSCC(dg) {
		if len(scc) < 2 {
			continue
		}
		members := make([]string, 0, len(scc))
		for _, n := range scc {
			members = append(members, ids[n.ID()])
		}
		sort.Strings(members)
		cycles = append(cycles, members)
	}

	// Compare member lists in full: a self-loop and a larger component can
	// share their smallest member.
	sort.Slice(cycles, func(i, j int) bool {
		a, b := cycles[i], cycles[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return cycles
}

// GodModules returns modules whose inbound-degree exceeds limit, sorted by
// identifier.
func (g *Graph) GodModules(limit int) []string {
	var out []string
	for id, node := range g.Nodes {
		if node.Inbound > limit {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
