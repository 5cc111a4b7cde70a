package depgraph

import (
	"path"
	"sort"

	"agentscore/internal/paths"
)

// DirectoryCount is the file tally for a single project directory.
type DirectoryCount struct {
	Dir   string `json:"dir"`
	Count int    `json:"count"`
}

// DirectoryEntropy tallies files per directory and returns the
// directories whose count exceeds limit, sorted by path. The project root
// is reported as ".".
func DirectoryEntropy(files []string, limit int) []DirectoryCount {
	counts := make(map[string]int)
	for _, f := range files {
		counts[path.Dir(paths.Normalize(f))]++
	}

	var out []DirectoryCount
	for dir, n := range counts {
		if n > limit {
			out = append(out, DirectoryCount{Dir: dir, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dir < out[j].Dir })
	return out
}
