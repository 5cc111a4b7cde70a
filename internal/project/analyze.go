package project

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"agentscore/internal/config"
	"agentscore/internal/depgraph"
	"agentscore/internal/logging"
	"agentscore/internal/metrics"
	"agentscore/internal/paths"
	"agentscore/internal/scoring"
)

// Analysis bundles everything one full pipeline run produced.
type Analysis struct {
	Listing   *Listing
	Summaries []*metrics.FileSummary
	Graph     *depgraph.Graph
	Report    *scoring.ScoreReport
	Health    EnvHealth
	Tokens    TokenEstimate
}

// Analyze runs the full pipeline: discovery, parallel per-file extraction,
// graph assembly, then scoring. changed restricts per-file penalties to a
// diff scope when non-nil; the graph is always built from the whole
// project.
func Analyze(ctx context.Context, root string, cfg *config.Config, changed []string, log *logging.Logger) (*Analysis, error) {
	if log == nil {
		log = logging.NewDiscard()
	}

	listing, err := Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	summaries, err := extractAll(ctx, root, listing.Python)
	if err != nil {
		return nil, err
	}

	// Files that failed to parse must stay isolated in the graph; a line
	// scan over broken source could invent edges the parser never saw.
	broken := make(map[string]bool)
	for _, s := range summaries {
		if s.Error != "" {
			broken[s.Path] = true
		}
	}

	graph, err := depgraph.NewBuilder(log).Build(ctx, root, listing.Python, broken)
	if err != nil {
		return nil, err
	}

	var scope map[string]bool
	if changed != nil {
		scope = make(map[string]bool, len(changed))
		for _, f := range changed {
			scope[paths.Normalize(f)] = true
		}
	}

	rep := scoring.Score(scoring.Input{
		Files:               summaries,
		Graph:               graph,
		Entropy:             depgraph.DirectoryEntropy(listing.All, cfg.Thresholds.DirectoryEntropyLimit),
		Thresholds:          cfg.Thresholds,
		MissingContextFiles: MissingContextFiles(root, cfg.Thresholds.RequiredContextFiles),
		ConfigInvalid:       cfg.Invalid,
		ConfigReason:        cfg.InvalidReason,
		Changed:             scope,
	})

	return &Analysis{
		Listing:   listing,
		Summaries: summaries,
		Graph:     graph,
		Report:    rep,
		Health:    CheckEnvironment(root),
		Tokens:    EstimateContextTokens(root, listing.Python),
	}, nil
}

// extractAll fans per-file extraction out over a small worker pool. Each
// worker owns its parser; results are merged by concatenation and sorted
// so downstream stages see a deterministic order.
func extractAll(ctx context.Context, root string, files []string) ([]*metrics.FileSummary, error) {
	if len(files) == 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	work := make(chan string)
	results := make(chan *metrics.FileSummary, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			extractor := metrics.NewExtractor()
			for f := range work {
				summary, err := extractor.ExtractFile(ctx, paths.JoinProject(root, f), f)
				if err != nil {
					summary = &metrics.FileSummary{
						Path:         f,
						Module:       paths.ModuleID(f),
						TypeCoverage: 1.0,
						Error:        err.Error(),
					}
				}
				results <- summary
			}
		}()
	}

feed:
	for _, f := range files {
		select {
		case <-ctx.Done():
			break feed
		case work <- f:
		}
	}
	close(work)
	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries := make([]*metrics.FileSummary, 0, len(files))
	for s := range results {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Path < summaries[j].Path })
	return summaries, nil
}
