package scoring

import (
	"fmt"
	"sort"

	"agentscore/internal/config"
	"agentscore/internal/depgraph"
	"agentscore/internal/metrics"
)

// Input carries everything the engine evaluates. Files and Graph always
// cover the whole project; Changed restricts per-file and per-function
// penalties to a diff scope when non-nil. Graph-derived penalties are
// always charged project-wide because a partial view cannot judge them.
type Input struct {
	Files      []*metrics.FileSummary
	Graph      *depgraph.Graph
	Entropy    []depgraph.DirectoryCount
	Thresholds config.Thresholds

	// MissingContextFiles lists required context files absent from the
	// project root, resolved by the caller so the engine stays I/O free.
	MissingContextFiles []string

	// ConfigInvalid charges the invalid-config penalty. Reason is echoed
	// into the penalty detail.
	ConfigInvalid bool
	ConfigReason  string

	// Changed restricts scope to the given canonical paths. Nil means the
	// full project.
	Changed map[string]bool
}

func (in *Input) inScope(path string) bool {
	return in.Changed == nil || in.Changed[path]
}

// Score evaluates the input against the thresholds and returns the report.
// Start at 100, apply every triggered penalty, clamp at zero.
func Score(in Input) *ScoreReport {
	t := in.Thresholds

	files := make([]*metrics.FileSummary, len(in.Files))
	copy(files, in.Files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	report := &ScoreReport{
		Entropy: in.Entropy,
	}
	if in.Graph != nil {
		report.Cycles = in.Graph.Cycles()
		report.GodModules = in.Graph.GodModules(t.GodModuleInboundLimit)
	}

	var bloat, load, types []PenaltyRecord
	filePenalties := make(map[string][]PenaltyRecord)
	addFilePenalty := func(path string, p PenaltyRecord) {
		filePenalties[path] = append(filePenalties[path], p)
	}

	for _, fs := range files {
		if !in.inScope(fs.Path) {
			continue
		}

		if fs.Error != "" {
			report.Warnings = append(report.Warnings, Warning{
				File:     fs.Path,
				Category: "parse-error",
				Message:  fs.Error,
			})
			continue
		}

		if over := fs.LogicalLines - t.BloatLineLimit; over > 0 {
			if points := over / 10; points > 0 {
				p := PenaltyRecord{
					Category: CategoryBloat,
					Target:   fs.Path,
					Detail:   fmt.Sprintf("%d logical lines exceed limit %d", fs.LogicalLines, t.BloatLineLimit),
					Points:   -float64(points),
				}
				bloat = append(bloat, p)
				addFilePenalty(fs.Path, p)
			}
		}

		for _, fn := range fs.Functions {
			acl := fn.ACL()
			var p PenaltyRecord
			switch {
			case acl >= t.ACLRed:
				p = PenaltyRecord{
					Category: CategoryCognitiveLoad,
					Target:   fn.Name,
					Detail:   fmt.Sprintf("ACL %.1f >= %.1f", acl, t.ACLRed),
					Points:   -15,
				}
			case acl >= t.ACLYellow:
				p = PenaltyRecord{
					Category: CategoryCognitiveLoad,
					Target:   fn.Name,
					Detail:   fmt.Sprintf("ACL %.1f >= %.1f", acl, t.ACLYellow),
					Points:   -5,
				}
			default:
				continue
			}
			load = append(load, p)
			addFilePenalty(fs.Path, p)
		}

		if fs.TypeCoverage < t.TypeSafetyMinimum {
			p := PenaltyRecord{
				Category: CategoryMissingTypes,
				Target:   fs.Path,
				Detail:   fmt.Sprintf("type coverage %.0f%% below %.0f%%", fs.TypeCoverage*100, t.TypeSafetyMinimum*100),
				Points:   -20,
			}
			types = append(types, p)
			addFilePenalty(fs.Path, p)
		}
	}

	// Fixed category order for the report.
	report.Penalties = append(report.Penalties, bloat...)
	report.Penalties = append(report.Penalties, load...)
	report.Penalties = append(report.Penalties, types...)

	for _, name := range in.MissingContextFiles {
		report.Penalties = append(report.Penalties, PenaltyRecord{
			Category: CategoryMissingContext,
			Target:   name,
			Detail:   "required context file missing from project root",
			Points:   -15,
		})
	}
	for _, mod := range report.GodModules {
		report.Penalties = append(report.Penalties, PenaltyRecord{
			Category: CategoryGodModule,
			Target:   mod,
			Detail:   fmt.Sprintf("inbound degree %d exceeds limit %d", in.Graph.Nodes[mod].Inbound, t.GodModuleInboundLimit),
			Points:   -10,
		})
	}
	for _, dir := range report.Entropy {
		report.Penalties = append(report.Penalties, PenaltyRecord{
			Category: CategoryEntropy,
			Target:   dir.Dir,
			Detail:   fmt.Sprintf("%d files exceed limit %d", dir.Count, t.DirectoryEntropyLimit),
			Points:   -5,
		})
	}
	for _, cycle := range report.Cycles {
		report.Penalties = append(report.Penalties, PenaltyRecord{
			Category: CategoryCycle,
			Target:   cycle[0],
			Detail:   fmt.Sprintf("circular dependency %v", cycle),
			Points:   -5,
		})
	}
	if in.ConfigInvalid {
		detail := "configuration could not be parsed, defaults applied"
		if in.ConfigReason != "" {
			detail = in.ConfigReason
		}
		report.Penalties = append(report.Penalties, PenaltyRecord{
			Category: CategoryInvalidConfig,
			Target:   "config",
			Detail:   detail,
			Points:   -15,
		})
	}

	score := 100.0
	for _, p := range report.Penalties {
		score += p.Points
	}
	if score < 0 {
		score = 0
	}
	report.Score = score

	report.Files = fileScores(files, in, filePenalties)
	report.TopOffenders = topOffenders(files, in, t.TopOffenders)
	return report
}

// fileScores applies each in-scope file's own penalties to the baseline.
func fileScores(files []*metrics.FileSummary, in Input, penalties map[string][]PenaltyRecord) []FileScore {
	var out []FileScore
	for _, fs := range files {
		if !in.inScope(fs.Path) || fs.Error != "" {
			continue
		}

		score := 100.0
		for _, p := range penalties[fs.Path] {
			score += p.Points
		}
		if score < 0 {
			score = 0
		}
		out = append(out, FileScore{
			Path:      fs.Path,
			Score:     score,
			Penalties: penalties[fs.Path],
		})
	}
	return out
}

// topOffenders ranks in-scope functions by ACL descending, ties broken by
// file path then function name, truncated to n (default 10).
func topOffenders(files []*metrics.FileSummary, in Input, n int) []Offender {
	if n <= 0 {
		n = 10
	}

	var all []Offender
	for _, fs := range files {
		if !in.inScope(fs.Path) {
			continue
		}
		for _, fn := range fs.Functions {
			all = append(all, Offender{
				Name:         fn.Name,
				File:         fn.File,
				ACL:          fn.ACL(),
				Complexity:   fn.Complexity,
				LogicalLines: fn.LogicalLines,
			})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].ACL != all[j].ACL {
			return all[i].ACL > all[j].ACL
		}
		if all[i].File != all[j].File {
			return all[i].File < all[j].File
		}
		return all[i].Name < all[j].Name
	})

	if len(all) > n {
		all = all[:n]
	}
	return all
}
