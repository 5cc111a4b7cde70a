// Package report renders a ScoreReport for humans and machines: Markdown
// scorecards, SVG badges, and JSON/YAML encodings.
package report

import (
	"fmt"
	"strings"

	"agentscore/internal/config"
	"agentscore/internal/remedy"
	"agentscore/internal/scoring"
)

// Options controls optional Markdown sections.
type Options struct {
	// IncludePrompts appends the CRAFT remediation prompt section.
	IncludePrompts bool
}

// Markdown renders the full scorecard.
func Markdown(rep *scoring.ScoreReport, cfg *config.Config, opts Options) string {
	var b strings.Builder

	b.WriteString("# Agent Readiness Scorecard\n\n")
	fmt.Fprintf(&b, "**Score: %.1f / 100** (profile: %s, fail-under: %.0f)\n\n", rep.Score, cfg.Profile, cfg.FailUnder)

	if len(rep.Penalties) > 0 {
		b.WriteString("## Penalties\n\n")
		b.WriteString("| Category | Target | Detail | Points |\n")
		b.WriteString("| :--- | :--- | :--- | ---: |\n")
		for _, p := range rep.Penalties {
			fmt.Fprintf(&b, "| %s | `%s` | %s | %.0f |\n", p.Category, p.Target, p.Detail, p.Points)
		}
		b.WriteString("\n")
	}

	if len(rep.TopOffenders) > 0 {
		b.WriteString("## Top Offenders\n\n")
		b.WriteString("| Function | File | ACL | Complexity | Lines |\n")
		b.WriteString("| :--- | :--- | ---: | ---: | ---: |\n")
		for _, o := range rep.TopOffenders {
			fmt.Fprintf(&b, "| `%s` | `%s` | %.1f | %d | %d |\n", o.Name, o.File, o.ACL, o.Complexity, o.LogicalLines)
		}
		b.WriteString("\n")
	}

	if len(rep.Files) > 0 {
		b.WriteString("## Files\n\n")
		b.WriteString("| File | Score |\n")
		b.WriteString("| :--- | ---: |\n")
		for _, f := range rep.Files {
			fmt.Fprintf(&b, "| `%s` | %.1f |\n", f.Path, f.Score)
		}
		b.WriteString("\n")
	}

	if len(rep.Cycles) > 0 {
		b.WriteString("## Circular Dependencies\n\n")
		for _, cycle := range rep.Cycles {
			fmt.Fprintf(&b, "- %s\n", strings.Join(cycle, " -> "))
		}
		b.WriteString("\n")
	}

	if len(rep.GodModules) > 0 {
		b.WriteString("## God Modules\n\n")
		for _, m := range rep.GodModules {
			fmt.Fprintf(&b, "- `%s`\n", m)
		}
		b.WriteString("\n")
	}

	if len(rep.Entropy) > 0 {
		b.WriteString("## Crowded Directories\n\n")
		for _, e := range rep.Entropy {
			fmt.Fprintf(&b, "- `%s` (%d files)\n", e.Dir, e.Count)
		}
		b.WriteString("\n")
	}

	if len(rep.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&b, "- `%s`: %s (%s)\n", w.File, w.Message, w.Category)
		}
		b.WriteString("\n")
	}

	if opts.IncludePrompts {
		b.WriteString(remedy.PromptsSection(rep, cfg.Thresholds))
	}

	return b.String()
}
