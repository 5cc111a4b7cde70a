// Package remedy produces remediation guidance: CRAFT-formatted agent
// prompts for the worst findings, a recommendations table, generated
// context documents, and an LLM-backed fix hook.
package remedy

import (
	"fmt"
	"strings"

	"agentscore/internal/config"
	"agentscore/internal/scoring"
)

// CRAFT is one structured remediation prompt: Context, Request, Actions,
// Frame, Template.
type CRAFT struct {
	Context  string
	Request  string
	Actions  []string
	Frame    string
	Template string
}

// Format renders the prompt as a Markdown blockquote.
func (c CRAFT) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "> **Context**: %s\n", c.Context)
	fmt.Fprintf(&b, "> **Request**: %s\n", c.Request)
	b.WriteString("> **Actions**:\n")
	for _, a := range c.Actions {
		fmt.Fprintf(&b, "> - %s\n", a)
	}
	fmt.Fprintf(&b, "> **Frame**: %s\n", c.Frame)
	fmt.Fprintf(&b, "> **Template**: %s", c.Template)
	return b.String()
}

// PromptsSection builds the remediation prompt section from a score
// report: one prompt per god module, per file with red cognitive load,
// and per file below the type-safety threshold.
func PromptsSection(report *scoring.ScoreReport, t config.Thresholds) string {
	var b strings.Builder
	b.WriteString("## Agent Prompts for Remediation (CRAFT Format)\n\n")

	for _, mod := range report.GodModules {
		fmt.Fprintf(&b, "### Project Issue: God Module `%s`\n", mod)
		b.WriteString(CRAFT{
			Context: "You are a Software Architect specializing in modular system design.",
			Request: fmt.Sprintf("Decompose the God Module `%s` to reduce context pressure.", mod),
			Actions: []string{
				"Identify distinct responsibilities within the module.",
				"Extract logic into cohesive sub-modules.",
				"Refactor imports to maintain functionality.",
			},
			Frame:    fmt.Sprintf("Inbound imports must stay below %d. Maintain existing logic.", t.GodModuleInboundLimit),
			Template: "A refactoring plan followed by the new module code structure.",
		}.Format())
		b.WriteString("\n\n")
	}

	redByFile := make(map[string][]string)
	for _, p := range report.Penalties {
		if p.Category == scoring.CategoryCognitiveLoad && p.Points <= -15 {
			file := fileOfFunction(report, p.Target)
			redByFile[file] = append(redByFile[file], p.Target)
		}
	}

	for _, fs := range report.Files {
		if names := redByFile[fs.Path]; len(names) > 0 {
			quoted := make([]string, len(names))
			for i, n := range names {
				quoted[i] = "`" + n + "`"
			}
			fmt.Fprintf(&b, "### File: `%s` - High Cognitive Load\n", fs.Path)
			b.WriteString(CRAFT{
				Context: "You are a Senior Python Engineer focused on code maintainability.",
				Request: fmt.Sprintf("Refactor functions in `%s` with Red ACL scores.", fs.Path),
				Actions: []string{
					"Target functions: " + strings.Join(quoted, ", ") + ".",
					"Extract nested logic into smaller helper functions.",
					fmt.Sprintf("Ensure all units result in an ACL score < %.0f.", t.ACLYellow),
				},
				Frame:    "Keep functions under 50 lines. Ensure all tests pass.",
				Template: "Markdown code blocks for the refactored code.",
			}.Format())
			b.WriteString("\n\n")
		}

		if hasPenalty(fs.Penalties, scoring.CategoryMissingTypes) {
			fmt.Fprintf(&b, "### File: `%s` - Low Type Safety\n", fs.Path)
			b.WriteString(CRAFT{
				Context: "You are a Python Developer focused on static analysis.",
				Request: fmt.Sprintf("Add PEP 484 type hints to `%s`.", fs.Path),
				Actions: []string{
					"Analyze functions missing explicit type signatures.",
					"Add comprehensive type hints to arguments and return values.",
					"Use the `typing` module for complex structures.",
				},
				Frame:    fmt.Sprintf("Target %.0f%% type coverage. Do not change runtime logic.", t.TypeSafetyMinimum*100),
				Template: "The full updated content of the Python file.",
			}.Format())
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// Recommendations renders a RECOMMENDATIONS.md body from the report.
func Recommendations(report *scoring.ScoreReport, missingDocs []string) string {
	type row struct {
		finding, impact, action string
	}
	var rows []row

	for _, o := range report.TopOffenders {
		if o.Complexity > 20 {
			rows = append(rows, row{
				finding: "High Complexity: " + o.File,
				impact:  "Context window overflow.",
				action:  "Refactor units.",
			})
		}
	}
	for _, cycle := range report.Cycles {
		rows = append(rows, row{
			finding: "Circular Dependency: " + strings.Join(cycle, " -> "),
			impact:  "Recursive loops.",
			action:  "Use dependency injection.",
		})
	}
	for _, fs := range report.Files {
		if hasPenalty(fs.Penalties, scoring.CategoryMissingTypes) {
			rows = append(rows, row{
				finding: "Low Type Safety: " + fs.Path,
				impact:  "Hallucination of signatures.",
				action:  "Add PEP 484 hints.",
			})
		}
	}
	for _, doc := range missingDocs {
		if strings.EqualFold(doc, "AGENTS.md") {
			rows = append(rows, row{
				finding: "Missing AGENTS.md",
				impact:  "Agent guesses repository structure.",
				action:  "Create AGENTS.md.",
			})
		}
	}

	if len(rows) == 0 {
		return "# Recommendations\n\nYour codebase looks Agent-Ready!\n"
	}

	var b strings.Builder
	b.WriteString("# Recommendations\n\n")
	b.WriteString("| Finding | Agent Impact | Recommendation |\n")
	b.WriteString("| :--- | :--- | :--- |\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.finding, r.impact, r.action)
	}
	return b.String()
}

func hasPenalty(penalties []scoring.PenaltyRecord, category string) bool {
	for _, p := range penalties {
		if p.Category == category {
			return true
		}
	}
	return false
}

func fileOfFunction(report *scoring.ScoreReport, name string) string {
	for _, fs := range report.Files {
		for _, p := range fs.Penalties {
			if p.Target == name {
				return fs.Path
			}
		}
	}
	return ""
}
