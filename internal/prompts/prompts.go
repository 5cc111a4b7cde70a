// Package prompts lints prompt text files against LLM prompting
// heuristics and scores them on a 0-100 scale.
package prompts

import (
	"regexp"
)

// Heuristic is one scored prompt-quality dimension.
type Heuristic struct {
	Name        string
	Pattern     *regexp.Regexp
	Improvement string
	Weight      int
	Critical    bool
}

// Positive heuristics add their weight when the pattern is present.
var positive = []Heuristic{
	{
		Name:        "role_definition",
		Pattern:     regexp.MustCompile(`(?i)(you are|act as|your role)`),
		Improvement: "Add a clear persona (e.g., 'You are a Python Expert') to ground the model's latent space.",
		Weight:      25,
		Critical:    true,
	},
	{
		Name:        "cognitive_scaffolding",
		Pattern:     regexp.MustCompile(`(?i)(step by step|reasoning|think)`),
		Improvement: "Add Chain-of-Thought instructions ('Think step by step') to improve complex reasoning.",
		Weight:      25,
	},
	{
		Name:        "delimiter_hygiene",
		Pattern:     regexp.MustCompile("(<[^>]+>|'''|\"\"\"|```|\\{\\{.*?\\}\\})"),
		Improvement: "Use delimiters (like XML tags or triple quotes) to separate instructions from input data.",
		Weight:      25,
	},
	{
		Name:        "few_shot",
		Pattern:     regexp.MustCompile(`(?i)(example:|input:.*?output:)`),
		Improvement: "Include 1-3 examples (Few-Shot) to guide the model on format and style.",
		Weight:      25,
	},
}

// negativeConstraints subtracts its weight when matched; negatively
// phrased rules adhere worse than positive ones.
var negativeConstraints = Heuristic{
	Name:        "negative_constraints",
	Pattern:     regexp.MustCompile(`(?i)(don't|do not|never)`),
	Improvement: "Refactor negative constraints ('Don't do X') into positive instructions ('Do Y instead') for better adherence.",
	Weight:      10,
}

// Result is the outcome of linting one prompt.
type Result struct {
	Score        int             `json:"score"`
	Checks       map[string]bool `json:"checks"`
	Improvements []string        `json:"improvements"`
}

// Analyze evaluates prompt text against all heuristics. The score starts
// at zero, gains 25 per satisfied positive dimension, loses 10 for
// negative phrasing, and is clamped to [0, 100].
func Analyze(text string) Result {
	result := Result{Checks: make(map[string]bool, len(positive)+1)}

	for _, h := range positive {
		if h.Pattern.MatchString(text) {
			result.Checks[h.Name] = true
			result.Score += h.Weight
		} else {
			result.Checks[h.Name] = false
			result.Improvements = append(result.Improvements, h.Improvement)
		}
	}

	if negativeConstraints.Pattern.MatchString(text) {
		result.Checks[negativeConstraints.Name] = false
		result.Score -= negativeConstraints.Weight
		result.Improvements = append(result.Improvements, negativeConstraints.Improvement)
	} else {
		result.Checks[negativeConstraints.Name] = true
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return result
}
