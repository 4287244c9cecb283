package engine

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
)

// FormatResult renders res as a plain-text report for terminals.
func FormatResult(res signals.AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s): %d/100\n", modeTitle(res.Mode), res.Catalog, res.Score)
	fmt.Fprintf(&sb, "%s\n", res.Summary)

	switch res.Mode {
	case signals.ModeJobPosting:
		writeList(&sb, "Required", findingLabels(res.Required))
		writeList(&sb, "Nice to have", findingLabels(res.Optional))
		if res.Experience != nil && res.Experience.Detected() {
			fmt.Fprintf(&sb, "\nExperience: %s (%s confidence)\n", res.Experience.Level, res.Experience.Confidence)
		}
		var salary []string
		for _, h := range res.SalaryHints {
			salary = append(salary, h.Name)
		}
		writeList(&sb, "Salary", salary)
		var flags []string
		for _, f := range res.RedFlags {
			flags = append(flags, fmt.Sprintf("%s [%s]", f.Name, f.Severity))
		}
		writeList(&sb, "Red flags", flags)
		writeList(&sb, "Benefits", findingLabels(res.Benefits))
	case signals.ModeSkillsGap:
		var matched []string
		for _, m := range res.Matched {
			matched = append(matched, m.Name)
		}
		writeList(&sb, "Matched", matched)
		var gaps []string
		for _, g := range res.Gaps {
			line := fmt.Sprintf("%s [%s]", g.Skill.Name, g.Priority)
			if g.LearningTime != "" {
				line += ", " + g.LearningTime
			}
			gaps = append(gaps, line)
		}
		writeList(&sb, "Gaps", gaps)
		writeList(&sb, "Extras", findingLabels(res.Extras))
	}

	if len(res.Categories) > 0 {
		var cats []string
		for _, c := range res.Categories {
			cats = append(cats, fmt.Sprintf("%s %d%%", c.Category, c.Coverage))
		}
		writeList(&sb, "Coverage", cats)
	}

	if len(res.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for i, r := range res.Recommendations {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, r)
		}
	}
	return sb.String()
}

func modeTitle(m signals.Mode) string {
	if m == signals.ModeSkillsGap {
		return "Skills gap"
	}
	return "Job posting"
}

func findingLabels(fs []signals.Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(sb, "  - %s\n", it)
	}
}
