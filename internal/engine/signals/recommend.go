package signals

import (
	"fmt"
	"strings"
)

// Fixed recommendation sentences.
const (
	NoSignalsSummary             = "No signals were found in the provided text."
	EmptyPostingRecommendation   = "Paste the full job posting, including requirements and benefits, to get an analysis."
	EmptyJobRecommendation       = "Paste a job description that lists its requirements to compare your résumé against."
	NoSalaryRecommendation       = "The posting does not disclose a salary; ask for the compensation range before investing time in interviews."
	NoRequirementsRecommendation = "The job description names no skills this catalog recognizes; compare against a more detailed posting."

	longRequirementList = 10
)

func postingBand(score int) string {
	switch {
	case score >= 75:
		return "This posting is transparent and well structured; it is worth applying."
	case score >= 50:
		return "This posting is reasonable but leaves some questions open; clarify them early in the process."
	case score >= 25:
		return "This posting shows several warning signs; apply with caution and ask pointed questions."
	}
	return "This posting has serious problems; consider skipping it."
}

func gapBand(score int) string {
	switch {
	case score >= 80:
		return "Strong match: your résumé covers nearly everything this job asks for. Apply."
	case score >= 60:
		return "Good match: close the few remaining gaps or address them in your cover letter."
	case score >= 40:
		return "Partial match: focus on the high-priority gaps before applying."
	}
	return "Weak match: this role needs significant upskilling; look for closer openings first."
}

// postingRecommendations: score band, then category tips, then the nice-to-have note.
func postingRecommendations(s postingSignals, score int) []string {
	recs := []string{postingBand(score)}

	if s.salaryMissing() {
		recs = append(recs, NoSalaryRecommendation)
	} else if !s.rangeDisclosed() {
		recs = append(recs, "Salary wording is vague; ask for a concrete range.")
	}
	for _, f := range s.redFlags {
		line := fmt.Sprintf("Red flag (%s): %q.", f.Severity, f.MatchedText)
		if f.Explanation != "" {
			line += " " + f.Explanation
		}
		recs = append(recs, line)
	}
	switch {
	case !s.experience.Detected():
		recs = append(recs, "The expected experience level is not stated; ask which seniority the team is hiring for.")
	case s.experience.Confidence == ConfidenceMedium:
		recs = append(recs, fmt.Sprintf("Seniority is only implied (%q); confirm the years of experience expected.", s.experience.Evidence))
	}
	if len(s.benefits) == 0 {
		recs = append(recs, "No benefits are mentioned; ask about leave, insurance and remote policy.")
	}
	if len(s.required) > longRequirementList {
		recs = append(recs, fmt.Sprintf("The posting lists %d required skills; it is likely a wish list, so apply if you meet most of them.", len(s.required)))
	}

	if len(s.optional) > 0 {
		recs = append(recs, fmt.Sprintf("Nice-to-have skills: %s. Missing them should not stop you from applying.", findingNames(s.optional)))
	}
	return recs
}

// gapRecommendations: high then medium gaps, score band, category tips, extras note.
func gapRecommendations(g gapSignals, score int) []string {
	var recs []string
	var low []string
	for _, gap := range g.gaps {
		switch gap.Priority {
		case PriorityHigh:
			recs = append(recs, gapLine("Prioritize", gap))
		case PriorityMedium:
			recs = append(recs, gapLine("Consider", gap))
		default:
			low = append(low, gap.Skill.Name)
		}
	}

	if g.relevant() == 0 {
		recs = append(recs, NoRequirementsRecommendation)
	} else {
		recs = append(recs, gapBand(score))
	}

	for _, b := range g.categories {
		if b.Coverage < 50 {
			recs = append(recs, fmt.Sprintf("Coverage in %s is %d%%; this area needs the most work.", categoryLabel(b.Category), b.Coverage))
		}
	}
	if len(low) > 0 {
		recs = append(recs, fmt.Sprintf("Lower-priority gaps to pick up later: %s.", strings.Join(low, ", ")))
	}

	if len(g.extras) > 0 {
		recs = append(recs, fmt.Sprintf("You also bring %s; mention them if they fit the role.", findingNames(g.extras)))
	}
	return recs
}

func gapLine(verb string, g Gap) string {
	line := fmt.Sprintf("%s learning %s (%s priority)", verb, g.Skill.Name, g.Priority)
	if g.LearningTime != "" {
		line += ", typically " + g.LearningTime
	}
	line += "."
	if len(g.Resources) > 0 {
		line += " Start with " + g.Resources[0] + "."
	}
	return line
}

func postingSummary(s postingSignals, score int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job posting score %d/100: %d required and %d optional skills", score, len(s.required), len(s.optional))
	if s.experience.Detected() {
		fmt.Fprintf(&b, ", %s level (%s confidence)", s.experience.Level, s.experience.Confidence)
	}
	fmt.Fprintf(&b, ", %d red flag(s), %d benefit(s)", len(s.redFlags), len(s.benefits))
	if s.salaryMissing() {
		b.WriteString(", no salary information")
	}
	b.WriteString(".")
	return b.String()
}

func gapSummary(g gapSignals, score int) string {
	if g.relevant() == 0 {
		return "The job description names no recognized skills."
	}
	high := 0
	for _, gap := range g.gaps {
		if gap.Priority == PriorityHigh {
			high++
		}
	}
	return fmt.Sprintf("Résumé covers %d of %d skills named in the job description (%d%%); %d gap(s), %d high priority.",
		len(g.matched), g.relevant(), score, len(g.gaps), high)
}

func findingNames(fs []Finding) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

// categoryLabel turns "data_ml" into "data ml".
func categoryLabel(c string) string { return strings.ReplaceAll(c, "_", " ") }
