package signals

import "github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"

// Mode names the kind of analysis that produced a result.
type Mode string

const (
	ModeJobPosting Mode = "job_posting" // one text
	ModeSkillsGap  Mode = "skills_gap"  // resume vs job posting
)

// Priority ranks a missing skill.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities: high > medium > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Confidence of the detected experience level.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"   // explicit years
	ConfidenceMedium Confidence = "medium" // seniority wording only
	ConfidenceNone   Confidence = "none"
)

// ExperienceLevel is the seniority a posting asks for.
type ExperienceLevel struct {
	Level      string     `json:"level,omitempty"`
	Confidence Confidence `json:"confidence"`
	Evidence   string     `json:"evidence,omitempty"`
	Position   int        `json:"position"`
}

// Detected reports whether any level was found.
func (e ExperienceLevel) Detected() bool { return e.Confidence != ConfidenceNone && e.Level != "" }

// SalaryHint is one compensation signal. Missing is set on the synthetic hint
// emitted when a posting says nothing about pay.
type SalaryHint struct {
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	MatchedText     string `json:"matched_text,omitempty"`
	Position        int    `json:"position"`
	DisclosesAmount bool   `json:"discloses_amount"`
	Missing         bool   `json:"missing,omitempty"`
	Explanation     string `json:"explanation,omitempty"`
}

// RedFlag is a warning sign found in a posting.
type RedFlag struct {
	Name        string       `json:"name"`
	Severity    catalog.Tier `json:"severity"`
	Category    string       `json:"category,omitempty"`
	MatchedText string       `json:"matched_text"`
	Position    int          `json:"position"`
	Explanation string       `json:"explanation,omitempty"`
}

// SkillMatch is a skill found in both texts.
type SkillMatch struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Tier     catalog.Tier `json:"tier,omitempty"`
	Primary  Finding      `json:"primary"`
	Second   Finding      `json:"secondary"`
}

// Gap is a skill the secondary text asks for and the primary text lacks.
// Skill is the occurrence in the secondary text.
type Gap struct {
	Skill        Finding  `json:"skill"`
	Priority     Priority `json:"priority"`
	LearningTime string   `json:"learning_time,omitempty"`
	Resources    []string `json:"resources,omitempty"`
}

// CategoryBucket groups findings of one category.
type CategoryBucket struct {
	Category string    `json:"category"`
	Matched  []Finding `json:"matched"`
	Gaps     []Gap     `json:"gaps,omitempty"`
	Coverage int       `json:"coverage_percent"`
}

// TextStats are raw measurements of an input text.
type TextStats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Sentences  int `json:"sentences"`
	Lines      int `json:"lines"`
}

// AnalysisResult is what both entry points return. Sections that do not apply to
// the mode are left empty.
type AnalysisResult struct {
	Mode    Mode             `json:"mode"`
	Catalog catalog.Selector `json:"catalog"`
	Score   int              `json:"score"`

	// job posting
	Required    []Finding        `json:"required,omitempty"`
	Optional    []Finding        `json:"optional,omitempty"`
	Experience  *ExperienceLevel `json:"experience,omitempty"`
	SalaryHints []SalaryHint     `json:"salary_hints,omitempty"`
	RedFlags    []RedFlag        `json:"red_flags,omitempty"`
	Benefits    []Finding        `json:"benefits,omitempty"`

	// skills gap
	Matched []SkillMatch `json:"matched,omitempty"`
	Gaps    []Gap        `json:"gaps,omitempty"`
	Extras  []Finding    `json:"extras,omitempty"`

	Categories      []CategoryBucket `json:"categories"`
	Summary         string           `json:"summary"`
	Recommendations []string         `json:"recommendations"`
	Stats           TextStats        `json:"stats"`
	SecondaryStats  *TextStats       `json:"secondary_stats,omitempty"`
}

// FindingCount is the number of distinct findings in r across all sections.
func (r AnalysisResult) FindingCount() int {
	n := len(r.Required) + len(r.Optional) + len(r.RedFlags) + len(r.Benefits) +
		len(r.Matched) + len(r.Gaps) + len(r.Extras)
	for _, h := range r.SalaryHints {
		if !h.Missing {
			n++
		}
	}
	if r.Experience != nil && r.Experience.Detected() {
		n++
	}
	return n
}
