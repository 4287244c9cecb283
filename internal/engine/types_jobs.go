package engine

// --- Analysis tool inputs ---

type JobDecodeInput struct {
	JobText string `json:"job_text" jsonschema:"Full job posting text. Plain text, markdown or HTML (HTML is converted before analysis)"`
	Catalog string `json:"catalog,omitempty" jsonschema:"Skill catalog: job_signals (default) or skill_taxonomy"`
}

type SkillGapInput struct {
	Resume         string `json:"resume" jsonschema:"Resume text (plain text, markdown or HTML)"`
	JobDescription string `json:"job_description" jsonschema:"Target job description (plain text, markdown or HTML)"`
	Catalog        string `json:"catalog,omitempty" jsonschema:"Skill catalog: skill_taxonomy (default) or job_signals"`
}

type AnalysisHistoryInput struct {
	Mode  string `json:"mode,omitempty" jsonschema:"Filter by mode: job_posting or skills_gap (default: both)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max rows to return, newest first (default 20, max 200)"`
}

type CatalogInfoInput struct {
	Catalog string `json:"catalog,omitempty" jsonschema:"Only describe this table (job_skills, experience, salary, red_flags, benefits, skill_taxonomy). Default: all tables"`
	Entries bool   `json:"entries,omitempty" jsonschema:"Include entry names per category"`
}
