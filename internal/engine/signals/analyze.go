package signals

import "github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"

// Tables is the set of catalogs one analysis runs against.
type Tables struct {
	Selector   catalog.Selector
	Skills     *catalog.Catalog
	Experience *catalog.Catalog
	Salary     *catalog.Catalog
	RedFlags   *catalog.Catalog
	Benefits   *catalog.Catalog
}

// EmbeddedTables returns the built-in tables with sel's skill table.
func EmbeddedTables(sel catalog.Selector) Tables {
	return Tables{
		Selector:   sel,
		Skills:     catalog.Load(sel),
		Experience: catalog.Table(catalog.TableExperience),
		Salary:     catalog.Table(catalog.TableSalary),
		RedFlags:   catalog.Table(catalog.TableRedFlags),
		Benefits:   catalog.Table(catalog.TableBenefits),
	}
}

// Engine runs analyses. It holds only read-only state and is safe for concurrent use.
type Engine struct {
	tables  Tables
	matcher *Matcher
}

// New returns an engine over t. A nil table matches nothing; a nil classifier
// means DefaultClassifier.
func New(t Tables, c *Classifier) *Engine {
	empty := func(cat *catalog.Catalog) *catalog.Catalog {
		if cat == nil {
			return catalog.Compile("", nil)
		}
		return cat
	}
	t.Skills = empty(t.Skills)
	t.Experience = empty(t.Experience)
	t.Salary = empty(t.Salary)
	t.RedFlags = empty(t.RedFlags)
	t.Benefits = empty(t.Benefits)
	return &Engine{tables: t, matcher: NewMatcher(c)}
}

// AnalyzeSingleText decodes a job posting with the built-in tables. An unknown
// selector falls back to JobSignals.
func AnalyzeSingleText(text string, sel catalog.Selector) AnalysisResult {
	if !sel.Valid() {
		sel = catalog.JobSignals
	}
	return New(EmbeddedTables(sel), nil).AnalyzeSingleText(text)
}

// AnalyzeTwoTexts compares a résumé (primary) against a job description
// (secondary) with the built-in tables. An unknown selector falls back to SkillTaxonomy.
func AnalyzeTwoTexts(primary, secondary string, sel catalog.Selector) AnalysisResult {
	if !sel.Valid() {
		sel = catalog.SkillTaxonomy
	}
	return New(EmbeddedTables(sel), nil).AnalyzeTwoTexts(primary, secondary)
}

// AnalyzeSingleText extracts requirements, experience, salary, red flags and
// benefits from a posting and scores it.
func (e *Engine) AnalyzeSingleText(text string) AnalysisResult {
	res := AnalysisResult{
		Mode:    ModeJobPosting,
		Catalog: e.tables.Selector,
		Stats:   Stats(text),
	}
	doc := newDocument(text)
	if doc.blank() {
		res.Score = BaselineScore
		res.Categories = []CategoryBucket{}
		res.Summary = NoSignalsSummary
		res.Recommendations = []string{EmptyPostingRecommendation}
		return res
	}

	s := e.aggregatePosting(doc)
	res.Score = postingScore(s)
	res.Required = s.required
	res.Optional = s.optional
	exp := s.experience
	res.Experience = &exp
	res.SalaryHints = s.salary
	res.RedFlags = s.redFlags
	res.Benefits = s.benefits
	res.Categories = nonNil(s.categories)
	res.Summary = postingSummary(s, res.Score)
	res.Recommendations = postingRecommendations(s, res.Score)
	return res
}

// AnalyzeTwoTexts classifies every skill as matched, gap or extra and scores the
// share of the job's skills the résumé covers.
func (e *Engine) AnalyzeTwoTexts(primary, secondary string) AnalysisResult {
	second := Stats(secondary)
	res := AnalysisResult{
		Mode:           ModeSkillsGap,
		Catalog:        e.tables.Selector,
		Stats:          Stats(primary),
		SecondaryStats: &second,
	}
	sdoc := newDocument(secondary)
	if sdoc.blank() {
		res.Categories = []CategoryBucket{}
		res.Summary = NoSignalsSummary
		res.Recommendations = []string{EmptyJobRecommendation}
		return res
	}

	g := e.aggregateGap(newDocument(primary), sdoc)
	res.Score = gapScore(g)
	res.Matched = g.matched
	res.Gaps = g.gaps
	res.Extras = g.extras
	res.Categories = nonNil(g.categories)
	res.Summary = gapSummary(g, res.Score)
	res.Recommendations = gapRecommendations(g, res.Score)
	return res
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
