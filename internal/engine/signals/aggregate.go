package signals

import (
	"math"
	"sort"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

// NoSalaryHint is the name of the hint emitted when a posting never mentions pay.
const NoSalaryHint = "No salary information"

// postingSignals is everything single-text mode extracts from a posting.
type postingSignals struct {
	skills     []Finding // catalog order
	required   []Finding
	optional   []Finding
	experience ExperienceLevel
	salary     []SalaryHint
	redFlags   []RedFlag
	benefits   []Finding
	categories []CategoryBucket
}

func (s postingSignals) rangeDisclosed() bool {
	for _, h := range s.salary {
		if h.DisclosesAmount {
			return true
		}
	}
	return false
}

func (s postingSignals) salaryMissing() bool {
	return len(s.salary) == 1 && s.salary[0].Missing
}

func (e *Engine) aggregatePosting(doc document) postingSignals {
	var s postingSignals

	s.skills = e.matcher.scan(doc, e.tables.Skills)
	for _, f := range s.skills {
		if f.Emphasized {
			s.required = append(s.required, f)
		} else {
			s.optional = append(s.optional, f)
		}
	}
	s.categories = postingCategories(s.skills, e.tables.Skills)

	s.experience = detectExperience(e.matcher.scan(doc, e.tables.Experience))

	for _, f := range e.matcher.scan(doc, e.tables.Salary) {
		s.salary = append(s.salary, SalaryHint{
			Name:            f.Name,
			Category:        f.Category,
			MatchedText:     f.MatchedText,
			Position:        f.Position,
			DisclosesAmount: f.Entry.Aux.DisclosesAmount,
			Explanation:     f.Entry.Aux.Explanation,
		})
	}
	if len(s.salary) == 0 {
		s.salary = []SalaryHint{{
			Name:        NoSalaryHint,
			Missing:     true,
			Explanation: "The posting does not mention compensation.",
		}}
	}

	for _, f := range e.matcher.scan(doc, e.tables.RedFlags) {
		s.redFlags = append(s.redFlags, RedFlag{
			Name:        f.Name,
			Severity:    f.Tier,
			Category:    f.Category,
			MatchedText: f.MatchedText,
			Position:    f.Position,
			Explanation: f.Entry.Aux.Explanation,
		})
	}
	sort.SliceStable(s.redFlags, func(i, j int) bool {
		return s.redFlags[i].Severity.Rank() > s.redFlags[j].Severity.Rank()
	})

	s.benefits = e.matcher.scan(doc, e.tables.Benefits)
	return s
}

// detectExperience picks the level: the earliest explicit-years finding, else the
// earliest seniority-word finding, else none.
func detectExperience(findings []Finding) ExperienceLevel {
	var years, title *Finding
	for i := range findings {
		f := &findings[i]
		switch f.Category {
		case catalog.CategoryYears:
			if years == nil || f.Position < years.Position {
				years = f
			}
		case catalog.CategoryTitle:
			if title == nil || f.Position < title.Position {
				title = f
			}
		}
	}
	level := func(f *Finding, c Confidence) ExperienceLevel {
		name := f.Entry.Aux.Level
		if name == "" {
			name = f.Name
		}
		return ExperienceLevel{Level: name, Confidence: c, Evidence: f.MatchedText, Position: f.Position}
	}
	switch {
	case years != nil:
		return level(years, ConfidenceHigh)
	case title != nil:
		return level(title, ConfidenceMedium)
	}
	return ExperienceLevel{Confidence: ConfidenceNone}
}

// postingCategories groups skill findings by category. Coverage here is the share of
// the category's findings that the posting requires.
func postingCategories(skills []Finding, cat *catalog.Catalog) []CategoryBucket {
	byCat := make(map[string][]Finding)
	for _, f := range skills {
		byCat[f.Category] = append(byCat[f.Category], f)
	}
	var out []CategoryBucket
	for _, name := range cat.Categories() {
		found := byCat[name]
		if len(found) == 0 {
			continue
		}
		required := 0
		for _, f := range found {
			if f.Emphasized {
				required++
			}
		}
		out = append(out, CategoryBucket{
			Category: name,
			Matched:  found,
			Coverage: percent(required, len(found)),
		})
	}
	return out
}

// gapSignals is what two-text mode extracts.
type gapSignals struct {
	matched    []SkillMatch
	gaps       []Gap
	extras     []Finding
	categories []CategoryBucket
}

// relevant is the number of skills found in the secondary text.
func (g gapSignals) relevant() int { return len(g.matched) + len(g.gaps) }

func (e *Engine) aggregateGap(primary, secondary document) gapSignals {
	var g gapSignals
	type tally struct {
		matched []Finding
		gaps    []Gap
	}
	perCat := make(map[string]*tally)
	bucket := func(c string) *tally {
		t, ok := perCat[c]
		if !ok {
			t = &tally{}
			perCat[c] = t
		}
		return t
	}

	for _, entry := range e.tables.Skills.Entries() {
		pf, inPrimary := e.matcher.match(primary, entry)
		sf, inSecondary := e.matcher.match(secondary, entry)
		switch {
		case inPrimary && inSecondary:
			g.matched = append(g.matched, SkillMatch{
				Name:     entry.Name,
				Category: entry.Category,
				Tier:     entry.Tier,
				Primary:  pf,
				Second:   sf,
			})
			t := bucket(entry.Category)
			t.matched = append(t.matched, sf)
		case inSecondary:
			g.gaps = append(g.gaps, Gap{
				Skill:        sf,
				Priority:     GapPriority(sf.Emphasized, entry.Tier),
				LearningTime: entry.Aux.LearningTime,
				Resources:    entry.Aux.Resources,
			})
		case inPrimary:
			g.extras = append(g.extras, pf)
		}
	}

	sortGaps(g.gaps)
	for _, gap := range g.gaps {
		t := bucket(gap.Skill.Category)
		t.gaps = append(t.gaps, gap)
	}

	for _, name := range e.tables.Skills.Categories() {
		t, ok := perCat[name]
		if !ok || len(t.matched)+len(t.gaps) == 0 {
			continue
		}
		g.categories = append(g.categories, CategoryBucket{
			Category: name,
			Matched:  t.matched,
			Gaps:     t.gaps,
			Coverage: percent(len(t.matched), len(t.matched)+len(t.gaps)),
		})
	}
	return g
}

// GapPriority is the fixed decision table for a missing skill:
//
//	emphasized,    essential|important -> high
//	emphasized,    nice-to-have        -> medium
//	de-emphasized, essential           -> medium
//	anything else                      -> low
func GapPriority(emphasized bool, tier catalog.Tier) Priority {
	switch {
	case emphasized && (tier == catalog.TierEssential || tier == catalog.TierImportant):
		return PriorityHigh
	case emphasized && tier == catalog.TierNiceToHave:
		return PriorityMedium
	case !emphasized && tier == catalog.TierEssential:
		return PriorityMedium
	}
	return PriorityLow
}

// sortGaps orders by priority, highest first, keeping catalog order within a priority.
func sortGaps(gaps []Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority.Rank() > gaps[j].Priority.Rank()
	})
}

// percent is round(100*n/d) with 0 for an empty denominator.
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}
