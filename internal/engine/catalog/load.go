package catalog

import (
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Table names of the embedded data files (data/<name>.yaml).
const (
	TableJobSkills     = "job_skills"
	TableExperience    = "experience"
	TableSalary        = "salary"
	TableRedFlags      = "red_flags"
	TableBenefits      = "benefits"
	TableSkillTaxonomy = "skill_taxonomy"
)

// Experience table categories.
const (
	CategoryYears = "years" // explicit years of experience, high confidence
	CategoryTitle = "title" // seniority words only, medium confidence
)

// Selector picks the skill table an analysis runs against.
type Selector string

const (
	JobSignals    Selector = "job_signals"
	SkillTaxonomy Selector = "skill_taxonomy"
)

// Selectors lists every valid selector.
func Selectors() []Selector { return []Selector{JobSignals, SkillTaxonomy} }

// Valid reports whether s is a known selector.
func (s Selector) Valid() bool { return s == JobSignals || s == SkillTaxonomy }

// SkillTable returns the table name backing s.
func (s Selector) SkillTable() string {
	if s == SkillTaxonomy {
		return TableSkillTaxonomy
	}
	return TableJobSkills
}

// ParseSelector resolves a selector name. Dashes and case are tolerated.
func ParseSelector(name string) (Selector, error) {
	s := Selector(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if !s.Valid() {
		return "", fmt.Errorf("unknown catalog %q (valid: %s, %s)", name, JobSignals, SkillTaxonomy)
	}
	return s, nil
}

type lazyTable struct {
	once sync.Once
	name string
	cat  *Catalog
}

var tables = func() map[string]*lazyTable {
	m := make(map[string]*lazyTable)
	for _, n := range TableNames() {
		m[n] = &lazyTable{name: n}
	}
	return m
}()

// TableNames lists the embedded tables in a stable order.
func TableNames() []string {
	return []string{
		TableJobSkills, TableExperience, TableSalary,
		TableRedFlags, TableBenefits, TableSkillTaxonomy,
	}
}

// Table returns the compiled embedded table with the given name. The first call for a
// name compiles it; later calls return the same *Catalog. Unknown names and unreadable
// data yield an empty catalog, never an error.
func Table(name string) *Catalog {
	lt, ok := tables[name]
	if !ok {
		return Compile(name, nil)
	}
	lt.once.Do(func() {
		lt.cat = loadEmbedded(lt.name)
	})
	return lt.cat
}

// Load returns the skill table for sel.
func Load(sel Selector) *Catalog { return Table(sel.SkillTable()) }

func loadEmbedded(name string) *Catalog {
	path := "data/" + name + ".yaml"
	data, err := dataFS.ReadFile(path)
	if err != nil {
		slog.Error("catalog: read embedded table", slog.String("path", path), slog.Any("error", err))
		return Compile(name, nil)
	}
	c, err := Parse(data)
	if err != nil {
		slog.Error("catalog: embedded table unusable", slog.String("path", path), slog.Any("error", err))
		return Compile(name, nil)
	}
	if c.table != name {
		slog.Warn("catalog: table name mismatch", slog.String("file", path), slog.String("declared", c.table))
		c.table = name
	}
	slog.Debug("catalog: loaded", slog.String("table", name), slog.Int("entries", c.Len()),
		slog.Int("version", c.version), slog.Int("skipped", len(c.skipped)))
	return c
}

// AllSkipped compiles every embedded table and returns what was dropped, sorted by table.
func AllSkipped() []SkippedPattern {
	var out []SkippedPattern
	for _, n := range TableNames() {
		out = append(out, Table(n).Skipped()...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Table < out[j].Table })
	return out
}
