package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, name-deduplicated, compiled table of entries.
type Catalog struct {
	table      string
	version    int
	entries    []*Entry
	byName     map[string]*Entry
	categories []string
	skipped    []SkippedPattern
}

// tableFile is the on-disk layout of one YAML table.
type tableFile struct {
	Version int     `yaml:"version"`
	Table   string  `yaml:"table"`
	Entries []Entry `yaml:"entries"`
}

// Parse decodes a YAML table and compiles it. Only YAML syntax errors are returned;
// bad patterns and entries are skipped and reported through Skipped.
func Parse(data []byte) (*Catalog, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	c := Compile(f.Table, f.Entries)
	c.version = f.Version
	return c, nil
}

// Compile builds a catalog from raw entries. Entries are copied; raw is not retained.
// A pattern that does not compile is skipped, and an entry left without patterns is
// dropped. Later entries whose name repeats an earlier one are dropped.
func Compile(table string, raw []Entry) *Catalog {
	c := &Catalog{
		table:  table,
		byName: make(map[string]*Entry, len(raw)),
	}
	seenCategory := make(map[string]bool)

	for i := range raw {
		e := raw[i]
		e.Name = strings.TrimSpace(e.Name)
		e.Category = strings.TrimSpace(e.Category)
		if e.Name == "" {
			c.skip(fmt.Sprintf("#%d", i), "", "entry has no name")
			continue
		}
		k := key(e.Name)
		if _, dup := c.byName[k]; dup {
			c.skip(e.Name, "", "duplicate entry name")
			continue
		}
		if e.Tier != "" && !e.Tier.Valid() {
			slog.Warn("catalog: unknown tier", slog.String("table", table),
				slog.String("entry", e.Name), slog.String("tier", string(e.Tier)))
		}

		e.Patterns = append([]PatternSpec(nil), e.Patterns...)
		e.compiled = make([]*Pattern, 0, len(e.Patterns))
		for _, spec := range e.Patterns {
			p, err := compilePattern(spec)
			if err != nil {
				c.skip(e.Name, spec.Source, err.Error())
				continue
			}
			e.compiled = append(e.compiled, p)
		}
		if len(e.compiled) == 0 {
			c.skip(e.Name, "", "no usable patterns")
			continue
		}

		entry := &e
		c.entries = append(c.entries, entry)
		c.byName[k] = entry
		if !seenCategory[e.Category] {
			seenCategory[e.Category] = true
			c.categories = append(c.categories, e.Category)
		}
	}
	return c
}

func (c *Catalog) skip(entry, source, reason string) {
	slog.Warn("catalog: skipped pattern",
		slog.String("table", c.table),
		slog.String("entry", entry),
		slog.String("source", source),
		slog.String("reason", reason),
	)
	c.skipped = append(c.skipped, SkippedPattern{Table: c.table, Entry: entry, Source: source, Reason: reason})
}

// Table returns the table name.
func (c *Catalog) Table() string { return c.table }

// Version returns the data version declared by the table file (0 when built with Compile).
func (c *Catalog) Version() int { return c.version }

// Len returns the number of usable entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the entries in declaration order. The slice is a copy;
// the entries themselves are shared and must not be modified.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by canonical name, ignoring case.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	e, ok := c.byName[key(name)]
	return e, ok
}

// Categories returns category names in order of first appearance.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Skipped returns everything dropped while compiling.
func (c *Catalog) Skipped() []SkippedPattern {
	out := make([]SkippedPattern, len(c.skipped))
	copy(out, c.skipped)
	return out
}
