// Package catalog holds the static term tables the signal engine matches against:
// job-posting skills, experience markers, salary hints, red flags, benefits and the
// unified skill taxonomy used for resume/job comparison.
//
// Tables are plain YAML data embedded in the binary. Each table is compiled once on
// first use and is read-only afterwards, so a *Catalog may be shared freely between
// goroutines.
package catalog

import (
	"fmt"
	"strings"
)

// Tier is the importance or severity of an entry. Skill tables use
// essential/important/nice-to-have; red-flag tables use high/medium/low.
type Tier string

const (
	TierEssential  Tier = "essential"
	TierImportant  Tier = "important"
	TierNiceToHave Tier = "nice-to-have"
	TierHigh       Tier = "high"
	TierMedium     Tier = "medium"
	TierLow        Tier = "low"
)

// Rank returns the position of t in the fixed total order used for sorting.
// Higher is more important. Unknown tiers rank 0.
func (t Tier) Rank() int {
	switch t {
	case TierEssential, TierHigh:
		return 3
	case TierImportant, TierMedium:
		return 2
	case TierNiceToHave, TierLow:
		return 1
	}
	return 0
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool { return t.Rank() > 0 }

// PatternKind tells how a PatternSpec source is interpreted.
type PatternKind int

const (
	PatternLiteral PatternKind = iota // case-insensitive alias
	PatternRegex                      // RE2 expression, compiled case-insensitive
)

func (k PatternKind) String() string {
	if k == PatternRegex {
		return "regex"
	}
	return "literal"
}

// PatternSpec is one way of spotting an entry in text.
type PatternSpec struct {
	Kind   PatternKind
	Source string
}

// Literal returns a literal alias pattern.
func Literal(s string) PatternSpec { return PatternSpec{Kind: PatternLiteral, Source: s} }

// Regex returns a regular-expression pattern.
func Regex(s string) PatternSpec { return PatternSpec{Kind: PatternRegex, Source: s} }

func (p PatternSpec) String() string {
	if p.Kind == PatternRegex {
		return "/" + p.Source + "/"
	}
	return fmt.Sprintf("%q", p.Source)
}

// Aux is optional metadata attached to an entry.
type Aux struct {
	Explanation     string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Resources       []string `yaml:"resources,omitempty" json:"resources,omitempty"`
	LearningTime    string   `yaml:"learning_time,omitempty" json:"learning_time,omitempty"`
	Level           string   `yaml:"level,omitempty" json:"level,omitempty"`
	DisclosesAmount bool     `yaml:"discloses_amount,omitempty" json:"discloses_amount,omitempty"`
	Synonyms        []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// Entry is one named concept with its match patterns.
// Entries returned by a Catalog must be treated as read-only.
type Entry struct {
	Name     string        `yaml:"name"`
	Patterns []PatternSpec `yaml:"match"`
	Category string        `yaml:"category"`
	Tier     Tier          `yaml:"tier"`
	Aux      Aux           `yaml:",inline"`

	compiled []*Pattern
}

// Compiled returns the usable patterns of e in declaration order.
// Patterns that failed to compile are not included.
func (e *Entry) Compiled() []*Pattern { return e.compiled }

// key is the canonical, case-folded name used for deduplication.
func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// SkippedPattern records a pattern (or a whole entry) dropped while compiling a table.
type SkippedPattern struct {
	Table  string `json:"table"`
	Entry  string `json:"entry"`
	Source string `json:"source,omitempty"`
	Reason string `json:"reason"`
}
