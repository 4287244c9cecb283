package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ShortAliasMax is the longest literal alias that still requires word boundaries.
// "r" must match "I write R code" but not "director".
const ShortAliasMax = 3

// Pattern is a compiled PatternSpec.
type Pattern struct {
	spec     PatternSpec
	literal  string // lowered alias, PatternLiteral only
	boundary bool
	re       *regexp.Regexp
}

// Spec returns the source the pattern was compiled from.
func (p *Pattern) Spec() PatternSpec { return p.spec }

// Kind returns the pattern kind.
func (p *Pattern) Kind() PatternKind { return p.spec.Kind }

// Literal returns the ASCII-lowered alias of a literal pattern.
func (p *Pattern) Literal() string { return p.literal }

// WordBoundary reports whether a literal must be delimited by non-word characters.
func (p *Pattern) WordBoundary() bool { return p.boundary }

// Regexp returns the compiled expression of a regex pattern.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

var errEmptyPattern = errors.New("empty pattern")

// compilePattern turns a spec into a matcher. Regex sources are made case-insensitive.
func compilePattern(spec PatternSpec) (*Pattern, error) {
	src := strings.TrimSpace(spec.Source)
	if src == "" {
		return nil, errEmptyPattern
	}
	switch spec.Kind {
	case PatternRegex:
		re, err := regexp.Compile("(?i)" + src)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", spec, err)
		}
		return &Pattern{spec: spec, re: re}, nil
	case PatternLiteral:
		lit := LowerASCII(src)
		return &Pattern{spec: spec, literal: lit, boundary: len(lit) <= ShortAliasMax}, nil
	}
	return nil, fmt.Errorf("unknown pattern kind %d", spec.Kind)
}

// LowerASCII lowercases ASCII letters only, so byte offsets in the result
// line up with the input.
func LowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// UnmarshalYAML accepts either a bare string (literal alias) or a mapping
// with a single "regex" or "literal" key.
func (p *PatternSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Literal(node.Value)
		return nil
	case yaml.MappingNode:
		var m struct {
			Regex   string `yaml:"regex"`
			Literal string `yaml:"literal"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		switch {
		case m.Regex != "" && m.Literal != "":
			return fmt.Errorf("line %d: pattern has both regex and literal", node.Line)
		case m.Regex != "":
			*p = Regex(m.Regex)
		default:
			*p = Literal(m.Literal)
		}
		return nil
	}
	return fmt.Errorf("line %d: pattern must be a string or a mapping", node.Line)
}

// MarshalYAML mirrors UnmarshalYAML.
func (p PatternSpec) MarshalYAML() (any, error) {
	if p.Kind == PatternRegex {
		return map[string]string{"regex": p.Source}, nil
	}
	return p.Source, nil
}
