package signals

import (
	"strings"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

// Finding is one catalog entry spotted in a text.
type Finding struct {
	Entry       *catalog.Entry `json:"-"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Tier        catalog.Tier   `json:"tier,omitempty"`
	MatchedText string         `json:"matched_text"`
	Position    int            `json:"position"`
	Emphasized  bool           `json:"emphasized"`
}

// document is an input text plus its ASCII-lowered copy (same byte offsets).
type document struct {
	text  string
	lower string
}

func newDocument(text string) document {
	return document{text: text, lower: catalog.LowerASCII(text)}
}

func (d document) blank() bool { return strings.TrimSpace(d.text) == "" }

// Matcher finds catalog entries in text.
type Matcher struct {
	classifier *Classifier
}

// NewMatcher returns a matcher that classifies hits with c (DefaultClassifier if nil).
func NewMatcher(c *Classifier) *Matcher {
	if c == nil {
		c = DefaultClassifier()
	}
	return &Matcher{classifier: c}
}

// Match looks for e in text with the default classifier.
func Match(text string, e *catalog.Entry) (Finding, bool) {
	return NewMatcher(nil).Match(text, e)
}

// Match tries e's patterns in declaration order and returns the first hit.
// Later patterns are not tried once one matches.
func (m *Matcher) Match(text string, e *catalog.Entry) (Finding, bool) {
	return m.match(newDocument(text), e)
}

func (m *Matcher) match(doc document, e *catalog.Entry) (Finding, bool) {
	if e == nil {
		return Finding{}, false
	}
	for _, p := range e.Compiled() {
		start, end, ok := find(doc, p)
		if !ok {
			continue
		}
		return Finding{
			Entry:       e,
			Name:        e.Name,
			Category:    e.Category,
			Tier:        e.Tier,
			MatchedText: doc.text[start:end],
			Position:    start,
			Emphasized:  m.classifier.Classify(doc.text, start) == Emphasized,
		}, true
	}
	return Finding{}, false
}

// find returns the first occurrence of p in doc.
func find(doc document, p *catalog.Pattern) (start, end int, ok bool) {
	if p.Kind() == catalog.PatternRegex {
		loc := p.Regexp().FindStringIndex(doc.text)
		if loc == nil || loc[0] == loc[1] {
			return 0, 0, false
		}
		return loc[0], loc[1], true
	}

	lit := p.Literal()
	if lit == "" {
		return 0, 0, false
	}
	if !p.WordBoundary() {
		i := strings.Index(doc.lower, lit)
		if i < 0 {
			return 0, 0, false
		}
		return i, i + len(lit), true
	}
	for off := 0; off < len(doc.lower); {
		i := strings.Index(doc.lower[off:], lit)
		if i < 0 {
			break
		}
		i += off
		if atBoundary(doc.lower, i, i+len(lit)) {
			return i, i + len(lit), true
		}
		off = i + 1
	}
	return 0, 0, false
}

// atBoundary reports whether s[start:end] is not glued to word characters on either side.
func atBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

// isWordByte treats ASCII letters, digits, '_' and any non-ASCII byte as part of a word,
// so "r" does not match inside "résumé".
func isWordByte(b byte) bool {
	return b >= 0x80 ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		b == '_'
}

// scan runs every entry of cat over doc, in catalog order. Each canonical name
// contributes at most one finding.
func (m *Matcher) scan(doc document, cat *catalog.Catalog) []Finding {
	if cat == nil {
		return nil
	}
	entries := cat.Entries()
	seen := make(map[string]bool, len(entries))
	var out []Finding
	for _, e := range entries {
		k := strings.ToLower(e.Name)
		if seen[k] {
			continue
		}
		f, ok := m.match(doc, e)
		if !ok {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}
