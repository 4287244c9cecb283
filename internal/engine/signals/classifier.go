package signals

import (
	"sync"
	"unicode/utf8"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

// ContextWindow is how many bytes before a match are inspected for de-emphasis phrases.
const ContextWindow = 150

// DeEmphasisPhrases mark the text that follows them as optional. Lowercase.
var DeEmphasisPhrases = []string{
	"nice to have",
	"nice-to-have",
	"preferred",
	"bonus",
	"optional",
	"desirable",
	"a plus",
	"good to have",
	"not required",
	"ideally",
}

// Emphasis is the contextual role of a match.
type Emphasis int

const (
	Emphasized   Emphasis = iota // required / default
	DeEmphasized                 // optional / nice to have
)

func (e Emphasis) String() string {
	if e == DeEmphasized {
		return "de-emphasized"
	}
	return "emphasized"
}

// Classifier decides whether a match sits in a de-emphasizing context by scanning
// a fixed window of text before it. Any phrase in the window wins; how close the
// phrase is to the match does not matter.
type Classifier struct {
	automaton aho.AhoCorasick
	phrases   []string
	window    int
}

// NewClassifier compiles phrases into a single-pass scanner. Phrases are matched
// against ASCII-lowered text, so they should be lowercase.
func NewClassifier(phrases []string, window int) *Classifier {
	p := make([]string, 0, len(phrases))
	for _, s := range phrases {
		if s = catalog.LowerASCII(s); s != "" {
			p = append(p, s)
		}
	}
	if window < 0 {
		window = 0
	}
	c := &Classifier{phrases: p, window: window}
	if len(p) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{DFA: true})
		c.automaton = builder.Build(p)
	}
	return c
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return NewClassifier(DeEmphasisPhrases, ContextWindow)
})

// DefaultClassifier returns the shared classifier built from DeEmphasisPhrases.
func DefaultClassifier() *Classifier { return defaultClassifier() }

// Classify is DefaultClassifier().Classify.
func Classify(text string, pos int) Emphasis { return defaultClassifier().Classify(text, pos) }

// Classify inspects text[pos-window:pos] for de-emphasis phrases.
func (c *Classifier) Classify(text string, pos int) Emphasis {
	if len(c.phrases) == 0 {
		return Emphasized
	}
	pos = min(max(pos, 0), len(text))
	start := max(pos-c.window, 0)
	for start < pos && !utf8.RuneStart(text[start]) {
		start++
	}
	if start == pos {
		return Emphasized
	}
	if len(c.automaton.FindAll(catalog.LowerASCII(text[start:pos]))) > 0 {
		return DeEmphasized
	}
	return Emphasized
}

// Phrases returns the phrases the classifier looks for.
func (c *Classifier) Phrases() []string {
	out := make([]string, len(c.phrases))
	copy(out, c.phrases)
	return out
}
