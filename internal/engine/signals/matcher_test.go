package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

func entry(t *testing.T, table, name string) *catalog.Entry {
	t.Helper()
	e, ok := catalog.Table(table).Lookup(name)
	require.True(t, ok, "%s/%s missing", table, name)
	return e
}

// --- short aliases ---

func TestMatch_ShortAliasWordBoundary(t *testing.T) {
	r := entry(t, catalog.TableJobSkills, "R")
	tests := []struct {
		text string
		want bool
		pos  int
	}{
		{"director of engineering", false, 0},
		{"I write R code daily", true, 8},
		{"R, Python and Julia", true, 0},
		{"résumé reviewer", false, 0},
		{"stats in (R)", true, 10},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f, ok := Match(tt.text, r)
			if ok != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.text, ok, tt.want)
			}
			if ok && f.Position != tt.pos {
				t.Errorf("position = %d, want %d", f.Position, tt.pos)
			}
		})
	}
}

func TestMatch_LongLiteralIsSubstring(t *testing.T) {
	k := entry(t, catalog.TableJobSkills, "Kubernetes")
	f, ok := Match("Experience running KUBERNETES-based platforms", k)
	require.True(t, ok)
	assert.Equal(t, "KUBERNETES", f.MatchedText)
	assert.Equal(t, 19, f.Position)
}

func TestMatch_FirstPatternWins(t *testing.T) {
	cat := catalog.Compile("t", []catalog.Entry{{
		Name:     "Kubernetes",
		Category: "devops",
		Patterns: []catalog.PatternSpec{catalog.Literal("kubernetes"), catalog.Literal("k8s")},
	}})
	e, _ := cat.Lookup("kubernetes")

	// k8s appears first in the text but kubernetes is declared first.
	f, ok := Match("k8s today, kubernetes tomorrow", e)
	require.True(t, ok)
	assert.Equal(t, "kubernetes", f.MatchedText)
	assert.Equal(t, 11, f.Position)

	f, ok = Match("only k8s here", e)
	require.True(t, ok)
	assert.Equal(t, "k8s", f.MatchedText)
}

func TestMatch_RegexCaseInsensitive(t *testing.T) {
	java := entry(t, catalog.TableJobSkills, "Java")
	_, ok := Match("JavaScript only", java)
	assert.False(t, ok)

	f, ok := Match("Strong JAVA skills", java)
	require.True(t, ok)
	assert.Equal(t, "JAVA", f.MatchedText)
}

func TestMatch_Absent(t *testing.T) {
	f, ok := Match("nothing to see", entry(t, catalog.TableJobSkills, "Python"))
	assert.False(t, ok)
	assert.Equal(t, Finding{}, f)

	_, ok = Match("python", nil)
	assert.False(t, ok)
}

func TestMatch_FindingFields(t *testing.T) {
	py := entry(t, catalog.TableJobSkills, "Python")
	f, ok := Match("We use Python.", py)
	require.True(t, ok)
	assert.Same(t, py, f.Entry)
	assert.Equal(t, "Python", f.Name)
	assert.Equal(t, "languages", f.Category)
	assert.Equal(t, catalog.TierEssential, f.Tier)
	assert.Equal(t, "Python", f.MatchedText)
	assert.Equal(t, 7, f.Position)
	assert.True(t, f.Emphasized)
}

// --- scan ---

func TestScan_AtMostOneFindingPerEntry(t *testing.T) {
	doc := newDocument("Python, python, PYTHON and py3. Python again.")
	got := NewMatcher(nil).scan(doc, catalog.Table(catalog.TableJobSkills))
	count := 0
	for _, f := range got {
		if f.Name == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScan_CatalogOrder(t *testing.T) {
	doc := newDocument("SQL first, then Python")
	got := NewMatcher(nil).scan(doc, catalog.Table(catalog.TableJobSkills))
	require.Len(t, got, 2)
	assert.Equal(t, "Python", got[0].Name)
	assert.Equal(t, "SQL", got[1].Name)
}

func TestScan_NilCatalog(t *testing.T) {
	assert.Empty(t, NewMatcher(nil).scan(newDocument("python"), nil))
}
