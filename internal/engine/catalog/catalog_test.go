package catalog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- embedded tables ---

func TestEmbeddedTables_LoadClean(t *testing.T) {
	for _, name := range TableNames() {
		t.Run(name, func(t *testing.T) {
			c := Table(name)
			assert.Equal(t, name, c.Table())
			assert.Positive(t, c.Len())
			assert.Positive(t, c.Version())
			assert.Empty(t, c.Skipped(), "embedded data should compile cleanly")
			for _, e := range c.Entries() {
				assert.NotEmpty(t, e.Compiled(), e.Name)
				assert.NotEmpty(t, e.Category, e.Name)
			}
		})
	}
	assert.Empty(t, AllSkipped())
}

func TestEmbeddedTables_Tiers(t *testing.T) {
	for _, name := range []string{TableJobSkills, TableSkillTaxonomy, TableRedFlags} {
		for _, e := range Table(name).Entries() {
			assert.True(t, e.Tier.Valid(), "%s/%s tier %q", name, e.Name, e.Tier)
		}
	}
}

func TestEmbeddedTables_SameInstance(t *testing.T) {
	assert.Same(t, Table(TableRedFlags), Table(TableRedFlags))
}

func TestTable_Unknown(t *testing.T) {
	c := Table("nope")
	require.NotNil(t, c)
	assert.Zero(t, c.Len())
}

func TestSkillTaxonomy_GapMetadata(t *testing.T) {
	for _, e := range Table(TableSkillTaxonomy).Entries() {
		assert.NotEmpty(t, e.Aux.LearningTime, e.Name)
		if e.Category != "soft_skills" {
			assert.NotEmpty(t, e.Aux.Resources, e.Name)
		}
	}
}

// --- Compile ---

func TestCompile_DedupFirstWins(t *testing.T) {
	c := Compile("t", []Entry{
		{Name: "Python", Category: "a", Patterns: []PatternSpec{Literal("python")}},
		{Name: "python ", Category: "b", Patterns: []PatternSpec{Literal("py")}},
		{Name: "Go", Category: "b", Patterns: []PatternSpec{Literal("golang")}},
	})
	require.Equal(t, 2, c.Len())
	e, ok := c.Lookup("PYTHON")
	require.True(t, ok)
	assert.Equal(t, "a", e.Category)
	assert.Equal(t, []string{"a", "b"}, c.Categories())
	require.Len(t, c.Skipped(), 1)
	assert.Equal(t, "duplicate entry name", c.Skipped()[0].Reason)
}

func TestCompile_MalformedRegexSkipped(t *testing.T) {
	c := Compile("t", []Entry{
		{Name: "Mixed", Patterns: []PatternSpec{Regex("(oops"), Literal("fine")}},
		{Name: "Dead", Patterns: []PatternSpec{Regex("[bad")}},
		{Name: "", Patterns: []PatternSpec{Literal("anon")}},
		{Name: "Empty", Patterns: []PatternSpec{Literal("")}},
	})
	require.Equal(t, 1, c.Len())
	e, ok := c.Lookup("mixed")
	require.True(t, ok)
	require.Len(t, e.Compiled(), 1)
	assert.Equal(t, "fine", e.Compiled()[0].Literal())

	_, ok = c.Lookup("dead")
	assert.False(t, ok)

	var reasons []string
	for _, s := range c.Skipped() {
		reasons = append(reasons, s.Entry+": "+s.Reason)
	}
	assert.Contains(t, reasons, "Dead: no usable patterns")
	assert.Contains(t, reasons, "#2: entry has no name")
	assert.Contains(t, reasons, "Empty: no usable patterns")
}

func TestCompile_SkipLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	c := Compile("t", []Entry{
		{Name: "Mixed", Patterns: []PatternSpec{Regex("(oops"), Literal("fine")}},
	})
	require.Len(t, c.Skipped(), 1)
	assert.Equal(t, 1, strings.Count(buf.String(), "catalog: skipped pattern"))
	assert.Contains(t, buf.String(), "entry=Mixed")
}

func TestCompile_DoesNotRetainInput(t *testing.T) {
	raw := []Entry{{Name: "X", Patterns: []PatternSpec{Literal("xyz")}}}
	c := Compile("t", raw)
	raw[0].Name = "changed"
	raw[0].Patterns[0] = Literal("other")
	e, ok := c.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "xyz", e.Patterns[0].Source)
}

func TestCompile_Nil(t *testing.T) {
	c := Compile("", nil)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Categories())
}

// --- patterns ---

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		spec     PatternSpec
		literal  string
		boundary bool
		wantErr  bool
	}{
		{Literal("R"), "r", true, false},
		{Literal("AWS"), "aws", true, false},
		{Literal("Kubernetes"), "kubernetes", false, false},
		{Literal(""), "", false, true},
		{Regex(`\bjava\b`), "", false, false},
		{Regex(`(`), "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec.String(), func(t *testing.T) {
			p, err := compilePattern(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.literal, p.Literal())
			assert.Equal(t, tt.boundary, p.WordBoundary())
			if tt.spec.Kind == PatternRegex {
				assert.True(t, p.Regexp().MatchString("I like JAVA"))
			}
		})
	}
}

func TestLowerASCII_PreservesOffsets(t *testing.T) {
	in := "Résumé: GO & Kubernetes"
	out := LowerASCII(in)
	assert.Equal(t, len(in), len(out))
	assert.Equal(t, "résumé: go & kubernetes", out)
}

// --- YAML ---

func TestParse_PatternForms(t *testing.T) {
	data := []byte(`
version: 7
table: demo
entries:
  - name: Go
    category: languages
    tier: essential
    match:
      - golang
      - regex: '\bgo\s+developer\b'
      - literal: go lang
    learning_time: 1 month
    resources: [https://go.dev/tour/]
`)
	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", c.Table())
	assert.Equal(t, 7, c.Version())

	e, ok := c.Lookup("go")
	require.True(t, ok)
	assert.Equal(t, []PatternSpec{
		Literal("golang"),
		Regex(`\bgo\s+developer\b`),
		Literal("go lang"),
	}, e.Patterns)
	assert.Equal(t, TierEssential, e.Tier)
	assert.Equal(t, "1 month", e.Aux.LearningTime)
	assert.Equal(t, []string{"https://go.dev/tour/"}, e.Aux.Resources)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("entries: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("entries:\n  - name: X\n    match:\n      - [a, b]\n"))
	assert.Error(t, err)
}

func TestPatternSpec_YAMLRoundTrip(t *testing.T) {
	for _, p := range []PatternSpec{Literal("k8s"), Regex(`\bapi\b`)} {
		v, err := p.MarshalYAML()
		require.NoError(t, err)
		switch p.Kind {
		case PatternLiteral:
			assert.Equal(t, "k8s", v)
		case PatternRegex:
			assert.Equal(t, map[string]string{"regex": `\bapi\b`}, v)
		}
	}
}

// --- selectors and tiers ---

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in      string
		want    Selector
		wantErr bool
	}{
		{"job_signals", JobSignals, false},
		{"Job-Signals", JobSignals, false},
		{" skill_taxonomy ", SkillTaxonomy, false},
		{"SKILL-TAXONOMY", SkillTaxonomy, false},
		{"", "", true},
		{"jobs", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_SkillTable(t *testing.T) {
	assert.Equal(t, TableJobSkills, JobSignals.SkillTable())
	assert.Equal(t, TableSkillTaxonomy, SkillTaxonomy.SkillTable())
	assert.Same(t, Table(TableSkillTaxonomy), Load(SkillTaxonomy))
}

func TestTier_Rank(t *testing.T) {
	assert.Greater(t, TierEssential.Rank(), TierImportant.Rank())
	assert.Greater(t, TierImportant.Rank(), TierNiceToHave.Rank())
	assert.Greater(t, TierHigh.Rank(), TierMedium.Rank())
	assert.Greater(t, TierMedium.Rank(), TierLow.Rank())
	assert.Zero(t, Tier("urgent").Rank())
	assert.False(t, Tier("").Valid())
}
