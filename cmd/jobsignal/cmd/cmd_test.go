package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	jobText    = "Experience with Go required. Nice to have: Docker. Unpaid trial period."
	resumeText = "Go developer, Docker and Linux."
	gapJobText = "Go developer with Kubernetes and AWS."
)

// run executes the root command with args, feeding stdin, and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// --- decode ---

func TestDecode_JSONFromStdin(t *testing.T) {
	out, err := run(t, jobText, "decode", "--format", "json", "--catalog", "", "-")
	require.NoError(t, err)

	var res signals.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	want := signals.AnalyzeSingleText(jobText, catalog.JobSignals)
	assert.Equal(t, signals.ModeJobPosting, res.Mode)
	assert.Equal(t, want.Score, res.Score)
	assert.Equal(t, want.Recommendations, res.Recommendations)
}

func TestDecode_TextFromFile(t *testing.T) {
	path := writeFile(t, "job.txt", jobText)
	out, err := run(t, "", "decode", "--format", "text", "--catalog", "", path)
	require.NoError(t, err)
	assert.Equal(t, engine.FormatResult(signals.AnalyzeSingleText(jobText, catalog.JobSignals)), out)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"empty input", "  ", []string{"decode", "--format", "json", "--catalog", ""}},
		{"bad catalog", jobText, []string{"decode", "--format", "json", "--catalog", "nope"}},
		{"bad format", jobText, []string{"decode", "--format", "xml", "--catalog", ""}},
		{"missing file", "", []string{"decode", "--format", "json", "--catalog", "", "/nonexistent/job.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
		})
	}
}

// --- gap ---

func TestGap_JSON(t *testing.T) {
	resume := writeFile(t, "resume.txt", resumeText)
	out, err := run(t, gapJobText, "gap", "--format", "json", "--catalog", "", "--resume", resume, "--job", "-")
	require.NoError(t, err)

	var res signals.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	want := signals.AnalyzeTwoTexts(resumeText, gapJobText, catalog.SkillTaxonomy)
	assert.Equal(t, signals.ModeSkillsGap, res.Mode)
	assert.Equal(t, catalog.SkillTaxonomy, res.Catalog)
	assert.Equal(t, want.Score, res.Score)
	require.Len(t, res.Gaps, len(want.Gaps))
	for i := range want.Gaps {
		assert.Equal(t, want.Gaps[i].Skill.Name, res.Gaps[i].Skill.Name)
		assert.Equal(t, want.Gaps[i].Priority, res.Gaps[i].Priority)
	}
}

func TestGap_BothStdin(t *testing.T) {
	_, err := run(t, "x", "gap", "--format", "json", "--catalog", "", "--resume", "-", "--job", "-")
	require.Error(t, err)
}

// --- catalog ---

func TestCatalog_JSON(t *testing.T) {
	out, err := run(t, "", "catalog", "--format", "json", "--catalog", "skill_taxonomy")
	require.NoError(t, err)

	var info engine.CatalogInfoOutput
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Len(t, info.Tables, 1)
	assert.Equal(t, catalog.TableSkillTaxonomy, info.Tables[0].Name)
	assert.Equal(t, catalog.Selectors(), info.Selectors)
	assert.NotEmpty(t, info.Tables[0].Categories[0].Entries)
}

func TestCatalog_TextAllTables(t *testing.T) {
	out, err := run(t, "", "catalog", "--format", "text", "--catalog", "")
	require.NoError(t, err)
	for _, name := range catalog.TableNames() {
		assert.Contains(t, out, name+" v")
	}
	assert.NotContains(t, out, "skipped ")
}
