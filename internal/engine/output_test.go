package engine

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult_JobPosting(t *testing.T) {
	res := signals.AnalyzeSingleText("Experience with Go required. Nice to have: Docker.", catalog.JobSignals)
	out := FormatResult(res)

	assert.True(t, strings.HasPrefix(out, "Job posting (job_signals): "), out)
	assert.Contains(t, out, res.Summary)
	assert.Contains(t, out, "\nRequired:\n  - Go\n")
	assert.Contains(t, out, "\nNice to have:\n  - Docker\n")
	assert.Contains(t, out, "\nRecommendations:\n  1. "+res.Recommendations[0])
	assert.NotContains(t, out, "Gaps:")
}

func TestFormatResult_SkillsGap(t *testing.T) {
	res := signals.AnalyzeTwoTexts("Go developer", "Go developer with Kubernetes", catalog.SkillTaxonomy)
	out := FormatResult(res)

	assert.True(t, strings.HasPrefix(out, "Skills gap (skill_taxonomy): "), out)
	assert.Contains(t, out, "\nMatched:\n  - Go\n")
	assert.Contains(t, out, "  - Kubernetes [")
	assert.NotContains(t, out, "Required:")
}

func TestFormatResult_EmptySections(t *testing.T) {
	out := FormatResult(signals.AnalyzeSingleText("", catalog.JobSignals))
	for _, section := range []string{"Required:", "Benefits:", "Red flags:", "Coverage:"} {
		assert.NotContains(t, out, section)
	}
	assert.Contains(t, out, "Recommendations:")
}
