package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

// --- GapPriority ---

func TestGapPriority(t *testing.T) {
	tests := []struct {
		emphasized bool
		tier       catalog.Tier
		want       Priority
	}{
		{true, catalog.TierEssential, PriorityHigh},
		{true, catalog.TierImportant, PriorityHigh},
		{true, catalog.TierNiceToHave, PriorityMedium},
		{false, catalog.TierEssential, PriorityMedium},
		{false, catalog.TierImportant, PriorityLow},
		{false, catalog.TierNiceToHave, PriorityLow},
		{true, "", PriorityLow},
		{false, "", PriorityLow},
	}
	for _, tt := range tests {
		name := string(tt.tier)
		if !tt.emphasized {
			name = "de-emphasized " + name
		}
		t.Run(name, func(t *testing.T) {
			if got := GapPriority(tt.emphasized, tt.tier); got != tt.want {
				t.Errorf("GapPriority(%v, %q) = %q, want %q", tt.emphasized, tt.tier, got, tt.want)
			}
		})
	}
}

func TestSortGaps_StableByPriority(t *testing.T) {
	gaps := []Gap{
		{Skill: Finding{Name: "a"}, Priority: PriorityLow},
		{Skill: Finding{Name: "b"}, Priority: PriorityHigh},
		{Skill: Finding{Name: "c"}, Priority: PriorityMedium},
		{Skill: Finding{Name: "d"}, Priority: PriorityHigh},
		{Skill: Finding{Name: "e"}, Priority: PriorityLow},
	}
	sortGaps(gaps)
	var got []string
	for _, g := range gaps {
		got = append(got, g.Skill.Name)
	}
	assert.Equal(t, []string{"b", "d", "c", "a", "e"}, got)
}

// --- experience ---

func TestDetectExperience(t *testing.T) {
	years := &catalog.Entry{Name: "Senior (years)", Category: catalog.CategoryYears, Aux: catalog.Aux{Level: "Senior"}}
	mid := &catalog.Entry{Name: "Mid (years)", Category: catalog.CategoryYears, Aux: catalog.Aux{Level: "Mid"}}
	title := &catalog.Entry{Name: "Lead (title)", Category: catalog.CategoryTitle}

	tests := []struct {
		name     string
		findings []Finding
		level    string
		conf     Confidence
	}{
		{"none", nil, "", ConfidenceNone},
		{"title only", []Finding{{Entry: title, Name: title.Name, Category: title.Category, Position: 3}}, "Lead (title)", ConfidenceMedium},
		{"years beat title", []Finding{
			{Entry: title, Name: title.Name, Category: title.Category, Position: 0},
			{Entry: years, Name: years.Name, Category: years.Category, Position: 40},
		}, "Senior", ConfidenceHigh},
		{"earliest years", []Finding{
			{Entry: years, Name: years.Name, Category: years.Category, Position: 40},
			{Entry: mid, Name: mid.Name, Category: mid.Category, Position: 12},
		}, "Mid", ConfidenceHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectExperience(tt.findings)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.conf, got.Confidence)
		})
	}
}

// --- scoring ---

func TestPostingScore(t *testing.T) {
	benefit := Finding{Name: "b"}
	tests := []struct {
		name string
		s    postingSignals
		want int
	}{
		{"baseline", postingSignals{}, 50},
		{"benefits capped", postingSignals{benefits: []Finding{benefit, benefit, benefit, benefit, benefit, benefit}}, 90},
		{"range disclosed", postingSignals{salary: []SalaryHint{{DisclosesAmount: true}}}, 65},
		{"vague salary", postingSignals{salary: []SalaryHint{{Name: "Competitive salary"}}}, 50},
		{"experience high", postingSignals{experience: ExperienceLevel{Level: "Senior", Confidence: ConfidenceHigh}}, 65},
		{"experience medium", postingSignals{experience: ExperienceLevel{Level: "Senior", Confidence: ConfidenceMedium}}, 60},
		{"penalties", postingSignals{redFlags: []RedFlag{
			{Severity: catalog.TierHigh}, {Severity: catalog.TierMedium}, {Severity: catalog.TierLow},
		}}, 23},
		{"clamped low", postingSignals{redFlags: []RedFlag{
			{Severity: catalog.TierHigh}, {Severity: catalog.TierHigh}, {Severity: catalog.TierHigh}, {Severity: catalog.TierHigh},
		}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := postingScore(tt.s); got != tt.want {
				t.Errorf("postingScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 100, percent(4, 4))
}

// --- stats ---

func TestStats(t *testing.T) {
	tests := []struct {
		text string
		want TextStats
	}{
		{"", TextStats{}},
		{"   ", TextStats{}},
		{"Hello world", TextStats{Words: 2, Characters: 11, Sentences: 1, Lines: 1}},
		{"One. Two!! Three?\nFour", TextStats{Words: 4, Characters: 22, Sentences: 3, Lines: 2}},
		{"Résumé...\n", TextStats{Words: 1, Characters: 10, Sentences: 1, Lines: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Stats(tt.text))
		})
	}
}
