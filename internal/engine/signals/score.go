package signals

import "github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"

// Job-posting score weights.
const (
	BaselineScore      = 50
	BenefitPoints      = 10
	BenefitCap         = 40
	SalaryRangePoints  = 15
	ExperienceHigh     = 15
	ExperienceDetected = 10
	PenaltyHigh        = 15
	PenaltyMedium      = 8
	PenaltyLow         = 4
)

// redFlagPenalty is the deduction for one red flag of the given severity.
func redFlagPenalty(t catalog.Tier) int {
	switch t.Rank() {
	case 3:
		return PenaltyHigh
	case 2:
		return PenaltyMedium
	case 1:
		return PenaltyLow
	}
	return 0
}

// postingScore is
//
//	50 + min(40, 10*benefits) + 15*[amount disclosed] + {15 high | 10 detected | 0} - penalties
//
// clamped to [0, 100].
func postingScore(s postingSignals) int {
	score := BaselineScore
	score += min(BenefitCap, BenefitPoints*len(s.benefits))
	if s.rangeDisclosed() {
		score += SalaryRangePoints
	}
	switch {
	case s.experience.Confidence == ConfidenceHigh:
		score += ExperienceHigh
	case s.experience.Detected():
		score += ExperienceDetected
	}
	for _, f := range s.redFlags {
		score -= redFlagPenalty(f.Severity)
	}
	return clampScore(score)
}

// gapScore is round(100*matched/relevant), 0 when the job text names no known skill.
func gapScore(g gapSignals) int {
	return clampScore(percent(len(g.matched), g.relevant()))
}

func clampScore(n int) int { return min(max(n, 0), 100) }
