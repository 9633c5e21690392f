package scoring

import (
	"math"

	"assessment-service/internal/models"
)

// Compatibility combines two respondents' scores and their difference
// analysis into a single 0..100 value. It starts at 100 and subtracts
// three independent penalties: the overall score gap scaled by
// ScoreGapPenalty, the share of differing answers scaled by
// DifferingAnswerPenalty, and a flat MajorDifferencePenalty per major
// difference. The penalties are not normalized against each other; the
// result is clamped and rounded to the nearest integer.
func Compatibility(primary, spouse *models.AssessmentScores, analysis *models.DifferenceAnalysis, cfg *Config) int {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	score := 100.0
	score -= math.Abs(primary.OverallPercentage-spouse.OverallPercentage) * cfg.ScoreGapPenalty

	if analysis.TotalCommon > 0 {
		share := float64(len(analysis.DifferentResponses)) / float64(analysis.TotalCommon)
		score -= share * 100 * cfg.DifferingAnswerPenalty
	}

	score -= float64(len(analysis.MajorDifferences)) * cfg.MajorDifferencePenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
