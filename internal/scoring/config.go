package scoring

import "assessment-service/internal/models"

// Config holds every tunable the scoring pipeline exposes. The source data
// this system replaces carried inconsistent literals for several of these;
// the defaults below are the single canonical values.
type Config struct {
	// MajorDifferenceThreshold is the question weight at or above which a
	// differing answer counts as a major difference.
	MajorDifferenceThreshold int `json:"major_difference_threshold"`

	// StrengthAreaCount and VulnerabilityAreaCount bound the section lists
	// produced by difference analysis.
	StrengthAreaCount      int `json:"strength_area_count"`
	VulnerabilityAreaCount int `json:"vulnerability_area_count"`

	// Compatibility penalty coefficients. Each overall-percentage point of
	// score gap costs ScoreGapPenalty points; the share of differing
	// answers (0..100) is scaled by DifferingAnswerPenalty; each major
	// difference costs a flat MajorDifferencePenalty.
	ScoreGapPenalty        float64 `json:"score_gap_penalty"`
	DifferingAnswerPenalty float64 `json:"differing_answer_penalty"`
	MajorDifferencePenalty float64 `json:"major_difference_penalty"`

	// DefaultProfile is returned when no catalog profile matches.
	DefaultProfile models.Profile `json:"default_profile"`
}

func DefaultConfig() *Config {
	return &Config{
		MajorDifferenceThreshold: 8,
		StrengthAreaCount:        3,
		VulnerabilityAreaCount:   2,
		ScoreGapPenalty:          0.5,
		DifferingAnswerPenalty:   0.4,
		MajorDifferencePenalty:   2.0,
		DefaultProfile: models.Profile{
			ID:          "default",
			Name:        "Balanced Individual",
			Description: "Your expectations do not cluster strongly in any one direction; you balance traditional and flexible views across areas.",
		},
	}
}
