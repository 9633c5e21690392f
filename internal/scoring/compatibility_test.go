package scoring

import (
	"testing"

	"assessment-service/internal/models"
)

func scoresAt(overall float64) *models.AssessmentScores {
	return &models.AssessmentScores{OverallPercentage: overall}
}

func TestCompatibilityScoreGapOnly(t *testing.T) {
	// Overall 85 vs 65, no differing answers: 100 - 20*0.5 = 90.
	analysis := &models.DifferenceAnalysis{TotalCommon: 10}

	got := Compatibility(scoresAt(85), scoresAt(65), analysis, nil)
	if got != 90 {
		t.Errorf("expected 90, got %d", got)
	}
}

func TestCompatibilityPenalties(t *testing.T) {
	testCases := []struct {
		name     string
		primary  float64
		spouse   float64
		diffs    int
		majors   int
		common   int
		expected int
	}{
		{"perfect alignment", 80, 80, 0, 0, 10, 100},
		{"gap only", 85, 65, 0, 0, 10, 90},
		{"differing answers only", 80, 80, 5, 0, 10, 80}, // 50% differ * 0.4 = 20
		{"majors only", 80, 80, 2, 2, 10, 88},            // 20% differ * 0.4 = 8, plus 2*2
		{"all three penalties", 90, 70, 5, 1, 10, 68},    // 10 + 20 + 2
		{"no common answers", 85, 65, 0, 0, 0, 90},       // share penalty skipped, not a crash
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			analysis := &models.DifferenceAnalysis{TotalCommon: tc.common}
			for i := 0; i < tc.diffs; i++ {
				analysis.DifferentResponses = append(analysis.DifferentResponses, models.DifferenceItem{})
			}
			for i := 0; i < tc.majors; i++ {
				analysis.MajorDifferences = append(analysis.MajorDifferences, models.DifferenceItem{})
			}

			got := Compatibility(scoresAt(tc.primary), scoresAt(tc.spouse), analysis, nil)
			if got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestCompatibilityClamped(t *testing.T) {
	// Every answer differs and every one is major: drive the raw score
	// well below zero and expect the floor.
	analysis := &models.DifferenceAnalysis{TotalCommon: 20}
	for i := 0; i < 20; i++ {
		item := models.DifferenceItem{QuestionWeight: 9}
		analysis.DifferentResponses = append(analysis.DifferentResponses, item)
		analysis.MajorDifferences = append(analysis.MajorDifferences, item)
	}

	got := Compatibility(scoresAt(100), scoresAt(0), analysis, nil)
	if got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}

	if got := Compatibility(scoresAt(70), scoresAt(70), &models.DifferenceAnalysis{}, nil); got != 100 {
		t.Errorf("expected ceiling of 100, got %d", got)
	}
}

func TestCompatibilityMonotonicInScoreGap(t *testing.T) {
	analysis := &models.DifferenceAnalysis{TotalCommon: 10}

	prev := Compatibility(scoresAt(80), scoresAt(80), analysis, nil)
	for gap := 1.0; gap <= 80; gap++ {
		got := Compatibility(scoresAt(80), scoresAt(80-gap), analysis, nil)
		if got > prev {
			t.Fatalf("compatibility increased from %d to %d as gap widened to %.0f", prev, got, gap)
		}
		prev = got
	}
}

func TestCompatibilityDeterministic(t *testing.T) {
	analysis := &models.DifferenceAnalysis{
		TotalCommon:        8,
		DifferentResponses: []models.DifferenceItem{{QuestionID: "Q1"}, {QuestionID: "Q2"}},
		MajorDifferences:   []models.DifferenceItem{{QuestionID: "Q1"}},
	}

	first := Compatibility(scoresAt(75), scoresAt(62), analysis, nil)
	for i := 0; i < 10; i++ {
		if got := Compatibility(scoresAt(75), scoresAt(62), analysis, nil); got != first {
			t.Fatalf("compatibility not deterministic: %d then %d", first, got)
		}
	}
}

func TestCompatibilityCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MajorDifferencePenalty = 5

	analysis := &models.DifferenceAnalysis{
		TotalCommon:      10,
		MajorDifferences: []models.DifferenceItem{{}, {}},
	}

	got := Compatibility(scoresAt(80), scoresAt(80), analysis, cfg)
	if got != 90 {
		t.Errorf("expected 90 with 5-point major penalty, got %d", got)
	}
}
