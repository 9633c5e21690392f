package scoring

import (
	"math"
	"testing"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

func TestScoreSingleSection(t *testing.T) {
	// Two weight-1 questions in one section, answered 5 and 4:
	// earned 9 of a possible 10.
	cat, err := catalog.New([]models.Question{
		{ID: "F1", Section: "Faith", Weight: 1, Options: scale()},
		{ID: "F2", Section: "Faith", Weight: 1, Options: scale()},
	}, nil)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	responses := models.ResponseMap{
		"F1": answer("F1", "Strongly Agree", 5),
		"F2": answer("F2", "Agree", 4),
	}

	scores, err := Score(cat, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	faith := scores.Sections["Faith"]
	if faith.Earned != 9 || faith.Possible != 10 {
		t.Errorf("expected 9/10, got %d/%d", faith.Earned, faith.Possible)
	}
	if math.Abs(faith.Percentage-90) > 0.01 {
		t.Errorf("expected 90%%, got %.2f", faith.Percentage)
	}
	if math.Abs(scores.OverallPercentage-90) > 0.01 {
		t.Errorf("expected overall 90%%, got %.2f", scores.OverallPercentage)
	}
}

func TestScoreEmptyResponses(t *testing.T) {
	cat := testCatalog(t)

	scores, err := Score(cat, models.ResponseMap{})
	if err != nil {
		t.Fatalf("empty responses must not error: %v", err)
	}
	if scores.OverallPercentage != 0 {
		t.Errorf("expected overall 0, got %.2f", scores.OverallPercentage)
	}
	if len(scores.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(scores.Sections))
	}
	if len(scores.Strengths) != 0 || len(scores.ImprovementAreas) != 0 {
		t.Error("expected empty strength and improvement lists")
	}
}

func TestScoreMissingCatalog(t *testing.T) {
	if _, err := Score(nil, models.ResponseMap{}); err != ErrMissingCatalog {
		t.Errorf("expected ErrMissingCatalog, got %v", err)
	}
}

func TestScoreSkippedSectionIsAbsent(t *testing.T) {
	cat := testCatalog(t)

	// Money and Kids and Home entirely skipped.
	responses := models.ResponseMap{
		"F1": answer("F1", "Agree", 4),
	}

	scores, err := Score(cat, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scores.Sections["Money"]; ok {
		t.Error("skipped section must be absent, not zeroed")
	}
	if len(scores.Sections) != 1 {
		t.Errorf("expected exactly 1 section, got %d", len(scores.Sections))
	}
	// A skipped section must not drag the overall percentage down.
	if math.Abs(scores.OverallPercentage-80) > 0.01 {
		t.Errorf("expected overall 80%%, got %.2f", scores.OverallPercentage)
	}
	for _, name := range scores.ImprovementAreas {
		if name == "Money" || name == "Kids" || name == "Home" {
			t.Errorf("skipped section %q must not appear as improvement area", name)
		}
	}
}

func TestScoreRankingAndOverlap(t *testing.T) {
	cat := testCatalog(t)

	// Faith 100%, Money 60%, Kids 40%, Home 20%.
	responses := models.ResponseMap{
		"F1": answer("F1", "Strongly Agree", 5),
		"F2": answer("F2", "Strongly Agree", 5),
		"M1": answer("M1", "Neutral", 3),
		"M2": answer("M2", "Neutral", 3),
		"K1": answer("K1", "Disagree", 2),
		"H1": answer("H1", "Strongly Disagree", 1),
	}

	scores, err := Score(cat, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedStrengths := []string{"Faith", "Money", "Kids"}
	if len(scores.Strengths) != len(expectedStrengths) {
		t.Fatalf("expected %d strengths, got %d", len(expectedStrengths), len(scores.Strengths))
	}
	for i, name := range expectedStrengths {
		if scores.Strengths[i] != name {
			t.Errorf("strength %d: expected %q, got %q", i, name, scores.Strengths[i])
		}
	}

	// Only Home is left once the strengths are claimed; weakest first.
	if len(scores.ImprovementAreas) != 1 || scores.ImprovementAreas[0] != "Home" {
		t.Errorf("expected improvement areas [Home], got %v", scores.ImprovementAreas)
	}

	for _, s := range scores.Strengths {
		for _, w := range scores.ImprovementAreas {
			if s == w {
				t.Errorf("section %q appears in both strengths and improvement areas", s)
			}
		}
	}
}

func TestScoreTieBreakIsCatalogOrder(t *testing.T) {
	cat, err := catalog.New([]models.Question{
		{ID: "A1", Section: "Alpha", Weight: 1, Options: scale()},
		{ID: "B1", Section: "Beta", Weight: 1, Options: scale()},
		{ID: "C1", Section: "Gamma", Weight: 1, Options: scale()},
	}, nil)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	// All three at exactly the same percentage.
	responses := models.ResponseMap{
		"A1": answer("A1", "Agree", 4),
		"B1": answer("B1", "Agree", 4),
		"C1": answer("C1", "Agree", 4),
	}

	scores, err := Score(cat, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"Alpha", "Beta", "Gamma"}
	for i, name := range expected {
		if scores.Strengths[i] != name {
			t.Errorf("tie-break should follow catalog order: expected %v, got %v", expected, scores.Strengths)
			break
		}
	}
}

func TestScoreInvariants(t *testing.T) {
	cat := testCatalog(t)

	responses := models.ResponseMap{
		"F1": answer("F1", "Strongly Disagree", 1),
		"M2": answer("M2", "Agree", 4),
		"K1": answer("K1", "Strongly Agree", 5),
	}

	scores, err := Score(cat, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.OverallPercentage < 0 || scores.OverallPercentage > 100 {
		t.Errorf("overall percentage out of range: %.2f", scores.OverallPercentage)
	}
	if scores.TotalEarned > scores.TotalPossible {
		t.Errorf("earned %d exceeds possible %d", scores.TotalEarned, scores.TotalPossible)
	}
	for name, s := range scores.Sections {
		if s.Percentage < 0 || s.Percentage > 100 {
			t.Errorf("section %q percentage out of range: %.2f", name, s.Percentage)
		}
		if s.Earned > s.Possible {
			t.Errorf("section %q earned %d exceeds possible %d", name, s.Earned, s.Possible)
		}
	}
}
