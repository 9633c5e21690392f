package scoring

import (
	"testing"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

func f(v float64) *float64 { return &v }

func scale() []models.Option {
	return []models.Option{
		{Label: "Strongly Agree", Value: 5},
		{Label: "Agree", Value: 4},
		{Label: "Neutral", Value: 3},
		{Label: "Disagree", Value: 2},
		{Label: "Strongly Disagree", Value: 1},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	questions := []models.Question{
		{ID: "F1", Section: "Faith", Weight: 1, Type: models.QuestionTypeMultipleChoice, Options: scale()},
		{ID: "F2", Section: "Faith", Weight: 1, Type: models.QuestionTypeMultipleChoice, Options: scale()},
		{ID: "M1", Section: "Money", Weight: 3, Type: models.QuestionTypeMultipleChoice, Options: scale()},
		{ID: "M2", Section: "Money", Weight: 9, Type: models.QuestionTypeMultipleChoice, Options: scale()},
		{ID: "K1", Section: "Kids", Weight: 1, Type: models.QuestionTypeMultipleChoice, Options: scale()},
		{ID: "H1", Section: "Home", Weight: 1, Type: models.QuestionTypeMultipleChoice, Options: scale()},
	}
	profiles := []models.Profile{
		{ID: "P1", Name: "Devoted", Criteria: []models.ProfileCriterion{{Section: "Faith", Min: f(80)}}},
		{ID: "P2", Name: "Engaged", Criteria: []models.ProfileCriterion{{Section: "Faith", Min: f(50)}}},
		{ID: "P3", Name: "Provider", GenderSpecific: models.GenderMale, Criteria: []models.ProfileCriterion{{Section: "Money", Min: f(60)}}},
		{ID: "P4", Name: "Homemaker", GenderSpecific: models.GenderFemale, Criteria: []models.ProfileCriterion{{Section: "Home", Min: f(60)}}},
	}
	cat, err := catalog.New(questions, profiles)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}

func answer(questionID, label string, value int) models.Response {
	return models.Response{QuestionID: questionID, Label: label, Value: value}
}
