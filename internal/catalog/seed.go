package catalog

import "assessment-service/internal/models"

func f(v float64) *float64 { return &v }

// SeedQuestions is the bootstrap question set, inserted when the questions
// collection is empty. Weights mark how heavily a question counts toward
// section scores and difference analysis; the weight-9 questions are the
// ones a couple most needs to agree on.
func SeedQuestions() []models.Question {
	return []models.Question{
		{
			ID: "Q1", Section: "Your Faith Life", Weight: 9,
			Type: models.QuestionTypeMultipleChoice,
			Text: "Our shared faith should be the foundation of our marriage",
			Options: []models.Option{
				{Label: "Strongly Agree", Value: 5},
				{Label: "Agree", Value: 4},
				{Label: "Neutral", Value: 3},
				{Label: "Disagree", Value: 2},
				{Label: "Strongly Disagree", Value: 1},
			},
		},
		{
			ID: "Q2", Section: "Your Faith Life", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "We should attend services together every week",
		},
		{
			ID: "Q3", Section: "Your Faith Life", Weight: 1,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "We should pray together daily",
		},
		{
			ID: "Q4", Section: "Your Family Life", Weight: 9,
			Type: models.QuestionTypeMultipleChoice,
			Text: "How soon after marriage would you like to have children?",
			Options: []models.Option{
				{Label: "Right away", Value: 5},
				{Label: "Within two years", Value: 4},
				{Label: "When we feel ready", Value: 3},
				{Label: "Not sure", Value: 2},
				{Label: "We do not plan to have children", Value: 1},
			},
		},
		{
			ID: "Q5", Section: "Your Family Life", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "Extended family should have a voice in our major decisions",
		},
		{
			ID: "Q6", Section: "Your Family Life", Weight: 1,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "Holidays should rotate between both families",
		},
		{
			ID: "Q7", Section: "Your Finances", Weight: 9,
			Type: models.QuestionTypeMultipleChoice,
			Text: "How should money be managed in our marriage?",
			Options: []models.Option{
				{Label: "Fully combined finances", Value: 5},
				{Label: "Combined with personal allowances", Value: 4},
				{Label: "Split shared expenses", Value: 3},
				{Label: "Mostly separate accounts", Value: 2},
				{Label: "Fully separate finances", Value: 1},
			},
		},
		{
			ID: "Q8", Section: "Your Finances", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "We should agree before any purchase over an amount we set together",
		},
		{
			ID: "Q9", Section: "Your Finances", Weight: 1,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "Giving a portion of our income is important to me",
		},
		{
			ID: "Q10", Section: "Your Marriage Life", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "Disagreements should be resolved before the end of the day",
		},
		{
			ID: "Q11", Section: "Your Marriage Life", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "A weekly date night is a priority, not a luxury",
		},
		{
			ID: "Q12", Section: "Your Marriage Life", Weight: 1,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "We should review our goals as a couple at least once a year",
		},
		{
			ID: "Q13", Section: "Your Health and Wellness", Weight: 1,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "Staying physically active together matters to me",
		},
		{
			ID: "Q14", Section: "Your Health and Wellness", Weight: 3,
			Type: models.QuestionTypeAgreeDisagree,
			Text: "We should be open with each other about mental health struggles",
		},
	}
}

// SeedProfiles is the ordered bootstrap profile catalog. Order matters:
// classification returns the first profile whose criteria all pass.
func SeedProfiles() []models.Profile {
	return []models.Profile{
		{
			ID: "P1", Name: "Steadfast Believer",
			Description: "Faith anchors every expectation you bring to marriage, and you score high across traditional commitments.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Faith Life", Min: f(85)},
				{Section: "Your Marriage Life", Min: f(70)},
			},
		},
		{
			ID: "P2", Name: "Harmonious Planner",
			Description: "You approach marriage with structure: shared finances, shared plans, and clear expectations.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Finances", Min: f(75)},
				{Section: "Your Family Life", Min: f(60)},
			},
		},
		{
			ID: "P3", Name: "Flexible Faithful",
			Description: "Faith matters to you, but you hold most other expectations loosely and negotiate as you go.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Faith Life", Min: f(60), Max: f(85)},
			},
		},
		{
			ID: "P4", Name: "Independent Modern",
			Description: "You favor autonomy inside partnership: separate space, separate accounts, shared life.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Finances", Max: f(50)},
			},
		},
		{
			ID: "P5", Name: "Faithful Protector", GenderSpecific: models.GenderMale,
			Description: "You see providing and protecting as central to your role as a husband.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Faith Life", Min: f(75)},
				{Section: "Your Finances", Min: f(70)},
			},
		},
		{
			ID: "P6", Name: "Nurturing Partner", GenderSpecific: models.GenderFemale,
			Description: "You center the home and family life in your vision of marriage.",
			Criteria: []models.ProfileCriterion{
				{Section: "Your Family Life", Min: f(75)},
			},
		},
	}
}

// Seed builds the bootstrap catalog. Panics on invalid seed data since
// that is a programming error, not runtime input.
func Seed() *Catalog {
	c, err := New(SeedQuestions(), SeedProfiles())
	if err != nil {
		panic(err)
	}
	return c
}
