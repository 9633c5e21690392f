package models

type Demographics struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Gender    Gender `bson:"gender" json:"gender"`
	Age       int    `bson:"age,omitempty" json:"age,omitempty"`
}

// Respondent bundles one person's demographics with their computed scores
// and assigned profiles. Assembled fresh per scoring request.
type Respondent struct {
	Demographics  Demographics     `bson:"demographics" json:"demographics"`
	Responses     ResponseMap      `bson:"responses" json:"responses"`
	Scores        AssessmentScores `bson:"scores" json:"scores"`
	Profile       Profile          `bson:"profile" json:"profile"`
	GenderProfile *Profile         `bson:"gender_profile,omitempty" json:"gender_profile,omitempty"`
}
