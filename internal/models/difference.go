package models

type DifferenceItem struct {
	QuestionID     string `bson:"question_id" json:"question_id"`
	Section        string `bson:"section" json:"section"`
	QuestionWeight int    `bson:"question_weight" json:"question_weight"`
	PrimaryLabel   string `bson:"primary_label" json:"primary_label"`
	SpouseLabel    string `bson:"spouse_label" json:"spouse_label"`
}

type DifferenceAnalysis struct {
	DifferentResponses []DifferenceItem `bson:"different_responses" json:"different_responses"`
	MajorDifferences   []DifferenceItem `bson:"major_differences" json:"major_differences"`
	StrengthAreas      []string         `bson:"strength_areas" json:"strength_areas"`
	VulnerabilityAreas []string         `bson:"vulnerability_areas" json:"vulnerability_areas"`
	// TotalCommon counts questions both respondents answered; questions
	// either party skipped are counted neither as matching nor differing.
	TotalCommon int `bson:"total_common" json:"total_common"`
}
