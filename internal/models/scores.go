package models

type SectionScore struct {
	Earned     int     `bson:"earned" json:"earned"`
	Possible   int     `bson:"possible" json:"possible"`
	Percentage float64 `bson:"percentage" json:"percentage"`
}

type AssessmentScores struct {
	Sections          map[string]SectionScore `bson:"sections" json:"sections"`
	OverallPercentage float64                 `bson:"overall_percentage" json:"overall_percentage"`
	TotalEarned       int                     `bson:"total_earned" json:"total_earned"`
	TotalPossible     int                     `bson:"total_possible" json:"total_possible"`
	Strengths         []string                `bson:"strengths" json:"strengths"`
	ImprovementAreas  []string                `bson:"improvement_areas" json:"improvement_areas"`
}
