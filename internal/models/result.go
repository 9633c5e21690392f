package models

import "time"

// AssessmentSubmission is the raw payload for one respondent: demographic
// fields as submitted plus raw answer text keyed by question id.
type AssessmentSubmission struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email" binding:"required"`
	Gender    string            `json:"gender"`
	Age       int               `json:"age"`
	Answers   map[string]string `json:"answers" binding:"required"`
}

// AssessmentResult is one respondent's stored outcome.
type AssessmentResult struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	Respondent     Respondent `bson:"respondent" json:"respondent"`
	Warnings       []string   `bson:"warnings,omitempty" json:"warnings,omitempty"`
	SubmissionKind string     `bson:"submission_kind" json:"submission_kind"` // "live" or "import"
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// CoupleSubmission pairs two raw submissions for a joint analysis.
type CoupleSubmission struct {
	Primary AssessmentSubmission `json:"primary" binding:"required"`
	Spouse  AssessmentSubmission `json:"spouse" binding:"required"`
}

// CoupleResult is the stored outcome of a paired analysis.
type CoupleResult struct {
	ID            string             `bson:"_id,omitempty" json:"id"`
	Primary       AssessmentResult   `bson:"primary" json:"primary"`
	Spouse        AssessmentResult   `bson:"spouse" json:"spouse"`
	Analysis      DifferenceAnalysis `bson:"analysis" json:"analysis"`
	Compatibility int                `bson:"compatibility" json:"compatibility"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// ImportRow is one historical submission from a legacy export.
type ImportRow struct {
	Email   string            `json:"email"`
	Gender  string            `json:"gender"`
	Answers map[string]string `json:"answers"`
}

// ImportSummary reports the outcome of a batch import run.
type ImportSummary struct {
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Warnings  []string `json:"warnings,omitempty"`
}
