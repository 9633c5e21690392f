package models

// Response is one respondent's answer to one question. Label is the
// canonical option label after normalization, Value its numeric score.
type Response struct {
	QuestionID string `bson:"question_id" json:"question_id"`
	Label      string `bson:"label" json:"label"`
	Value      int    `bson:"value" json:"value"`
}

// ResponseMap keys responses by question id. Unanswered questions are
// simply absent, never zero-filled.
type ResponseMap map[string]Response
