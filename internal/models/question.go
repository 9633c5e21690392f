package models

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeAgreeDisagree  QuestionType = "agree_disagree"
)

type Option struct {
	Label string `bson:"label" json:"label"`
	Value int    `bson:"value" json:"value"` // 1..5, higher = more traditional/agreeing
}

type Question struct {
	ID      string       `bson:"_id,omitempty" json:"id"`
	Text    string       `bson:"text" json:"text"`
	Section string       `bson:"section" json:"section"`
	Type    QuestionType `bson:"type" json:"type"`
	Weight  int          `bson:"weight" json:"weight"`
	Options []Option     `bson:"options" json:"options"`
}

// MaxOptionValue returns the highest value among the question's options.
func (q *Question) MaxOptionValue() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

// EffectiveWeight treats a missing weight as the default of 1.
func (q *Question) EffectiveWeight() int {
	if q.Weight < 1 {
		return 1
	}
	return q.Weight
}

// AgreeDisagreeOptions is the standard five-point scale used by
// agree/disagree questions when a question does not declare its own.
var AgreeDisagreeOptions = []Option{
	{Label: "Strongly Agree", Value: 5},
	{Label: "Agree", Value: 4},
	{Label: "Neutral", Value: 3},
	{Label: "Disagree", Value: 2},
	{Label: "Strongly Disagree", Value: 1},
}
