package scoring

import (
	"fmt"
	"strings"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

// midpointValue is assigned when no normalization rule matches. An
// unclassifiable answer must never abort a batch job.
const midpointValue = 3

// keywordLadder classifies free-text answers from legacy import sources.
// Rules are evaluated in order: the strong forms come first so that
// "strongly agree" is not swallowed by the "agree" rule, and "disagree"
// is checked before "agree" because the latter is a substring of it.
var keywordLadder = []struct {
	keywords []string
	value    int
}{
	{[]string{"strongly agree", "always"}, 5},
	{[]string{"strongly disagree", "never"}, 1},
	{[]string{"disagree", "rarely"}, 2},
	{[]string{"agree", "often"}, 4},
	{[]string{"neutral", "sometimes"}, 3},
}

// Warning records input that could not be matched to a catalog option.
// Warnings are surfaced to the caller, never raised as errors.
type Warning struct {
	QuestionID string
	Raw        string
	Reason     string
}

func (w Warning) String() string {
	return fmt.Sprintf("question %s: %s (answer %q)", w.QuestionID, w.Reason, w.Raw)
}

// NormalizeAnswer resolves a raw text answer against a question's options.
// Exact (case-insensitive) label match wins; otherwise the keyword ladder
// classifies the text; otherwise the midpoint value is assigned and the
// second return is false so the caller can surface a warning.
func NormalizeAnswer(q *models.Question, raw string) (models.Response, bool) {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	for _, opt := range q.Options {
		if strings.ToLower(opt.Label) == lowered {
			return models.Response{QuestionID: q.ID, Label: opt.Label, Value: opt.Value}, true
		}
	}

	for _, rule := range keywordLadder {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return models.Response{QuestionID: q.ID, Label: optionLabel(q, rule.value, trimmed), Value: rule.value}, true
			}
		}
	}

	return models.Response{QuestionID: q.ID, Label: optionLabel(q, midpointValue, trimmed), Value: midpointValue}, false
}

// optionLabel prefers the catalog label carrying the resolved value so the
// stored response stays canonical; the raw text is kept only when the
// question has no option at that value.
func optionLabel(q *models.Question, value int, raw string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return raw
}

// NormalizeAll resolves a full raw answer map against the catalog. Answers
// referencing unknown question ids are skipped, and midpoint fallbacks are
// reported; both produce warnings rather than errors.
func NormalizeAll(cat *catalog.Catalog, raw map[string]string) (models.ResponseMap, []Warning) {
	responses := make(models.ResponseMap, len(raw))
	var warnings []Warning

	for _, q := range cat.Questions() {
		answer, ok := raw[q.ID]
		if !ok {
			continue
		}
		resp, matched := NormalizeAnswer(&q, answer)
		if !matched {
			warnings = append(warnings, Warning{
				QuestionID: q.ID,
				Raw:        answer,
				Reason:     "unclassifiable answer, midpoint value assigned",
			})
		}
		responses[q.ID] = resp
	}

	for id, answer := range raw {
		if _, ok := cat.Question(id); !ok {
			warnings = append(warnings, Warning{
				QuestionID: id,
				Raw:        answer,
				Reason:     "unknown question id, response skipped",
			})
		}
	}

	return responses, warnings
}
