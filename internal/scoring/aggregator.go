package scoring

import (
	"sort"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

const rankedAreaCount = 3

// Score aggregates one respondent's responses into section and overall
// scores. Only answered questions contribute to a section's earned and
// possible totals; a section with zero answered questions is omitted from
// the result entirely so a skipped section never reads as a 0% weak area.
func Score(cat *catalog.Catalog, responses models.ResponseMap) (*models.AssessmentScores, error) {
	if cat == nil || len(cat.Questions()) == 0 {
		return nil, ErrMissingCatalog
	}

	earned := make(map[string]int)
	possible := make(map[string]int)
	for _, q := range cat.Questions() {
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}
		w := q.EffectiveWeight()
		earned[q.Section] += resp.Value * w
		possible[q.Section] += q.MaxOptionValue() * w
	}

	scores := &models.AssessmentScores{
		Sections: make(map[string]models.SectionScore),
	}

	// Catalog section order keeps the later ranking deterministic when
	// two sections carry the same percentage.
	var ranked []string
	for _, section := range cat.Sections() {
		p := possible[section]
		if p == 0 {
			continue
		}
		e := earned[section]
		scores.Sections[section] = models.SectionScore{
			Earned:     e,
			Possible:   p,
			Percentage: float64(e) / float64(p) * 100,
		}
		scores.TotalEarned += e
		scores.TotalPossible += p
		ranked = append(ranked, section)
	}

	if scores.TotalPossible > 0 {
		scores.OverallPercentage = float64(scores.TotalEarned) / float64(scores.TotalPossible) * 100
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.Sections[ranked[i]].Percentage > scores.Sections[ranked[j]].Percentage
	})

	scores.Strengths, scores.ImprovementAreas = splitRanked(ranked)
	return scores, nil
}

// splitRanked takes sections sorted strongest-first and produces the
// strengths (top) and improvement areas (bottom, weakest first). The two
// lists never overlap: with fewer than six sections, improvement areas are
// drawn only from what the strengths did not claim.
func splitRanked(ranked []string) (strengths, improvements []string) {
	n := rankedAreaCount
	if n > len(ranked) {
		n = len(ranked)
	}
	strengths = append(strengths, ranked[:n]...)

	rest := ranked[n:]
	m := rankedAreaCount
	if m > len(rest) {
		m = len(rest)
	}
	for i := 0; i < m; i++ {
		improvements = append(improvements, rest[len(rest)-1-i])
	}
	return strengths, improvements
}
