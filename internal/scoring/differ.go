package scoring

import (
	"sort"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

// Analyzer compares two respondents' answers question by question.
type Analyzer struct {
	cat *catalog.Catalog
	cfg *Config
}

func NewAnalyzer(cat *catalog.Catalog, cfg *Config) *Analyzer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Analyzer{cat: cat, cfg: cfg}
}

// Diff walks the catalog in order and compares the two response maps on
// questions both respondents answered. Responses differ when their
// normalized option labels differ; two distinct labels that happen to map
// to the same numeric value still count as a difference, since they
// represent real answer drift. Questions either party skipped are counted
// neither as matching nor as differing.
func (a *Analyzer) Diff(primary, spouse models.ResponseMap) *models.DifferenceAnalysis {
	analysis := &models.DifferenceAnalysis{
		DifferentResponses: []models.DifferenceItem{},
		MajorDifferences:   []models.DifferenceItem{},
	}

	diffWeight := make(map[string]int)
	commonSections := make(map[string]bool)

	for _, q := range a.cat.Questions() {
		p, okP := primary[q.ID]
		s, okS := spouse[q.ID]
		if !okP || !okS {
			continue
		}
		analysis.TotalCommon++
		commonSections[q.Section] = true

		if p.Label == s.Label {
			continue
		}
		item := models.DifferenceItem{
			QuestionID:     q.ID,
			Section:        q.Section,
			QuestionWeight: q.EffectiveWeight(),
			PrimaryLabel:   p.Label,
			SpouseLabel:    s.Label,
		}
		analysis.DifferentResponses = append(analysis.DifferentResponses, item)
		diffWeight[q.Section] += item.QuestionWeight
		if item.QuestionWeight >= a.cfg.MajorDifferenceThreshold {
			analysis.MajorDifferences = append(analysis.MajorDifferences, item)
		}
	}

	analysis.StrengthAreas, analysis.VulnerabilityAreas = a.rankSections(commonSections, diffWeight)
	return analysis
}

// rankSections orders the sections both respondents engaged with by their
// total difference weight: the lightest become strength areas, the
// heaviest (only those with at least one difference, and never ones
// already taken as strengths) become vulnerability areas. Catalog order
// breaks ties to keep results deterministic.
func (a *Analyzer) rankSections(common map[string]bool, diffWeight map[string]int) (strengths, vulnerabilities []string) {
	var sections []string
	for _, s := range a.cat.Sections() {
		if common[s] {
			sections = append(sections, s)
		}
	}

	ranked := make([]string, len(sections))
	copy(ranked, sections)
	sort.SliceStable(ranked, func(i, j int) bool {
		return diffWeight[ranked[i]] < diffWeight[ranked[j]]
	})

	n := a.cfg.StrengthAreaCount
	if n > len(ranked) {
		n = len(ranked)
	}
	strengths = append(strengths, ranked[:n]...)

	taken := make(map[string]bool, len(strengths))
	for _, s := range strengths {
		taken[s] = true
	}

	rest := ranked[n:]
	m := a.cfg.VulnerabilityAreaCount
	for i := len(rest) - 1; i >= 0 && len(vulnerabilities) < m; i-- {
		s := rest[i]
		if diffWeight[s] == 0 || taken[s] {
			continue
		}
		vulnerabilities = append(vulnerabilities, s)
	}
	return strengths, vulnerabilities
}
