package scoring

import (
	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

// MatchPolicy selects one profile from the eligible candidates, which are
// passed in catalog order. The policy is explicit so a scored best-match
// variant can be swapped in without touching call sites.
type MatchPolicy func(eligible []models.Profile) *models.Profile

// FirstMatch returns the first eligible profile in catalog order. Later
// profiles are never compared even if their criteria fit more tightly;
// this mirrors the behavior the published reports were built on.
func FirstMatch(eligible []models.Profile) *models.Profile {
	if len(eligible) == 0 {
		return nil
	}
	return &eligible[0]
}

// Classifier assigns psychographic profiles from section scores via an
// ordered rule scan. It never errors: when nothing matches, the configured
// default profile is returned.
type Classifier struct {
	profiles []models.Profile
	fallback models.Profile
	policy   MatchPolicy
}

func NewClassifier(cat *catalog.Catalog, cfg *Config) *Classifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Classifier{
		profiles: cat.Profiles(),
		fallback: cfg.DefaultProfile,
		policy:   FirstMatch,
	}
}

// WithPolicy returns a copy of the classifier using the given policy.
func (c *Classifier) WithPolicy(policy MatchPolicy) *Classifier {
	clone := *c
	clone.policy = policy
	return &clone
}

// Classify evaluates the full profile catalog against the section scores.
func (c *Classifier) Classify(sections map[string]models.SectionScore, gender models.Gender) models.Profile {
	var eligible []models.Profile
	for _, p := range c.profiles {
		if genderEligible(p, gender) && criteriaPass(p, sections) {
			eligible = append(eligible, p)
		}
	}
	if match := c.policy(eligible); match != nil {
		return *match
	}
	return c.fallback
}

// ClassifyGendered runs the same scan restricted to gender-specific
// profiles. It returns nil when none apply; the gender profile is an
// optional second assignment, not a replacement for the general one.
func (c *Classifier) ClassifyGendered(sections map[string]models.SectionScore, gender models.Gender) *models.Profile {
	var eligible []models.Profile
	for _, p := range c.profiles {
		if p.GenderSpecific == "" {
			continue
		}
		if genderEligible(p, gender) && criteriaPass(p, sections) {
			eligible = append(eligible, p)
		}
	}
	if match := c.policy(eligible); match != nil {
		out := *match
		return &out
	}
	return nil
}

// genderEligible gates a profile on the respondent's gender. Respondents
// who did not specify a gender remain eligible for every profile.
func genderEligible(p models.Profile, gender models.Gender) bool {
	return p.GenderSpecific == "" || p.GenderSpecific == gender || gender == models.GenderUnspecified
}

// criteriaPass requires every criterion to hold. A section absent from the
// score map is treated as 0, which fails any minimum bound.
func criteriaPass(p models.Profile, sections map[string]models.SectionScore) bool {
	for _, crit := range p.Criteria {
		pct := sections[crit.Section].Percentage
		if crit.Min != nil && pct < *crit.Min {
			return false
		}
		if crit.Max != nil && pct > *crit.Max {
			return false
		}
	}
	return true
}
