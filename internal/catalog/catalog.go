package catalog

import (
	"fmt"

	"assessment-service/internal/models"
)

// Catalog is the read-only set of questions, sections, and profile rules
// driving scoring and classification. It is built once and injected into
// every scoring call; nothing mutates it after New returns.
type Catalog struct {
	questions []models.Question
	byID      map[string]*models.Question
	sections  []string
	profiles  []models.Profile
}

// New validates and assembles a catalog. Question and profile order is
// preserved: section ranking tie-breaks and first-match classification
// both depend on declaration order.
func New(questions []models.Question, profiles []models.Profile) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	c := &Catalog{
		questions: make([]models.Question, 0, len(questions)),
		byID:      make(map[string]*models.Question, len(questions)),
		profiles:  make([]models.Profile, 0, len(profiles)),
	}

	seenSection := make(map[string]bool)
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: question with empty id", ErrInvalidQuestion)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuestion, q.ID)
		}
		if q.Section == "" {
			return nil, fmt.Errorf("%w: question %q has no section", ErrInvalidQuestion, q.ID)
		}
		if len(q.Options) == 0 && q.Type == models.QuestionTypeAgreeDisagree {
			q.Options = models.AgreeDisagreeOptions
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %q has no options", ErrInvalidQuestion, q.ID)
		}
		for _, opt := range q.Options {
			if opt.Value < 1 || opt.Value > 5 {
				return nil, fmt.Errorf("%w: question %q option %q value %d out of range",
					ErrInvalidQuestion, q.ID, opt.Label, opt.Value)
			}
		}
		if q.Weight < 1 {
			q.Weight = 1
		}

		c.questions = append(c.questions, q)
		c.byID[q.ID] = &c.questions[len(c.questions)-1]
		if !seenSection[q.Section] {
			seenSection[q.Section] = true
			c.sections = append(c.sections, q.Section)
		}
	}

	for _, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: profile with empty name", ErrInvalidProfile)
		}
		for _, crit := range p.Criteria {
			if crit.Min == nil && crit.Max == nil {
				return nil, fmt.Errorf("%w: profile %q criterion on %q has no bounds",
					ErrInvalidProfile, p.Name, crit.Section)
			}
			if crit.Min != nil && crit.Max != nil && *crit.Min > *crit.Max {
				return nil, fmt.Errorf("%w: profile %q criterion on %q has min > max",
					ErrInvalidProfile, p.Name, crit.Section)
			}
		}
		c.profiles = append(c.profiles, p)
	}

	return c, nil
}

// Questions returns the catalog questions in declaration order.
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (*models.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Sections returns section names in the order they first appear.
func (c *Catalog) Sections() []string {
	return c.sections
}

// Profiles returns the profile rules in catalog order.
func (c *Catalog) Profiles() []models.Profile {
	return c.profiles
}
