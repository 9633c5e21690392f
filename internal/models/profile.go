package models

import "strings"

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// ParseGender converts free-text demographic input into the closed gender
// enum once, at the boundary, so downstream logic never re-parses strings.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "man":
		return GenderMale
	case "female", "f", "woman":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

// ProfileCriterion bounds one section's percentage. A nil bound means
// unconstrained on that side; at least one bound must be present.
type ProfileCriterion struct {
	Section string   `bson:"section" json:"section"`
	Min     *float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `bson:"max,omitempty" json:"max,omitempty"`
}

// Profile is a static catalog entry. Catalog order is semantically
// significant: classification is first-match over this order.
type Profile struct {
	ID             string             `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	GenderSpecific Gender             `bson:"gender_specific,omitempty" json:"gender_specific,omitempty"`
	Criteria       []ProfileCriterion `bson:"criteria" json:"criteria"`
}
