package model

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// MobilityLevel describes the user's declared mobility.
type MobilityLevel string

const (
	MobilityIndependent MobilityLevel = "independent"
	MobilityAided       MobilityLevel = "aided"
	MobilityWheelchair  MobilityLevel = "wheelchair"
	MobilityBedbound    MobilityLevel = "bedbound"
)

// NeedsStepFreeAccess reports whether the mobility level requires
// wheelchair-friendly premises.
func (m MobilityLevel) NeedsStepFreeAccess() bool {
	return m == MobilityWheelchair || m == MobilityBedbound
}

// DistancePreference is the user's declared distance tolerance bucket.
// An empty value means the user did not express a preference.
type DistancePreference string

const (
	DistanceTight       DistancePreference = "tight"
	DistanceMedium      DistancePreference = "medium"
	DistanceLoose       DistancePreference = "loose"
	DistanceUnspecified DistancePreference = ""
)

// Questionnaire holds the user's structured preferences for one request.
// Immutable once validated.
type Questionnaire struct {
	Postcode           string             `json:"postcode,omitempty" yaml:"postcode,omitempty"`
	DistancePreference DistancePreference `json:"distance_preference,omitempty" yaml:"distance_preference,omitempty"`
	Mobility           MobilityLevel      `json:"mobility,omitempty" yaml:"mobility,omitempty"`
	MedicalConditions  []string           `json:"medical_conditions,omitempty" yaml:"medical_conditions,omitempty"`
	CareLevel          string             `json:"care_level,omitempty" yaml:"care_level,omitempty"`
	WeeklyBudget       float64            `json:"weekly_budget,omitempty" yaml:"weekly_budget,omitempty"`

	// Priorities lists category names the user flagged as most important.
	Priorities []string `json:"priorities,omitempty" yaml:"priorities,omitempty"`

	// PriorityWeights are optional percentage hints per category. When
	// present they must sum to 100.
	PriorityWeights map[string]float64 `json:"priority_weights,omitempty" yaml:"priority_weights,omitempty"`
}

// HasCondition reports whether the questionnaire declares the given
// medical condition (case-insensitive substring match, matching how the
// upstream intake form free-texts conditions).
func (q *Questionnaire) HasCondition(name string) bool {
	for _, c := range q.MedicalConditions {
		if strings.Contains(strings.ToLower(c), strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// Validate checks the questionnaire at the orchestration boundary.
// Calculators downstream consume the structure defensively and never
// re-validate.
func (q *Questionnaire) Validate() error {
	var errs []string

	if q.WeeklyBudget < 0 {
		errs = append(errs, "weekly_budget must be >= 0")
	}

	switch q.Mobility {
	case "", MobilityIndependent, MobilityAided, MobilityWheelchair, MobilityBedbound:
	default:
		errs = append(errs, "mobility must be one of independent, aided, wheelchair, bedbound")
	}

	switch q.DistancePreference {
	case DistanceUnspecified, DistanceTight, DistanceMedium, DistanceLoose:
	default:
		errs = append(errs, "distance_preference must be one of tight, medium, loose")
	}

	if len(q.PriorityWeights) > 0 {
		var sum float64
		for name, w := range q.PriorityWeights {
			if w < 0 {
				errs = append(errs, "priority weight for "+name+" must be >= 0")
			}
			sum += w
		}
		if math.Abs(sum-100) > 0.01 {
			errs = append(errs, "priority_weights must sum to 100")
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("model: invalid questionnaire: %s", strings.Join(errs, "; "))
	}
	return nil
}
