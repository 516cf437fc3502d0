// Package scoring implements the per-category suitability calculators and
// the dynamic weight engine that combines them.
package scoring

import (
	"math"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Category names. These are the keys used in weight maps, CLI output and
// the calculator registry.
const (
	CategoryMedical   = "medical"
	CategorySafety    = "safety"
	CategoryLocation  = "location"
	CategoryFinancial = "financial"
	CategoryStaff     = "staff"
	CategoryCQC       = "cqc"
	CategorySocial    = "social"
	CategoryServices  = "services"
)

// Result is the outcome of one calculator for one facility.
type Result struct {
	// Value is the normalized score in [0,1].
	Value float64
	// Reasoning is a short human-readable explanation for the breakdown.
	Reasoning string
}

// Calculator scores one category of one facility. Implementations are
// pure: no shared mutable state, no I/O, and they never fail — missing
// or malformed enrichment degrades to a partial score.
type Calculator interface {
	Name() string
	MaxPoints() float64
	Calculate(f *model.Facility, q *model.Questionnaire, src enrich.SourceSet) Result
}

// Calculators returns all category calculators in the canonical order
// used for iteration and output.
func Calculators() []Calculator {
	return []Calculator{
		medicalCalculator{},
		safetyCalculator{},
		locationCalculator{},
		financialCalculator{},
		staffCalculator{},
		cqcCalculator{},
		socialCalculator{},
		servicesCalculator{},
	}
}

// normalize clamps raw points to [0, max] and rescales to [0,1].
func normalize(points, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp(points, 0, max) / max
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
