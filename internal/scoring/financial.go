package scoring

import (
	"fmt"
	"strings"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Financial point caps.
const (
	financialMaxPoints      = 15.0
	affordabilityCap        = 9.0
	affordabilityNeutral    = 4.5 // budget or price unknown
	stabilityCap            = 6.0
	stabilityRatingCap      = 4.0
	stabilityChainBonus     = 1.0
	stabilityTenureBonus    = 1.0
	stabilityTenureYearsMin = 5.0
)

// solvencyFactors maps the filings provider's solvency grade to a factor.
// Monotonic: a stronger grade never scores lower.
var solvencyFactors = map[string]float64{
	"strong":     1.0,
	"stable":     0.75,
	"watch":      0.4,
	"distressed": 0.0,
}

type financialCalculator struct{}

func (financialCalculator) Name() string       { return CategoryFinancial }
func (financialCalculator) MaxPoints() float64 { return financialMaxPoints }

func (c financialCalculator) Calculate(f *model.Facility, q *model.Questionnaire, src enrich.SourceSet) Result {
	financial := src.Source(enrich.SourceFinancial)

	affordability := c.affordabilityScore(f, q)
	stability := c.stabilityScore(f, financial)

	total := affordability + stability
	reason := fmt.Sprintf("affordability %.1f/%.0f, operator stability %.1f/%.0f",
		affordability, affordabilityCap, stability, stabilityCap)

	return Result{Value: normalize(total, financialMaxPoints), Reasoning: reason}
}

// affordabilityScore bands the facility's weekly price against the user's
// budget. Unknown budget or price is no information and scores neutral.
func (financialCalculator) affordabilityScore(f *model.Facility, q *model.Questionnaire) float64 {
	if q.WeeklyBudget <= 0 || f.WeeklyPrice <= 0 {
		return affordabilityNeutral
	}

	ratio := f.WeeklyPrice / q.WeeklyBudget
	switch {
	case ratio <= 0.8:
		return affordabilityCap
	case ratio <= 1.0:
		return affordabilityCap * 0.75
	case ratio <= 1.2:
		return affordabilityCap * 0.33
	default:
		return 0
	}
}

// stabilityScore maps the filings provider's solvency grade through its
// factor table and adds presence bonuses for chain backing and trading
// history.
func (financialCalculator) stabilityScore(f *model.Facility, financial enrich.Tree) float64 {
	var pts float64

	if grade, ok := financial.String("solvency_grade"); ok {
		if factor, ok := solvencyFactors[strings.ToLower(strings.TrimSpace(grade))]; ok {
			pts += factor * stabilityRatingCap
		}
	}
	if f.Chain {
		pts += stabilityChainBonus
	}
	if years, ok := financial.Float("years_trading"); ok && years >= stabilityTenureYearsMin {
		pts += stabilityTenureBonus
	}

	return clamp(pts, 0, stabilityCap)
}
