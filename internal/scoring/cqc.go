package scoring

import (
	"fmt"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// CQC point caps. The overall rating carries the bulk; the four domain
// ratings are independently mapped and weighted 3/3/3/2.
const (
	cqcMaxPoints     = 23.0
	cqcOverallCap    = 12.0
	cqcEffectiveCap  = 3.0
	cqcCaringCap     = 3.0
	cqcResponsiveCap = 3.0
	cqcWellLedCap    = 2.0
)

type cqcCalculator struct{}

func (cqcCalculator) Name() string       { return CategoryCQC }
func (cqcCalculator) MaxPoints() float64 { return cqcMaxPoints }

func (c cqcCalculator) Calculate(f *model.Facility, _ *model.Questionnaire, src enrich.SourceSet) Result {
	detailed := src.Source(enrich.SourceCQCDetailed)

	overall := c.overallScore(f, detailed)

	domains := 0.0
	domains += domainScore(detailed, "effective", cqcEffectiveCap)
	domains += domainScore(detailed, "caring", cqcCaringCap)
	domains += domainScore(detailed, "responsive", cqcResponsiveCap)
	domains += domainScore(detailed, "well_led", cqcWellLedCap)

	total := overall + domains
	reason := fmt.Sprintf("overall %.1f/%.0f, domains %.1f/%.0f",
		overall, cqcOverallCap, domains,
		cqcEffectiveCap+cqcCaringCap+cqcResponsiveCap+cqcWellLedCap)

	return Result{Value: normalize(total, cqcMaxPoints), Reasoning: reason}
}

// overallScore prefers the detailed inspection feed, falling back to the
// rating carried on the directory record.
func (cqcCalculator) overallScore(f *model.Facility, detailed enrich.Tree) float64 {
	if factor, ok := sourceRatingFactor(detailed, "overall_rating"); ok {
		return factor * cqcOverallCap
	}
	if factor, ok := RatingFactor(f.RegulatorRating); ok {
		return factor * cqcOverallCap
	}
	return 0
}

// domainScore maps one named domain rating through the canonical factor
// table and scales it to the domain's cap. Absent domains contribute
// nothing.
func domainScore(detailed enrich.Tree, domain string, capPts float64) float64 {
	factor, ok := sourceRatingFactor(detailed, "domains", domain)
	if !ok {
		return 0
	}
	return clamp(factor*capPts, 0, capPts)
}
