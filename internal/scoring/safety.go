package scoring

import (
	"fmt"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Safety point caps.
const (
	safetyMaxPoints       = 20.0
	safetySafeDomainCap   = 10.0
	safetyHygieneCap      = 5.0
	safetyRecordCap       = 5.0
	safetyNoEnforcement   = 2.5
	safetyUnknownRecord   = 1.25 // enforcement history unknown: half credit
	safetySecureSignalPts = 1.25
)

type safetyCalculator struct{}

func (safetyCalculator) Name() string       { return CategorySafety }
func (safetyCalculator) MaxPoints() float64 { return safetyMaxPoints }

func (c safetyCalculator) Calculate(_ *model.Facility, _ *model.Questionnaire, src enrich.SourceSet) Result {
	detailed := src.Source(enrich.SourceCQCDetailed)
	fsa := src.Source(enrich.SourceFSA)

	safe := domainScore(detailed, "safe", safetySafeDomainCap)
	hygiene := c.hygieneScore(fsa)
	record := c.recordScore(detailed)

	total := safe + hygiene + record
	reason := fmt.Sprintf("safe domain %.1f/%.0f, food hygiene %.1f/%.0f, record %.1f/%.0f",
		safe, safetySafeDomainCap, hygiene, safetyHygieneCap, record, safetyRecordCap)

	return Result{Value: normalize(total, safetyMaxPoints), Reasoning: reason}
}

// hygieneScore rescales the FSA 0-5 food hygiene rating to its cap.
func (safetyCalculator) hygieneScore(fsa enrich.Tree) float64 {
	rating, ok := fsa.Float("hygiene_rating")
	if !ok {
		return 0
	}
	return clamp(rating/5.0*safetyHygieneCap, 0, safetyHygieneCap)
}

// recordScore rewards a clean enforcement history plus secure-premises
// signals. An unknown enforcement history gets half credit: absence of
// the field is no information, not a clean bill.
func (safetyCalculator) recordScore(detailed enrich.Tree) float64 {
	var pts float64

	if enforcement, ok := detailed.Bool("enforcement_actions"); ok {
		if !enforcement {
			pts += safetyNoEnforcement
		}
	} else {
		pts += safetyUnknownRecord
	}

	if b, ok := detailed.Bool("secure_entry"); ok && b {
		pts += safetySecureSignalPts
	}
	if b, ok := detailed.Bool("call_bell_system"); ok && b {
		pts += safetySecureSignalPts
	}

	return clamp(pts, 0, safetyRecordCap)
}
