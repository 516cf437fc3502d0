package scoring

import (
	"fmt"
	"strings"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Medical point caps.
const (
	medicalMaxPoints      = 25.0
	medicalNeedsCap       = 12.0
	medicalNeedPoints     = 3.0
	medicalNeedsNeutral   = 9.0 // user declared no conditions: generic fit
	medicalClinicalCap    = 8.0
	medicalNursing24x7    = 4.0
	medicalGPAccess       = 2.0
	medicalMedsManagement = 2.0
	medicalDementiaCap    = 5.0
	medicalDementiaUnit   = 3.0
	medicalDementiaStaff  = 2.0
)

type medicalCalculator struct{}

func (medicalCalculator) Name() string       { return CategoryMedical }
func (medicalCalculator) MaxPoints() float64 { return medicalMaxPoints }

func (c medicalCalculator) Calculate(f *model.Facility, q *model.Questionnaire, src enrich.SourceSet) Result {
	detailed := src.Source(enrich.SourceCQCDetailed)

	needs := c.careNeedsScore(f, q, detailed)
	clinical := c.clinicalScore(detailed)
	dementia := c.dementiaScore(q, detailed)

	total := needs + clinical + dementia
	reason := fmt.Sprintf("care needs %.1f/%.0f, clinical %.1f/%.0f, dementia support %.1f/%.0f",
		needs, medicalNeedsCap, clinical, medicalClinicalCap, dementia, medicalDementiaCap)

	return Result{Value: normalize(total, medicalMaxPoints), Reasoning: reason}
}

// careNeedsScore awards points for each declared condition the facility
// covers through its care types or the regulator's specialism list. A
// questionnaire with no declared conditions scores a generic 75% — no
// information is not a failing facility.
func (medicalCalculator) careNeedsScore(f *model.Facility, q *model.Questionnaire, detailed enrich.Tree) float64 {
	if len(q.MedicalConditions) == 0 {
		return medicalNeedsNeutral
	}

	coverage := make([]string, 0, len(f.CareTypes))
	for _, ct := range f.CareTypes {
		coverage = append(coverage, strings.ToLower(ct))
	}
	if specialisms, ok := detailed.Strings("specialisms"); ok {
		for _, s := range specialisms {
			coverage = append(coverage, strings.ToLower(s))
		}
	}

	var pts float64
	for _, cond := range q.MedicalConditions {
		needle := strings.ToLower(strings.TrimSpace(cond))
		if needle == "" {
			continue
		}
		for _, c := range coverage {
			if strings.Contains(c, needle) || strings.Contains(needle, c) {
				pts += medicalNeedPoints
				break
			}
		}
	}

	return clamp(pts, 0, medicalNeedsCap)
}

// clinicalScore awards additive capped points for clinical provisions.
func (medicalCalculator) clinicalScore(detailed enrich.Tree) float64 {
	var pts float64

	if b, ok := detailed.Bool("nursing_24x7"); ok && b {
		pts += medicalNursing24x7
	}
	if b, ok := detailed.Bool("gp_access"); ok && b {
		pts += medicalGPAccess
	}
	if b, ok := detailed.Bool("medication_management"); ok && b {
		pts += medicalMedsManagement
	}

	return clamp(pts, 0, medicalClinicalCap)
}

// dementiaScore rewards dedicated dementia provision. The dynamic weight
// engine separately boosts the whole category for dementia diagnoses;
// here the facility-side signals are scored on their own merits.
func (medicalCalculator) dementiaScore(q *model.Questionnaire, detailed enrich.Tree) float64 {
	var pts float64

	if b, ok := detailed.Bool("dementia_unit"); ok && b {
		pts += medicalDementiaUnit
	}
	if b, ok := detailed.Bool("dementia_trained_staff"); ok && b {
		pts += medicalDementiaStaff
	}

	// Without a dementia diagnosis the provision matters less; halve it.
	if !q.HasCondition("dementia") {
		pts /= 2
	}

	return clamp(pts, 0, medicalDementiaCap)
}
