package scoring

import (
	"fmt"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Staff point caps.
const (
	staffMaxPoints        = 18.0
	staffSatisfactionCap  = 6.0
	staffRetentionCap     = 7.0
	staffQualCap          = 5.0
	staffCertIncrement    = 0.75
	staffCertPointsCap    = 3.0
	staffManagementCap    = 2.0
	staffTenureBonus      = 1.0
	staffTenureBonusYears = 2.0
)

type staffCalculator struct{}

func (staffCalculator) Name() string       { return CategoryStaff }
func (staffCalculator) MaxPoints() float64 { return staffMaxPoints }

func (c staffCalculator) Calculate(_ *model.Facility, _ *model.Questionnaire, src enrich.SourceSet) Result {
	staff := src.Source(enrich.SourceStaffData)

	satisfaction := c.satisfactionScore(staff)
	retention := c.retentionScore(staff)
	qualifications := c.qualificationScore(staff)

	total := satisfaction + retention + qualifications
	reason := fmt.Sprintf("satisfaction %.1f/%.0f, retention %.1f/%.0f, qualifications %.1f/%.0f",
		satisfaction, staffSatisfactionCap,
		retention, staffRetentionCap,
		qualifications, staffQualCap)

	return Result{Value: normalize(total, staffMaxPoints), Reasoning: reason}
}

// satisfactionScore rescales the external 0-5 satisfaction rating to the
// sub-score cap.
func (staffCalculator) satisfactionScore(staff enrich.Tree) float64 {
	rating, ok := staff.Float("satisfaction_rating")
	if !ok {
		return 0
	}
	return clamp(rating/5.0*staffSatisfactionCap, 0, staffSatisfactionCap)
}

// retentionScore starts at the ceiling and steps down across turnover
// bands, with a small bonus for long average tenure, capped at the
// ceiling.
func (staffCalculator) retentionScore(staff enrich.Tree) float64 {
	turnover, ok := staff.Float("turnover_rate_percent")
	if !ok {
		return 0
	}

	var pts float64
	switch {
	case turnover <= 10:
		pts = staffRetentionCap
	case turnover <= 20:
		pts = 5.0
	case turnover <= 30:
		pts = 3.5
	case turnover <= 50:
		pts = 1.5
	default:
		pts = 0
	}

	if tenure, ok := staff.Float("avg_tenure_years"); ok && tenure >= staffTenureBonusYears {
		pts += staffTenureBonus
	}

	return clamp(pts, 0, staffRetentionCap)
}

// qualificationScore sums a per-certification increment plus a rescaled
// management rating contribution.
func (staffCalculator) qualificationScore(staff enrich.Tree) float64 {
	var pts float64

	if certs, ok := staff.Strings("certifications"); ok {
		certPts := float64(len(certs)) * staffCertIncrement
		pts += clamp(certPts, 0, staffCertPointsCap)
	}

	if mgmt, ok := staff.Float("management_rating"); ok {
		pts += clamp(mgmt/5.0*staffManagementCap, 0, staffManagementCap)
	}

	return clamp(pts, 0, staffQualCap)
}
