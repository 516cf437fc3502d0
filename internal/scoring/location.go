package scoring

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Location point caps.
const (
	locationMaxPoints      = 25.0
	locationDistanceCap    = 15.0
	locationAccessCap      = 10.0
	accessWheelchairNeeded = 4.0 // when the user's mobility requires step-free access
	accessWheelchair       = 2.0
	accessGroundFloor      = 2.0
	accessLift             = 2.0
	accessParking          = 2.0
)

type locationCalculator struct{}

func (locationCalculator) Name() string       { return CategoryLocation }
func (locationCalculator) MaxPoints() float64 { return locationMaxPoints }

func (c locationCalculator) Calculate(f *model.Facility, q *model.Questionnaire, src enrich.SourceSet) Result {
	distance := c.distanceScore(f, q)
	access := c.accessScore(f, q, src.Source(enrich.SourceGooglePlaces))

	total := distance + access
	reason := fmt.Sprintf("distance %.1f/%.0f, accessibility %.1f/%.0f",
		distance, locationDistanceCap, access, locationAccessCap)

	return Result{Value: normalize(total, locationMaxPoints), Reasoning: reason}
}

// distanceScore applies the breakpoints for the user's declared distance
// tolerance bucket. A missing or sentinel distance scores zero — distance
// is the one signal whose absence floors the sub-score, since ranking by
// location without a distance is meaningless.
func (locationCalculator) distanceScore(f *model.Facility, q *model.Questionnaire) float64 {
	if !f.HasValidDistance() {
		zap.L().Warn("scoring: facility missing usable distance",
			zap.String("facility_id", f.ID),
		)
		return 0
	}
	km := *f.DistanceKM

	switch q.DistancePreference {
	case model.DistanceTight:
		switch {
		case km <= 5:
			return locationDistanceCap
		case km <= 15:
			return locationDistanceCap * 0.5
		default:
			return 0
		}
	case model.DistanceMedium:
		switch {
		case km <= 15:
			return locationDistanceCap
		case km <= 30:
			return locationDistanceCap * 0.6
		case km <= 50:
			return locationDistanceCap * 0.3
		default:
			return 0
		}
	case model.DistanceLoose:
		switch {
		case km <= 30:
			return locationDistanceCap
		case km <= 60:
			return locationDistanceCap * 0.6
		case km <= 100:
			return locationDistanceCap * 0.3
		default:
			return 0
		}
	default:
		// Unspecified bucket uses absolute breakpoints.
		switch {
		case km <= 10:
			return locationDistanceCap
		case km <= 25:
			return locationDistanceCap * 0.8
		case km <= 50:
			return locationDistanceCap * 0.5
		case km <= 100:
			return locationDistanceCap * 0.2
		default:
			return 0
		}
	}
}

// accessScore sums discrete increments for each accessibility feature,
// independently checked, clamped to its own cap. Wheelchair access weighs
// double when the user's mobility level requires it.
func (locationCalculator) accessScore(f *model.Facility, q *model.Questionnaire, places enrich.Tree) float64 {
	var pts float64

	wheelchair := f.WheelchairAccessible
	if !wheelchair {
		// The places listing sometimes knows what the directory feed missed.
		if b, ok := places.Bool("wheelchair_accessible_entrance"); ok {
			wheelchair = b
		}
	}
	if wheelchair {
		if q.Mobility.NeedsStepFreeAccess() {
			pts += accessWheelchairNeeded
		} else {
			pts += accessWheelchair
		}
	}
	if f.GroundFloorRooms {
		pts += accessGroundFloor
	}
	if f.LiftAccess {
		pts += accessLift
	}
	if f.Parking {
		pts += accessParking
	}

	return clamp(pts, 0, locationAccessCap)
}
