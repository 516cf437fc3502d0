package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

func TestDistanceScoreBands(t *testing.T) {
	calc := locationCalculator{}

	tests := []struct {
		name string
		pref model.DistancePreference
		km   float64
		want float64
	}{
		{"tight inside", model.DistanceTight, 4, 15},
		{"tight boundary", model.DistanceTight, 5, 15},
		{"tight half", model.DistanceTight, 12, 7.5},
		{"tight outside", model.DistanceTight, 16, 0},

		{"medium inside", model.DistanceMedium, 14, 15},
		{"medium second band", model.DistanceMedium, 25, 9},
		{"medium third band", model.DistanceMedium, 45, 4.5},
		{"medium outside", model.DistanceMedium, 51, 0},

		{"loose inside", model.DistanceLoose, 30, 15},
		{"loose second band", model.DistanceLoose, 55, 9},
		{"loose third band", model.DistanceLoose, 90, 4.5},
		{"loose outside", model.DistanceLoose, 120, 0},

		{"unspecified inside", "", 9, 15},
		{"unspecified second band", "", 20, 12},
		{"unspecified third band", "", 40, 7.5},
		{"unspecified fourth band", "", 80, 3},
		{"unspecified outside", "", 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &model.Facility{ID: "f", DistanceKM: km(tt.km)}
			q := &model.Questionnaire{DistancePreference: tt.pref}
			assert.InDelta(t, tt.want, calc.distanceScore(f, q), 0.0001)
		})
	}
}

func TestDistanceScoreDegradesGracefully(t *testing.T) {
	calc := locationCalculator{}
	q := &model.Questionnaire{DistancePreference: model.DistanceTight}

	t.Run("missing distance", func(t *testing.T) {
		f := &model.Facility{ID: "f"}
		assert.Zero(t, calc.distanceScore(f, q))
	})

	t.Run("sentinel distance", func(t *testing.T) {
		f := &model.Facility{ID: "f", DistanceKM: km(model.InvalidDistanceKM)}
		assert.Zero(t, calc.distanceScore(f, q))
	})

	t.Run("negative distance", func(t *testing.T) {
		f := &model.Facility{ID: "f", DistanceKM: km(-3)}
		assert.Zero(t, calc.distanceScore(f, q))
	})
}

func TestAccessScore(t *testing.T) {
	calc := locationCalculator{}
	empty := enrich.Tree{}

	t.Run("wheelchair weighs double when needed", func(t *testing.T) {
		f := &model.Facility{WheelchairAccessible: true}
		needs := &model.Questionnaire{Mobility: model.MobilityWheelchair}
		walks := &model.Questionnaire{Mobility: model.MobilityIndependent}

		assert.InDelta(t, 4, calc.accessScore(f, needs, empty), 0.0001)
		assert.InDelta(t, 2, calc.accessScore(f, walks, empty), 0.0001)
	})

	t.Run("places listing fills a missing directory flag", func(t *testing.T) {
		f := &model.Facility{}
		q := &model.Questionnaire{Mobility: model.MobilityBedbound}
		places := enrich.Tree{"wheelchair_accessible_entrance": true}

		assert.InDelta(t, 4, calc.accessScore(f, q, places), 0.0001)
	})

	t.Run("all features clamp to cap", func(t *testing.T) {
		f := &model.Facility{
			WheelchairAccessible: true,
			GroundFloorRooms:     true,
			LiftAccess:           true,
			Parking:              true,
		}
		q := &model.Questionnaire{Mobility: model.MobilityWheelchair}
		assert.InDelta(t, 10, calc.accessScore(f, q, empty), 0.0001)
	})

	t.Run("no features", func(t *testing.T) {
		assert.Zero(t, calc.accessScore(&model.Facility{}, &model.Questionnaire{}, empty))
	})
}

func TestLocationCalculate(t *testing.T) {
	calc := locationCalculator{}
	f := &model.Facility{
		ID:               "f",
		DistanceKM:       km(4),
		GroundFloorRooms: true,
		Parking:          true,
	}
	q := &model.Questionnaire{DistancePreference: model.DistanceTight}

	res := calc.Calculate(f, q, enrich.SourceSet{})
	// 15 distance + 4 access out of 25.
	assert.InDelta(t, 19.0/25.0, res.Value, 0.0001)
	assert.Contains(t, res.Reasoning, "distance")
}
