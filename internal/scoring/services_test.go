package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

func TestKeywordListScore(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  float64
	}{
		{"empty list", nil, 0},
		{"plain items", []string{"Lounge", "Garden"}, 1},
		{"premium keyword bonus", []string{"Cinema room"}, 1.5},
		{"premium matched case-insensitively", []string{"On-site SPA"}, 1.5},
		{"bonus once per keyword", []string{"Cinema room", "Private cinema"}, 2},
		{
			"clamps at cap",
			[]string{"Cinema", "Spa", "Hair salon", "Landscaped garden", "Library", "Gym", "Cafe", "Lounge", "Terrace", "Wifi"},
			8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordListScore(tt.items, premiumAmenities, amenityItemPoints, premiumAmenityBonus, amenitiesCap)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestServicesCalculate(t *testing.T) {
	calc := servicesCalculator{}

	t.Run("amenities and services combine", func(t *testing.T) {
		f := &model.Facility{
			Amenities:          []string{"Cinema room", "Lounge"},
			AdditionalServices: []string{"Physiotherapy", "Laundry"},
		}
		res := calc.Calculate(f, &model.Questionnaire{}, enrich.SourceSet{})
		// amenities 2 + services 2 out of 15.
		assert.InDelta(t, 4.0/15.0, res.Value, 0.0001)
		assert.Contains(t, res.Reasoning, "amenities")
	})

	t.Run("bare facility scores zero", func(t *testing.T) {
		res := calc.Calculate(&model.Facility{}, &model.Questionnaire{}, enrich.SourceSet{})
		assert.Zero(t, res.Value)
	})

	t.Run("fully equipped facility reaches max", func(t *testing.T) {
		f := &model.Facility{
			Amenities: []string{
				"Cinema", "Spa", "Hair salon", "Landscaped garden", "Library",
				"Gym", "Cafe", "Lounge", "Terrace", "Wifi", "Shop",
			},
			AdditionalServices: []string{
				"Physiotherapy", "Chiropody", "Dentist visits", "Optician visits",
				"Counselling", "Hydrotherapy", "Laundry", "Podiatry",
			},
		}
		res := calc.Calculate(f, &model.Questionnaire{}, enrich.SourceSet{})
		assert.InDelta(t, 1.0, res.Value, 0.0001)
	})
}
