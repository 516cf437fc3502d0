package scoring

import (
	"fmt"
	"strings"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Services point caps and increments.
const (
	servicesMaxPoints   = 15.0
	amenitiesCap        = 8.0
	amenityItemPoints   = 0.5
	premiumAmenityBonus = 1.0
	extraServicesCap    = 7.0
	serviceItemPoints   = 0.5
	premiumServiceBonus = 1.0
)

// premiumAmenities are keywords that mark an amenity as above the usual
// baseline. Matched case-insensitively as substrings.
var premiumAmenities = []string{
	"cinema", "spa", "hair salon", "landscaped garden", "library", "gym", "cafe",
}

// premiumServices parallels premiumAmenities for additional services.
var premiumServices = []string{
	"physiotherapy", "chiropody", "dentist", "optician", "counselling", "hydrotherapy",
}

type servicesCalculator struct{}

func (servicesCalculator) Name() string       { return CategoryServices }
func (servicesCalculator) MaxPoints() float64 { return servicesMaxPoints }

func (c servicesCalculator) Calculate(f *model.Facility, _ *model.Questionnaire, _ enrich.SourceSet) Result {
	amenities := keywordListScore(f.Amenities, premiumAmenities, amenityItemPoints, premiumAmenityBonus, amenitiesCap)
	services := keywordListScore(f.AdditionalServices, premiumServices, serviceItemPoints, premiumServiceBonus, extraServicesCap)

	total := amenities + services
	reason := fmt.Sprintf("amenities %.1f/%.0f, services %.1f/%.0f",
		amenities, amenitiesCap, services, extraServicesCap)

	return Result{Value: normalize(total, servicesMaxPoints), Reasoning: reason}
}

// keywordListScore awards a partial point per list item plus a flat bonus
// for every recognized premium keyword found by substring match, clamped
// to the sub-score cap.
func keywordListScore(items, premium []string, perItem, bonus, capPts float64) float64 {
	pts := float64(len(items)) * perItem

	for _, kw := range premium {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), kw) {
				pts += bonus
				break
			}
		}
	}

	return clamp(pts, 0, capPts)
}
