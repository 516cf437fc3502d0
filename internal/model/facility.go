// Package model defines the immutable input and output records shared by
// the scoring engine.
package model

// RegulatorRating is a CQC overall or domain rating.
type RegulatorRating string

const (
	RatingOutstanding         RegulatorRating = "Outstanding"
	RatingGood                RegulatorRating = "Good"
	RatingRequiresImprovement RegulatorRating = "Requires improvement"
	RatingInadequate          RegulatorRating = "Inadequate"
)

// InvalidDistanceKM is the sentinel used by upstream geocoders when a
// distance could not be computed. Anything at or above it scores zero.
const InvalidDistanceKM = 9999

// Facility is a candidate care facility as supplied by the upstream
// directory feed. It is read-only to the scoring engine.
type Facility struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	CareTypes          []string `json:"care_types,omitempty" yaml:"care_types,omitempty"`
	Amenities          []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	AdditionalServices []string `json:"additional_services,omitempty" yaml:"additional_services,omitempty"`

	WheelchairAccessible bool `json:"wheelchair_accessible,omitempty" yaml:"wheelchair_accessible,omitempty"`
	GroundFloorRooms     bool `json:"ground_floor_rooms,omitempty" yaml:"ground_floor_rooms,omitempty"`
	LiftAccess           bool `json:"lift_access,omitempty" yaml:"lift_access,omitempty"`
	Parking              bool `json:"parking,omitempty" yaml:"parking,omitempty"`

	BedCount int  `json:"bed_count,omitempty" yaml:"bed_count,omitempty"`
	Chain    bool `json:"chain,omitempty" yaml:"chain,omitempty"`

	WeeklyPrice float64 `json:"weekly_price,omitempty" yaml:"weekly_price,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`

	RegulatorRating RegulatorRating `json:"regulator_rating,omitempty" yaml:"regulator_rating,omitempty"`

	// DistanceKM is precomputed by the upstream geocoder relative to the
	// user's postcode. Nil means unknown.
	DistanceKM *float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
}

// HasValidDistance reports whether the facility carries a usable distance.
func (f *Facility) HasValidDistance() bool {
	return f.DistanceKM != nil && *f.DistanceKM >= 0 && *f.DistanceKM < InvalidDistanceKM
}
