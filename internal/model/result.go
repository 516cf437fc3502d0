package model

// CategoryScore is the scored outcome for one category of one facility.
type CategoryScore struct {
	Category  string  `json:"category"`
	Value     float64 `json:"value"`      // normalized [0,1]
	Points    float64 `json:"points"`     // Value * weight
	MaxPoints float64 `json:"max_points"` // the weight used
	Reasoning string  `json:"reasoning,omitempty"`
}

// MatchResult holds the full scored breakdown for one facility in one
// request. Fully self-contained; discarded after response assembly.
type MatchResult struct {
	FacilityID      string             `json:"facility_id"`
	FacilityName    string             `json:"facility_name"`
	TotalScore      float64            `json:"total_score"`
	NormalizedScore float64            `json:"normalized_score"` // [0,1]
	Categories      []CategoryScore    `json:"categories"`
	Weights         map[string]float64 `json:"weights"`
	Conditions      []string           `json:"conditions,omitempty"`
}
