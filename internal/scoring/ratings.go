package scoring

import (
	"strings"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// ratingFactors is the canonical ordinal rating-to-factor table used by
// every calculator that consumes a CQC-style rating. The source data
// carries several slightly different tables; this one wins.
var ratingFactors = map[model.RegulatorRating]float64{
	model.RatingOutstanding:         1.0,
	model.RatingGood:                0.75,
	model.RatingRequiresImprovement: 0.4,
	model.RatingInadequate:          0.0,
}

// RatingFactor maps a rating to its scoring factor. Unknown or empty
// ratings report false so callers can distinguish "no information" from
// a genuine Inadequate.
func RatingFactor(r model.RegulatorRating) (float64, bool) {
	f, ok := ratingFactors[r]
	return f, ok
}

// ParseRating normalizes a free-text rating from an enrichment source.
// Scraped sources vary in casing and sometimes abbreviate.
func ParseRating(s string) (model.RegulatorRating, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outstanding":
		return model.RatingOutstanding, true
	case "good":
		return model.RatingGood, true
	case "requires improvement", "requires_improvement":
		return model.RatingRequiresImprovement, true
	case "inadequate":
		return model.RatingInadequate, true
	default:
		return "", false
	}
}

// sourceRatingFactor reads a rating string at path in tree and maps it
// through the canonical factor table.
func sourceRatingFactor(t enrich.Tree, path ...string) (float64, bool) {
	s, ok := t.String(path...)
	if !ok {
		return 0, false
	}
	r, ok := ParseRating(s)
	if !ok {
		return 0, false
	}
	return ratingFactors[r], true
}
