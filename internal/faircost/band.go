package faircost

import (
	"math"

	"github.com/carefinder/carefinder-cli/internal/model"
)

// Band breakpoints on the price-position ratio, ascending and
// non-overlapping. A is best value, E most expensive.
const (
	bandABelow = 0.15
	bandBBelow = 0.25
	bandCBelow = 0.35
	bandDBelow = 0.45
)

// Confidence scoring constants. Confidence always lands in [60,100]; a
// missing benchmark keeps it below 80.
const (
	confidenceBase           = 70.0
	confidenceBenchmarkBonus = 10.0
	confidenceNoBenchmark    = -5.0
	confidenceNoBenchmarkCap = 78.0
	confidenceRatingBonus    = 5.0
	confidenceChainBonus     = 5.0
	confidenceQualityBonus   = 5.0
	confidenceQualityMin     = 0.8
	confidenceFloor          = 60.0
	confidenceCeiling        = 100.0
)

// Expected-range spread: base width plus growth with the ratio, so more
// expensive bands carry wider, less certain ranges.
const (
	rangeBaseSpread  = 0.05
	rangeRatioSpread = 0.15
)

// CalculateBandScore linearly interpolates the price between the lower
// bound (0.0) and the upper reference (1.0), clamped to [0,1]. A
// degenerate range scores 0 below the bound and 1 at or above it.
func CalculateBandScore(price, lowerBound, upperReference float64) float64 {
	if upperReference <= lowerBound {
		if price < lowerBound {
			return 0
		}
		return 1
	}
	ratio := (price - lowerBound) / (upperReference - lowerBound)
	return math.Max(0, math.Min(1, ratio))
}

// CalculateBand maps a ratio to its affordability band letter with a
// short reasoning string.
func CalculateBand(ratio float64) (string, string) {
	switch {
	case ratio < bandABelow:
		return "A", "priced at or near the fair cost lower bound — excellent value"
	case ratio < bandBBelow:
		return "B", "priced modestly above the lower bound — good value"
	case ratio < bandCBelow:
		return "C", "mid-range pricing for this market"
	case ratio < bandDBelow:
		return "D", "priced toward the upper end of the local market"
	default:
		return "E", "among the most expensive options in this market"
	}
}

// ConfidenceInput carries the signals that raise or lower banding
// confidence.
type ConfidenceInput struct {
	HasBenchmark    bool
	RegulatorRating model.RegulatorRating
	Chain           bool
	FacilitiesScore float64 // normalized [0,1] quality score, 0 when unknown
}

// CalculateConfidence returns a confidence value in [60,100].
func CalculateConfidence(in ConfidenceInput) float64 {
	conf := confidenceBase

	if in.HasBenchmark {
		conf += confidenceBenchmarkBonus
	} else {
		conf += confidenceNoBenchmark
	}
	if in.RegulatorRating == model.RatingOutstanding {
		conf += confidenceRatingBonus
	}
	if in.Chain {
		conf += confidenceChainBonus
	}
	if in.FacilitiesScore >= confidenceQualityMin {
		conf += confidenceQualityBonus
	}

	if !in.HasBenchmark && conf > confidenceNoBenchmarkCap {
		conf = confidenceNoBenchmarkCap
	}

	return math.Max(confidenceFloor, math.Min(confidenceCeiling, conf))
}

// CalculateExpectedRange returns a (min,max) price band around the
// center price. Width grows monotonically with the ratio: pricing is
// less predictable at the expensive end. Bounds are rounded to 2dp.
func CalculateExpectedRange(centerPrice, ratio float64) (float64, float64) {
	r := math.Max(0, math.Min(1, ratio))
	spread := rangeBaseSpread + r*rangeRatioSpread
	return round2(centerPrice * (1 - spread)), round2(centerPrice * (1 + spread))
}

// BandResult bundles the full banding annotation for one facility price.
type BandResult struct {
	Band        string  `json:"band"`
	Ratio       float64 `json:"ratio"`
	Reasoning   string  `json:"reasoning"`
	Confidence  float64 `json:"confidence"`
	ExpectedMin float64 `json:"expected_min"`
	ExpectedMax float64 `json:"expected_max"`
}

// CalculateBandResult runs the full banding pipeline for one price.
func CalculateBandResult(price, lowerBound, upperReference float64, in ConfidenceInput) BandResult {
	ratio := CalculateBandScore(price, lowerBound, upperReference)
	band, reasoning := CalculateBand(ratio)
	minP, maxP := CalculateExpectedRange(price, ratio)

	return BandResult{
		Band:        band,
		Ratio:       round2(ratio),
		Reasoning:   reasoning,
		Confidence:  CalculateConfidence(in),
		ExpectedMin: minP,
		ExpectedMax: maxP,
	}
}
