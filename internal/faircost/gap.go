// Package faircost computes the gap between a facility's market price and
// the regulatory fair-cost benchmark, and the affordability banding
// derived from the price position.
package faircost

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tone selects the phrasing of the narrative text.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneEmpathetic   Tone = "empathetic"
	ToneUrgent       Tone = "urgent"
)

// Gap magnitude thresholds (weekly pounds). Monotonic: a larger gap never
// produces fewer or weaker recommendations.
const (
	gapMildThreshold     = 100.0
	gapModerateThreshold = 300.0
)

// Gap is the fair-cost gap record for one price pair. All currency
// fields are rounded to 2 decimal places at this boundary; internal
// arithmetic is full precision.
type Gap struct {
	GapWeek         float64  `json:"gap_week"`
	GapYear         float64  `json:"gap_year"`
	Gap5Year        float64  `json:"gap_5year"`
	GapPercent      float64  `json:"gap_percent"`
	Narrative       string   `json:"narrative"`
	Recommendations []string `json:"recommendations"`
}

// GapCalculator produces Gap records with a fixed narrative tone.
type GapCalculator struct {
	tone    Tone
	printer *message.Printer
}

// NewGapCalculator creates a calculator. An unknown tone falls back to
// professional.
func NewGapCalculator(tone Tone) *GapCalculator {
	switch tone {
	case ToneProfessional, ToneEmpathetic, ToneUrgent:
	default:
		tone = ToneProfessional
	}
	return &GapCalculator{
		tone:    tone,
		printer: message.NewPrinter(language.BritishEnglish),
	}
}

// Calculate computes the gap between the weekly market price and the
// fair-cost lower bound. A negative gap is a saving, not an error. The
// percent is zero when the bound is not positive — never a division by
// zero.
func (c *GapCalculator) Calculate(marketPrice, fairCostLower float64) Gap {
	gapWeek := marketPrice - fairCostLower
	gapYear := gapWeek * 52
	gap5Year := gapYear * 5

	gapPercent := 0.0
	if fairCostLower > 0 {
		gapPercent = gapWeek / fairCostLower * 100
	}

	return Gap{
		GapWeek:         round2(gapWeek),
		GapYear:         round2(gapYear),
		Gap5Year:        round2(gap5Year),
		GapPercent:      round2(gapPercent),
		Narrative:       c.narrative(gapWeek, gapYear, fairCostLower),
		Recommendations: c.recommendations(gapWeek, fairCostLower),
	}
}

// narrative phrases the gap for the configured tone.
func (c *GapCalculator) narrative(gapWeek, gapYear, fairCostLower float64) string {
	p := c.printer

	switch {
	case gapWeek < 0:
		saving := -gapWeek
		switch c.tone {
		case ToneEmpathetic:
			return p.Sprintf("Some good news: this home is priced £%.2f per week below the regulatory fair cost benchmark, a saving of £%.2f over a year.", saving, -gapYear)
		case ToneUrgent:
			return p.Sprintf("This home is £%.2f per week under the fair cost benchmark — £%.2f per year in your favour. Such pricing is uncommon and worth securing promptly.", saving, -gapYear)
		default:
			return p.Sprintf("The quoted fee is £%.2f per week below the fair cost of care benchmark, representing an annual saving of £%.2f.", saving, -gapYear)
		}
	case gapWeek == 0:
		switch c.tone {
		case ToneEmpathetic:
			return "This home is priced exactly at the fair cost benchmark, which is a fair and reasonable fee."
		case ToneUrgent:
			return "The fee matches the fair cost benchmark exactly. No overpayment identified."
		default:
			return "The quoted fee matches the regulatory fair cost of care benchmark."
		}
	default:
		switch c.tone {
		case ToneEmpathetic:
			return p.Sprintf("We understand fees can feel overwhelming. This home charges £%.2f per week above the fair cost benchmark of £%.2f, which adds up to £%.2f over a year — there may be room to discuss this.", gapWeek, fairCostLower, gapYear)
		case ToneUrgent:
			return p.Sprintf("Attention: the quoted fee exceeds the fair cost benchmark by £%.2f per week. Left unchallenged that is £%.2f per year. Raise this with the provider before signing.", gapWeek, gapYear)
		default:
			pct := 0.0
			if fairCostLower > 0 {
				pct = gapWeek / fairCostLower * 100
			}
			return p.Sprintf("The quoted fee is £%.2f per week (%.1f%%) above the fair cost of care lower bound of £%.2f, a difference of £%.2f per year.", gapWeek, pct, fairCostLower, gapYear)
		}
	}
}

// recommendations escalate with gap magnitude. Each larger band adds to
// the smaller band's list.
func (c *GapCalculator) recommendations(gapWeek, fairCostLower float64) []string {
	p := c.printer

	if gapWeek < 0 {
		return []string{
			p.Sprintf("The fee is £%.2f per week below the fair cost benchmark — a saving, not an overpayment.", -gapWeek),
			"No fee negotiation is needed; confirm what the quoted fee includes before committing.",
		}
	}
	if gapWeek == 0 {
		return []string{
			"The fee sits at the fair cost benchmark — a good price for this market.",
			"Confirm what the quoted fee includes before committing.",
		}
	}

	recs := []string{
		"Request a full written breakdown of the weekly fee.",
	}
	if gapWeek > gapMildThreshold {
		recs = append(recs,
			p.Sprintf("Reference the fair cost of care benchmark of £%.2f per week when negotiating.", fairCostLower),
			"Ask which services justify the premium over the benchmark.",
		)
	}
	if gapWeek > gapModerateThreshold {
		recs = append(recs,
			"Formally challenge the premium in writing and request a revised quote.",
			"Compare quotes from alternative facilities in the area before committing.",
			"Consider seeking independent financial advice on funding options.",
		)
	}
	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
