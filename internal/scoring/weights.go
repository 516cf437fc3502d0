package scoring

import (
	"github.com/rotisserie/eris"

	"github.com/carefinder/carefinder-cli/internal/model"
)

// Preset selects a total point budget for a scoring run.
type Preset string

const (
	PresetFull    Preset = "full"    // 156-point scale, the default
	PresetPercent Preset = "percent" // 100-point scale
	PresetCompact Preset = "compact" // 50-point scale
)

// Declared budgets per preset. The sum of a preset's base weights always
// equals its budget.
const (
	BudgetFull    = 156.0
	BudgetPercent = 100.0
	BudgetCompact = 50.0
)

// Weights maps category name to its point allocation. Produced fresh per
// request, never shared.
type Weights map[string]float64

// Sum returns the total point allocation.
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// baseWeightsFull is the base allocation for the 156-point preset.
var baseWeightsFull = Weights{
	CategoryMedical:   25,
	CategorySafety:    20,
	CategoryLocation:  25,
	CategoryFinancial: 15,
	CategoryStaff:     18,
	CategoryCQC:       23,
	CategorySocial:    15,
	CategoryServices:  15,
}

// baseWeightsPercent is the base allocation for the 100-point preset.
var baseWeightsPercent = Weights{
	CategoryMedical:   16,
	CategorySafety:    13,
	CategoryLocation:  16,
	CategoryFinancial: 10,
	CategoryStaff:     11,
	CategoryCQC:       15,
	CategorySocial:    10,
	CategoryServices:  9,
}

// baseWeightsCompact is the base allocation for the 50-point preset.
var baseWeightsCompact = Weights{
	CategoryMedical:   8,
	CategorySafety:    6,
	CategoryLocation:  8,
	CategoryFinancial: 5,
	CategoryStaff:     6,
	CategoryCQC:       8,
	CategorySocial:    5,
	CategoryServices:  4,
}

// Budget returns the declared point budget for a preset.
func Budget(p Preset) (float64, error) {
	switch p {
	case PresetFull, "":
		return BudgetFull, nil
	case PresetPercent:
		return BudgetPercent, nil
	case PresetCompact:
		return BudgetCompact, nil
	default:
		return 0, eris.Errorf("scoring: unknown preset %q", p)
	}
}

// BaseWeights returns a fresh copy of the base weight table for a preset.
func BaseWeights(p Preset) (Weights, error) {
	switch p {
	case PresetFull, "":
		return baseWeightsFull.Clone(), nil
	case PresetPercent:
		return baseWeightsPercent.Clone(), nil
	case PresetCompact:
		return baseWeightsCompact.Clone(), nil
	default:
		return nil, eris.Errorf("scoring: unknown preset %q", p)
	}
}

// Rule is one pure weight adjustment: it returns the adjusted weights and
// a condition label, or "" when it did not fire. Rules are folded
// left-to-right in the order returned by rules(); later rules compound on
// earlier adjustments.
type Rule func(w Weights, q *model.Questionnaire, scale float64) (Weights, string)

// rules returns the ordered rule set. Shift amounts are declared against
// the 156-point scale and multiplied by scale for smaller presets.
func rules() []Rule {
	return []Rule{
		dementiaRule,
		mobilityRule,
		nursingRule,
		budgetRule,
		distanceRule,
		priorityListRule,
		priorityWeightsRule,
	}
}

// tightBudgetThreshold is the weekly budget below which affordability
// dominates the weighting.
const tightBudgetThreshold = 900.0

// CalculateDynamicWeights produces the per-request weight map and the
// list of triggered conditions. The returned weights always re-sum to the
// preset's declared budget; any remainder from rule arithmetic is
// assigned to the CQC category.
func CalculateDynamicWeights(q *model.Questionnaire, preset Preset) (Weights, []string, error) {
	w, err := BaseWeights(preset)
	if err != nil {
		return nil, nil, err
	}
	budget, _ := Budget(preset)
	scale := budget / BudgetFull

	var conditions []string
	for _, rule := range rules() {
		next, label := rule(w, q, scale)
		w = next
		if label != "" {
			conditions = append(conditions, label)
		}
	}

	rebalance(w, budget)
	return w, conditions, nil
}

// rebalance floors negative allocations at zero and assigns the budget
// remainder to CQC, guaranteeing conservation of the total.
func rebalance(w Weights, budget float64) {
	for k, v := range w {
		if v < 0 {
			w[k] = 0
		}
	}
	w[CategoryCQC] += budget - w.Sum()
	if w[CategoryCQC] < 0 {
		w[CategoryCQC] = 0
	}
}

// moveWeight moves up to amount points between categories, bounded by
// what the source has. Conservation holds by construction.
func moveWeight(w Weights, from, to string, amount float64) {
	if amount > w[from] {
		amount = w[from]
	}
	if amount <= 0 {
		return
	}
	w[from] -= amount
	w[to] += amount
}

func dementiaRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	if !q.HasCondition("dementia") {
		return w, ""
	}
	out := w.Clone()
	moveWeight(out, CategorySocial, CategoryMedical, 4*scale)
	moveWeight(out, CategoryServices, CategoryMedical, 4*scale)
	moveWeight(out, CategorySocial, CategorySafety, 2*scale)
	moveWeight(out, CategoryServices, CategorySafety, 2*scale)
	return out, "dementia diagnosis: medical care and safety prioritised"
}

func mobilityRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	if !q.Mobility.NeedsStepFreeAccess() {
		return w, ""
	}
	out := w.Clone()
	moveWeight(out, CategoryFinancial, CategoryLocation, 2*scale)
	moveWeight(out, CategoryServices, CategoryLocation, 4*scale)
	return out, "reduced mobility: accessibility and proximity prioritised"
}

func nursingRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	if q.CareLevel != "nursing" {
		return w, ""
	}
	out := w.Clone()
	moveWeight(out, CategorySocial, CategoryMedical, 4*scale)
	moveWeight(out, CategoryServices, CategoryStaff, 4*scale)
	return out, "nursing care required: clinical and staffing weight increased"
}

func budgetRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	if q.WeeklyBudget <= 0 || q.WeeklyBudget >= tightBudgetThreshold {
		return w, ""
	}
	out := w.Clone()
	moveWeight(out, CategoryServices, CategoryFinancial, 3*scale)
	moveWeight(out, CategorySocial, CategoryFinancial, 3*scale)
	return out, "limited budget: affordability weighting increased"
}

func distanceRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	if q.DistancePreference != model.DistanceTight {
		return w, ""
	}
	out := w.Clone()
	moveWeight(out, CategoryStaff, CategoryLocation, 2*scale)
	moveWeight(out, CategorySocial, CategoryLocation, 3*scale)
	return out, "close proximity preferred: location weighting increased"
}

// priorityListRule boosts each category the user explicitly flagged,
// funding the boost from the CQC catch-all.
func priorityListRule(w Weights, q *model.Questionnaire, scale float64) (Weights, string) {
	known := map[string]bool{
		CategoryMedical: true, CategorySafety: true, CategoryLocation: true,
		CategoryFinancial: true, CategoryStaff: true, CategoryCQC: true,
		CategorySocial: true, CategoryServices: true,
	}

	out := w.Clone()
	fired := false
	boosted := 0
	for _, p := range q.Priorities {
		if boosted >= 3 {
			break
		}
		if !known[p] || p == CategoryCQC {
			continue
		}
		moveWeight(out, CategoryCQC, p, 3*scale)
		fired = true
		boosted++
	}
	if !fired {
		return w, ""
	}
	return out, "user priorities boosted"
}

// priorityWeightsRule blends the weights toward the user's explicit
// percentage hints. Hints sum to 100 (validated upstream), so the blend
// conserves the budget exactly.
func priorityWeightsRule(w Weights, q *model.Questionnaire, _ float64) (Weights, string) {
	if len(q.PriorityWeights) == 0 {
		return w, ""
	}
	budget := w.Sum()
	out := make(Weights, len(w))
	for k, v := range w {
		hint := q.PriorityWeights[k] // 0 when not hinted
		out[k] = 0.7*v + 0.3*budget*hint/100
	}
	return out, "custom priority weighting applied"
}
