// Package match orchestrates the category calculators into ranked
// per-facility results.
package match

import (
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
	"github.com/carefinder/carefinder-cli/internal/scoring"
)

// Engine scores and ranks candidate facilities for one questionnaire.
// Stateless between requests; safe to share.
type Engine struct {
	preset scoring.Preset
	calcs  []scoring.Calculator
}

// NewEngine creates an engine for the given weight preset.
func NewEngine(preset scoring.Preset) *Engine {
	return &Engine{
		preset: preset,
		calcs:  scoring.Calculators(),
	}
}

// Match scores every facility against the questionnaire and enrichment
// bundle and returns results sorted descending by total score. The sort
// is stable: ties preserve input order. Weights are computed once per
// request and shared read-only across facilities.
func (e *Engine) Match(facilities []model.Facility, q *model.Questionnaire, bundle enrich.Bundle) ([]model.MatchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, eris.Wrap(err, "match: questionnaire")
	}

	weights, conditions, err := scoring.CalculateDynamicWeights(q, e.preset)
	if err != nil {
		return nil, eris.Wrap(err, "match: weights")
	}
	budget, _ := scoring.Budget(e.preset)

	results := make([]model.MatchResult, 0, len(facilities))
	for i := range facilities {
		f := &facilities[i]
		results = append(results, e.scoreOne(f, q, bundle.For(f.ID), weights, conditions, budget))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	zap.L().Info("match: scoring complete",
		zap.Int("facilities", len(results)),
		zap.Float64("budget", budget),
		zap.Strings("conditions", conditions),
	)

	return results, nil
}

// scoreOne builds a fully self-contained MatchResult. A facility with no
// usable data still yields an all-zero result rather than being dropped,
// so rank stability holds for the caller.
func (e *Engine) scoreOne(f *model.Facility, q *model.Questionnaire, src enrich.SourceSet, weights scoring.Weights, conditions []string, budget float64) model.MatchResult {
	categories := make([]model.CategoryScore, 0, len(e.calcs))
	var total float64

	for _, calc := range e.calcs {
		res := calc.Calculate(f, q, src)
		weight := weights[calc.Name()]
		points := res.Value * weight
		total += points

		categories = append(categories, model.CategoryScore{
			Category:  calc.Name(),
			Value:     res.Value,
			Points:    points,
			MaxPoints: weight,
			Reasoning: res.Reasoning,
		})
	}

	normalized := 0.0
	if budget > 0 {
		normalized = total / budget
	}

	// Each result carries its own copies of the shared inputs.
	w := make(map[string]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	conds := append([]string(nil), conditions...)

	return model.MatchResult{
		FacilityID:      f.ID,
		FacilityName:    f.Name,
		TotalScore:      total,
		NormalizedScore: normalized,
		Categories:      categories,
		Weights:         w,
		Conditions:      conds,
	}
}
