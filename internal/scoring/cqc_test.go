package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

func TestCQCOverallScorePrefersDetailedFeed(t *testing.T) {
	calc := cqcCalculator{}

	t.Run("detailed feed wins over directory record", func(t *testing.T) {
		f := &model.Facility{RegulatorRating: model.RatingInadequate}
		detailed := enrich.Tree{"overall_rating": "Outstanding"}
		assert.InDelta(t, 12, calc.overallScore(f, detailed), 0.0001)
	})

	t.Run("falls back to directory record", func(t *testing.T) {
		f := &model.Facility{RegulatorRating: model.RatingGood}
		assert.InDelta(t, 0.75*12, calc.overallScore(f, enrich.Tree{}), 0.0001)
	})

	t.Run("no rating anywhere", func(t *testing.T) {
		assert.Zero(t, calc.overallScore(&model.Facility{}, enrich.Tree{}))
	})

	t.Run("unparseable detailed rating falls through", func(t *testing.T) {
		f := &model.Facility{RegulatorRating: model.RatingRequiresImprovement}
		detailed := enrich.Tree{"overall_rating": "5 stars"}
		assert.InDelta(t, 0.4*12, calc.overallScore(f, detailed), 0.0001)
	})
}

func TestDomainScore(t *testing.T) {
	detailed := enrich.Tree{
		"domains": map[string]any{
			"safe":      "Good",
			"effective": "Inadequate",
			"well_led":  "Outstanding",
		},
	}

	assert.InDelta(t, 0.75*10, domainScore(detailed, "safe", 10), 0.0001)
	assert.Zero(t, domainScore(detailed, "effective", 3))
	assert.InDelta(t, 2, domainScore(detailed, "well_led", 2), 0.0001)
	assert.Zero(t, domainScore(detailed, "caring", 3))
	assert.Zero(t, domainScore(enrich.Tree{}, "safe", 10))
}

func TestCQCCalculate(t *testing.T) {
	calc := cqcCalculator{}
	f := &model.Facility{RegulatorRating: model.RatingGood}
	src := enrich.SourceSet{
		enrich.SourceCQCDetailed: enrich.Tree{
			"overall_rating": "Good",
			"domains": map[string]any{
				"effective":  "Good",
				"caring":     "Outstanding",
				"responsive": "Requires improvement",
				"well_led":   "Good",
			},
		},
	}

	res := calc.Calculate(f, &model.Questionnaire{}, src)
	// overall 9 + effective 2.25 + caring 3 + responsive 1.2 + well_led 1.5
	want := (9 + 2.25 + 3 + 1.2 + 1.5) / 23.0
	assert.InDelta(t, want, res.Value, 0.0001)
	assert.Contains(t, res.Reasoning, "overall")
}

func TestCQCCalculateNoEnrichment(t *testing.T) {
	calc := cqcCalculator{}
	res := calc.Calculate(&model.Facility{}, &model.Questionnaire{}, enrich.SourceSet{})
	assert.Zero(t, res.Value)
}
