package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

func TestStaffRetentionScore(t *testing.T) {
	calc := staffCalculator{}

	tests := []struct {
		name  string
		staff enrich.Tree
		want  float64
	}{
		{"low turnover", enrich.Tree{"turnover_rate_percent": 8.0}, 7},
		{"band boundary", enrich.Tree{"turnover_rate_percent": 10.0}, 7},
		{"moderate turnover", enrich.Tree{"turnover_rate_percent": 18.0}, 5},
		{"high turnover", enrich.Tree{"turnover_rate_percent": 28.0}, 3.5},
		{"very high turnover", enrich.Tree{"turnover_rate_percent": 45.0}, 1.5},
		{"churn", enrich.Tree{"turnover_rate_percent": 70.0}, 0},
		{"unknown turnover", enrich.Tree{}, 0},
		{"tenure bonus", enrich.Tree{"turnover_rate_percent": 18.0, "avg_tenure_years": 3.0}, 6},
		{"tenure bonus clamps at cap", enrich.Tree{"turnover_rate_percent": 8.0, "avg_tenure_years": 5.0}, 7},
		{"short tenure no bonus", enrich.Tree{"turnover_rate_percent": 18.0, "avg_tenure_years": 1.5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.retentionScore(tt.staff), 0.0001)
		})
	}
}

func TestStaffSatisfactionScore(t *testing.T) {
	calc := staffCalculator{}

	assert.InDelta(t, 6, calc.satisfactionScore(enrich.Tree{"satisfaction_rating": 5.0}), 0.0001)
	assert.InDelta(t, 4.2, calc.satisfactionScore(enrich.Tree{"satisfaction_rating": 3.5}), 0.0001)
	assert.Zero(t, calc.satisfactionScore(enrich.Tree{}))
	// Out-of-range ratings clamp rather than overflow.
	assert.InDelta(t, 6, calc.satisfactionScore(enrich.Tree{"satisfaction_rating": 7.0}), 0.0001)
}

func TestStaffQualificationScore(t *testing.T) {
	calc := staffCalculator{}

	t.Run("certifications increment and cap", func(t *testing.T) {
		two := enrich.Tree{"certifications": []any{"NVQ2", "NVQ3"}}
		assert.InDelta(t, 1.5, calc.qualificationScore(two), 0.0001)

		many := enrich.Tree{"certifications": []any{"a", "b", "c", "d", "e", "f", "g"}}
		assert.InDelta(t, 3, calc.qualificationScore(many), 0.0001)
	})

	t.Run("management rating rescaled", func(t *testing.T) {
		staff := enrich.Tree{"management_rating": 4.0}
		assert.InDelta(t, 1.6, calc.qualificationScore(staff), 0.0001)
	})

	t.Run("both combined", func(t *testing.T) {
		staff := enrich.Tree{
			"certifications":    []any{"NVQ2", "NVQ3", "NVQ4", "First Aid"},
			"management_rating": 5.0,
		}
		assert.InDelta(t, 5, calc.qualificationScore(staff), 0.0001)
	})

	t.Run("no data", func(t *testing.T) {
		assert.Zero(t, calc.qualificationScore(enrich.Tree{}))
	})
}

func TestStaffCalculate(t *testing.T) {
	calc := staffCalculator{}
	src := enrich.SourceSet{
		enrich.SourceStaffData: enrich.Tree{
			"satisfaction_rating":   4.0,
			"turnover_rate_percent": 15.0,
			"certifications":        []any{"NVQ2", "NVQ3"},
		},
	}

	res := calc.Calculate(&model.Facility{}, &model.Questionnaire{}, src)
	// satisfaction 4.8 + retention 5 + qualifications 1.5 out of 18.
	assert.InDelta(t, (4.8+5+1.5)/18.0, res.Value, 0.0001)
	assert.Contains(t, res.Reasoning, "retention")
}
