package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

func TestActivitiesScore(t *testing.T) {
	calc := socialCalculator{}
	empty := enrich.Tree{}

	t.Run("responsive domain rating wins", func(t *testing.T) {
		tests := []struct {
			rating string
			want   float64
		}{
			{"Outstanding", 10},
			{"Good", 7.5},
			{"Requires improvement", 4},
			{"Inadequate", 0},
		}
		for _, tt := range tests {
			detailed := enrich.Tree{"domains": map[string]any{"responsive": tt.rating}}
			assert.InDelta(t, tt.want, calc.activitiesScore(detailed, empty), 0.0001, tt.rating)
		}
	})

	t.Run("falls back to counting distinct mentions", func(t *testing.T) {
		detailed := enrich.Tree{"activity_programs": []any{"Gardening", "Music", "gardening "}}
		places := enrich.Tree{"activity_mentions": []any{"Bingo", "MUSIC"}}
		// gardening, music, bingo deduplicated case-insensitively.
		assert.InDelta(t, 3, calc.activitiesScore(detailed, places), 0.0001)
	})

	t.Run("mention count caps", func(t *testing.T) {
		many := make([]any, 14)
		for i := range many {
			many[i] = string(rune('a' + i))
		}
		detailed := enrich.Tree{"activity_programs": many}
		assert.InDelta(t, 10, calc.activitiesScore(detailed, empty), 0.0001)
	})

	t.Run("no data", func(t *testing.T) {
		assert.Zero(t, calc.activitiesScore(empty, empty))
	})
}

func TestCommunityScore(t *testing.T) {
	calc := socialCalculator{}
	empty := enrich.Tree{}

	t.Run("one point per signal", func(t *testing.T) {
		detailed := enrich.Tree{"visitor_support": true, "community_events": true}
		assert.InDelta(t, 2, calc.communityScore(detailed, empty), 0.0001)
	})

	t.Run("signals split across sources", func(t *testing.T) {
		detailed := enrich.Tree{"visitor_support": true}
		places := enrich.Tree{"volunteer_programs": "weekly reading volunteers"}
		assert.InDelta(t, 2, calc.communityScore(detailed, places), 0.0001)
	})

	t.Run("explicit false scores nothing", func(t *testing.T) {
		detailed := enrich.Tree{"visitor_support": false, "community_events": false}
		assert.Zero(t, calc.communityScore(detailed, empty))
	})

	t.Run("all four signals", func(t *testing.T) {
		detailed := enrich.Tree{
			"visitor_support":    true,
			"community_events":   true,
			"volunteer_programs": true,
			"local_partnerships": true,
		}
		assert.InDelta(t, 4, calc.communityScore(detailed, empty), 0.0001)
	})
}

func TestBoolSignal(t *testing.T) {
	empty := enrich.Tree{}

	assert.True(t, boolSignal(enrich.Tree{"k": true}, empty, "k"))
	assert.False(t, boolSignal(enrich.Tree{"k": false}, empty, "k"))
	assert.True(t, boolSignal(empty, enrich.Tree{"k": "monthly fete"}, "k"))
	assert.False(t, boolSignal(empty, enrich.Tree{"k": "  "}, "k"))
	assert.False(t, boolSignal(empty, empty, "k"))
}

func TestSocialCalculate(t *testing.T) {
	calc := socialCalculator{}
	src := enrich.SourceSet{
		enrich.SourceCQCDetailed: enrich.Tree{
			"domains":         map[string]any{"responsive": "Good"},
			"visitor_support": true,
		},
	}

	res := calc.Calculate(&model.Facility{}, &model.Questionnaire{}, src)
	// activities 7.5 + community 1 out of 15.
	assert.InDelta(t, 8.5/15.0, res.Value, 0.0001)
	assert.Contains(t, res.Reasoning, "activities")
}
