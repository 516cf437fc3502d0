package scoring

import (
	"fmt"
	"strings"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/model"
)

// Social point caps.
const (
	socialMaxPoints     = 15.0
	socialActivitiesCap = 10.0
	socialCommunityCap  = 5.0
)

// activityRatingPoints maps the regulator's "responsive" domain rating to
// activity points. Distinct from the generic factor table: a Good here is
// worth 75% of the cap, Requires improvement 40%.
var activityRatingPoints = map[model.RegulatorRating]float64{
	model.RatingOutstanding:         socialActivitiesCap,
	model.RatingGood:                socialActivitiesCap * 0.75,
	model.RatingRequiresImprovement: socialActivitiesCap * 0.4,
	model.RatingInadequate:          0,
}

type socialCalculator struct{}

func (socialCalculator) Name() string       { return CategorySocial }
func (socialCalculator) MaxPoints() float64 { return socialMaxPoints }

func (c socialCalculator) Calculate(_ *model.Facility, _ *model.Questionnaire, src enrich.SourceSet) Result {
	detailed := src.Source(enrich.SourceCQCDetailed)
	places := src.Source(enrich.SourceGooglePlaces)

	activities := c.activitiesScore(detailed, places)
	community := c.communityScore(detailed, places)

	total := activities + community
	reason := fmt.Sprintf("activities %.1f/%.0f, community %.1f/%.0f",
		activities, socialActivitiesCap, community, socialCommunityCap)

	return Result{Value: normalize(total, socialMaxPoints), Reasoning: reason}
}

// activitiesScore prefers the regulator's responsive domain rating; when
// that is absent it falls back to counting distinct activity-program
// mentions at one point each, capped.
func (socialCalculator) activitiesScore(detailed, places enrich.Tree) float64 {
	if s, ok := detailed.String("domains", "responsive"); ok {
		if r, ok := ParseRating(s); ok {
			return activityRatingPoints[r]
		}
	}

	mentions := make(map[string]struct{})
	if progs, ok := detailed.Strings("activity_programs"); ok {
		for _, p := range progs {
			mentions[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
		}
	}
	if progs, ok := places.Strings("activity_mentions"); ok {
		for _, p := range progs {
			mentions[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
		}
	}
	delete(mentions, "")

	return clamp(float64(len(mentions)), 0, socialActivitiesCap)
}

// communityScore awards one point for each independently-checked
// community signal, capped at the sub-budget.
func (socialCalculator) communityScore(detailed, places enrich.Tree) float64 {
	var pts float64

	if boolSignal(detailed, places, "visitor_support") {
		pts++
	}
	if boolSignal(detailed, places, "community_events") {
		pts++
	}
	if boolSignal(detailed, places, "volunteer_programs") {
		pts++
	}
	if boolSignal(detailed, places, "local_partnerships") {
		pts++
	}

	return clamp(pts, 0, socialCommunityCap)
}

// boolSignal checks either source for a boolean key, or a non-empty
// textual mention of the same key. Absence is no information, not false.
func boolSignal(detailed, places enrich.Tree, key string) bool {
	for _, t := range []enrich.Tree{detailed, places} {
		if b, ok := t.Bool(key); ok {
			return b
		}
		if s, ok := t.String(key); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
