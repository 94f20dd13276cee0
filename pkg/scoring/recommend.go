package scoring

import "ai-travelmate-be/pkg/store"

const (
	RecCheapest  = "cheapest"
	RecFastest   = "fastest"
	RecBestValue = "best_value"
	RecTimeMatch = "time_match"
)

// Recommendation is a structured callout over the scored set; the renderer
// turns it into display text.
type Recommendation struct {
	Kind  string      `json:"kind"`
	Route store.Route `json:"route,omitempty"`
	Count int         `json:"count,omitempty"` // time_match only
}

// Recommend derives the callouts for an already scored, sorted set:
// the cheapest route always, the fastest when it is a different route,
// best value for the top pick when it is neither of those, and a schedule
// note when the query carried a time preference and departures survived
// the lookup-side filtering.
func Recommend(scored []store.Route, entities store.Entities) []Recommendation {
	if len(scored) == 0 {
		return nil
	}

	cheapest := firstTagged(scored, TagCheapest)
	fastest := firstTagged(scored, TagFastest)

	var recs []Recommendation
	if cheapest != nil {
		recs = append(recs, Recommendation{Kind: RecCheapest, Route: *cheapest})
	}
	if fastest != nil && (cheapest == nil || fastest.ID != cheapest.ID) {
		recs = append(recs, Recommendation{Kind: RecFastest, Route: *fastest})
	}

	top := scored[0]
	if (cheapest == nil || top.ID != cheapest.ID) && (fastest == nil || top.ID != fastest.ID) {
		recs = append(recs, Recommendation{Kind: RecBestValue, Route: top})
	}

	if entities.TimePreference != nil {
		withSchedules := 0
		for _, r := range scored {
			if len(r.Departures) > 0 {
				withSchedules++
			}
		}
		if withSchedules > 0 {
			recs = append(recs, Recommendation{Kind: RecTimeMatch, Count: withSchedules})
		}
	}
	return recs
}

func firstTagged(scored []store.Route, tag string) *store.Route {
	for i := range scored {
		if HasTag(scored[i], tag) {
			return &scored[i]
		}
	}
	return nil
}
