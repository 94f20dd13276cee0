package scoring

import (
	"testing"

	"ai-travelmate-be/pkg/store"
)

func kinds(recs []Recommendation) map[string]Recommendation {
	out := make(map[string]Recommendation, len(recs))
	for _, r := range recs {
		out[r.Kind] = r
	}
	return out
}

func TestRecommendDistinctCheapestAndFastest(t *testing.T) {
	routes := []store.Route{
		{ID: "cheap", Price: 300, Duration: 240, Departures: deps(1)},
		{ID: "fast", Price: 900, Duration: 150, Departures: deps(1)},
	}
	scored := Score(routes, store.Entities{})

	recs := kinds(Recommend(scored, store.Entities{}))
	if r, ok := recs[RecCheapest]; !ok || r.Route.ID != "cheap" {
		t.Errorf("cheapest callout = %+v, want route cheap", recs[RecCheapest])
	}
	if r, ok := recs[RecFastest]; !ok || r.Route.ID != "fast" {
		t.Errorf("fastest callout = %+v, want route fast", recs[RecFastest])
	}
}

func TestRecommendSameIdentityCollapses(t *testing.T) {
	routes := []store.Route{
		{ID: "star", Price: 300, Duration: 150, Departures: deps(2)},
		{ID: "other", Price: 700, Duration: 300, Departures: deps(2)},
	}
	scored := Score(routes, store.Entities{})

	recs := Recommend(scored, store.Entities{})
	var fastest int
	for _, r := range recs {
		if r.Kind == RecFastest {
			fastest++
		}
	}
	if fastest != 0 {
		t.Error("fastest callout present although cheapest and fastest are the same route")
	}
}

func TestRecommendBestValue(t *testing.T) {
	// Premium profile: reputation and schedule push a mid-priced route to
	// the top while cheapest and fastest stay elsewhere.
	routes := []store.Route{
		{ID: "cheap", Price: 300, Duration: 300, Departures: deps(1)},
		{ID: "fast", Price: 800, Duration: 180, Departures: deps(1)},
		{ID: "value", Price: 500, Duration: 200, Operator: "MSRTC Shivneri", Departures: deps(5)},
	}
	entities := store.Entities{BudgetPreference: store.BudgetPremium}
	scored := Score(routes, entities)
	if scored[0].ID != "value" {
		t.Fatalf("top route = %s, want value", scored[0].ID)
	}

	recs := kinds(Recommend(scored, entities))
	if r, ok := recs[RecBestValue]; !ok || r.Route.ID != "value" {
		t.Errorf("best value callout = %+v, want route value", recs[RecBestValue])
	}
}

func TestRecommendTimeMatch(t *testing.T) {
	routes := []store.Route{
		{ID: "a", Price: 300, Duration: 200, Departures: deps(3)},
		{ID: "b", Price: 400, Duration: 220, Departures: nil},
	}
	entities := store.Entities{
		TimePreference: &store.TimePreference{Kind: store.TimeKindWindow, Label: "morning", Start: 6, End: 12},
	}
	scored := Score(routes, entities)

	recs := kinds(Recommend(scored, entities))
	r, ok := recs[RecTimeMatch]
	if !ok {
		t.Fatal("time match note missing")
	}
	if r.Count != 1 {
		t.Errorf("time match count = %d, want 1", r.Count)
	}
}

func TestRecommendEmptySet(t *testing.T) {
	if recs := Recommend(nil, store.Entities{}); recs != nil {
		t.Errorf("Recommend(nil) = %v, want nil", recs)
	}
}
