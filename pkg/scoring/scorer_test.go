package scoring

import (
	"math"
	"testing"

	"ai-travelmate-be/pkg/store"
)

func deps(n int) []store.Departure {
	out := make([]store.Departure, n)
	for i := range out {
		out[i] = store.Departure{Time: "06:00", Arrival: "09:00"}
	}
	return out
}

func TestScoreBounds(t *testing.T) {
	routes := []store.Route{
		{ID: "a", Price: 350, Duration: 195, Operator: "MSRTC", Departures: deps(6)},
		{ID: "b", Price: 450, Duration: 210, Operator: "Unknown Ops", Departures: deps(1)},
		{ID: "c", Price: 1200, Duration: 150, Operator: "Indian Railways", Departures: deps(3)},
	}

	for _, pref := range []string{"", store.BudgetLow, store.BudgetPremium} {
		scored := Score(routes, store.Entities{BudgetPreference: pref})
		if len(scored) != len(routes) {
			t.Fatalf("scored %d routes, want %d", len(scored), len(routes))
		}
		for _, r := range scored {
			if r.Score < 0 || r.Score > 1 {
				t.Errorf("profile %q: score %v of %s outside [0,1]", pref, r.Score, r.ID)
			}
		}
	}
}

func TestScoreTags(t *testing.T) {
	routes := []store.Route{
		{ID: "slow-cheap", Price: 300, Duration: 240, Departures: deps(2)},
		{ID: "fast-dear", Price: 900, Duration: 150, Departures: deps(5)},
		{ID: "middle", Price: 500, Duration: 200, Departures: deps(4)},
	}

	scored := Score(routes, store.Entities{})
	byID := make(map[string]store.Route, len(scored))
	for _, r := range scored {
		byID[r.ID] = r
	}

	if !HasTag(byID["slow-cheap"], TagCheapest) {
		t.Error("cheapest route not tagged cheapest")
	}
	if !HasTag(byID["fast-dear"], TagFastest) {
		t.Error("fastest route not tagged fastest")
	}
	if HasTag(byID["middle"], TagCheapest) || HasTag(byID["middle"], TagFastest) {
		t.Error("middle route wrongly tagged")
	}
	if !HasTag(byID["fast-dear"], TagFrequent) || !HasTag(byID["middle"], TagFrequent) {
		t.Error("routes with >=4 departures not tagged frequent")
	}
	if HasTag(byID["slow-cheap"], TagFrequent) {
		t.Error("2-departure route tagged frequent")
	}
}

func TestScoreDegeneratePrices(t *testing.T) {
	// All prices equal: every route gets the full price factor and the
	// cheapest tag.
	routes := []store.Route{
		{ID: "a", Price: 400, Duration: 180, Departures: deps(1)},
		{ID: "b", Price: 400, Duration: 240, Departures: deps(1)},
	}

	scored := Score(routes, store.Entities{BudgetPreference: store.BudgetLow})
	for _, r := range scored {
		if !HasTag(r, TagCheapest) {
			t.Errorf("route %s missing cheapest tag in degenerate set", r.ID)
		}
	}

	// Budget profile: 0.5 price + 0.15 schedule + 0.1 operator are identical
	// across the set, so the duration factor alone separates them.
	want := map[string]float64{
		"a": 0.5 + 0.25*1 + 0.15*0.2 + 0.1*defaultReputation,
		"b": 0.5 + 0.25*0 + 0.15*0.2 + 0.1*defaultReputation,
	}
	for _, r := range scored {
		if math.Abs(r.Score-want[r.ID]) > 1e-9 {
			t.Errorf("route %s score = %v, want %v", r.ID, r.Score, want[r.ID])
		}
	}
}

func TestScoreCheaperFasterWins(t *testing.T) {
	routes := []store.Route{
		{ID: "worse", Price: 450, Duration: 210, Departures: deps(1)},
		{ID: "better", Price: 350, Duration: 195, Departures: deps(1)},
	}

	scored := Score(routes, store.Entities{})
	if scored[0].ID != "better" {
		t.Fatalf("top route = %s, want better", scored[0].ID)
	}
	if !(scored[0].Score > scored[1].Score) {
		t.Errorf("cheaper+faster route does not score strictly higher: %v vs %v",
			scored[0].Score, scored[1].Score)
	}
}

func TestScoreStableOnTies(t *testing.T) {
	// Identical routes tie exactly; stable sort keeps input order.
	routes := []store.Route{
		{ID: "first", Price: 400, Duration: 180, Departures: deps(2)},
		{ID: "second", Price: 400, Duration: 180, Departures: deps(2)},
		{ID: "third", Price: 400, Duration: 180, Departures: deps(2)},
	}

	scored := Score(routes, store.Entities{})
	for i, want := range []string{"first", "second", "third"} {
		if scored[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, scored[i].ID, want)
		}
	}
}

func TestScoreEmptySet(t *testing.T) {
	if got := Score(nil, store.Entities{}); len(got) != 0 {
		t.Errorf("Score(nil) = %v, want empty", got)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	routes := []store.Route{
		{ID: "a", Price: 300, Duration: 100, Departures: deps(1)},
		{ID: "b", Price: 600, Duration: 200, Departures: deps(1)},
	}
	Score(routes, store.Entities{})

	if routes[0].Score != 0 || routes[0].Tags != nil {
		t.Errorf("input slice was annotated in place: %+v", routes[0])
	}
	if routes[0].ID != "a" || routes[1].ID != "b" {
		t.Error("input slice was reordered")
	}
}
