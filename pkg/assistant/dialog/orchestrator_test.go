package dialog

import (
	"context"
	"errors"
	"testing"

	"ai-travelmate-be/pkg/assistant/extractor"
	"ai-travelmate-be/pkg/assistant/intent"
	"ai-travelmate-be/pkg/store"
)

type fakeLookup struct {
	routes []store.Route
	err    error
	calls  int
	lastQ  LookupQuery
}

func (f *fakeLookup) Lookup(_ context.Context, q LookupQuery) ([]store.Route, error) {
	f.calls++
	f.lastQ = q
	return f.routes, f.err
}

func sampleRoutes() []store.Route {
	return []store.Route{
		{ID: "r1", Name: "Shivneri Express", Origin: "Mumbai", Destination: "Pune",
			Mode: store.ModeBus, Operator: "MSRTC Shivneri", Price: 450, Duration: 195,
			Departures: []store.Departure{{Time: "06:30", Arrival: "09:45"}, {Time: "08:00", Arrival: "11:15"}}},
		{ID: "r2", Name: "Deccan Queen", Origin: "Mumbai", Destination: "Pune",
			Mode: store.ModeTrain, Operator: "Indian Railways", Price: 350, Duration: 210,
			Departures: []store.Departure{{Time: "07:15", Arrival: "10:45", Platform: "3"}}},
	}
}

func newTestOrchestrator(f *fakeLookup) *Orchestrator {
	return NewOrchestrator(extractor.New(), f)
}

func handle(t *testing.T, o *Orchestrator, sess *store.Session, text string) *Decision {
	t.Helper()
	d, err := o.HandleTurn(context.Background(), sess, text)
	if err != nil {
		t.Fatalf("HandleTurn(%q) error: %v", text, err)
	}
	return d
}

func TestGreetingResetsToIdle(t *testing.T) {
	o := newTestOrchestrator(&fakeLookup{})
	sess := store.NewSession("s1")
	sess.Phase = store.PhaseShowingResults

	d := handle(t, o, sess, "hello there")
	if d.Kind != KindGreeting {
		t.Errorf("Kind = %s, want %s", d.Kind, KindGreeting)
	}
	if sess.Phase != store.PhaseIdle {
		t.Errorf("Phase = %s, want %s", sess.Phase, store.PhaseIdle)
	}
	if sess.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", sess.TurnCount)
	}
	if len(sess.History) != 1 || sess.History[0].Role != store.RoleUser {
		t.Errorf("history = %+v, want one user turn", sess.History)
	}
}

func TestSlotFillingAcrossTurns(t *testing.T) {
	f := &fakeLookup{routes: sampleRoutes()}
	o := newTestOrchestrator(f)
	sess := store.NewSession("s1")

	d := handle(t, o, sess, "i want to go to pune")
	if d.Kind != KindMissingSlots {
		t.Fatalf("Kind = %s, want %s", d.Kind, KindMissingSlots)
	}
	if len(d.MissingSlots) != 1 || d.MissingSlots[0] != "origin" {
		t.Errorf("MissingSlots = %v, want [origin]", d.MissingSlots)
	}
	if sess.Phase != store.PhaseCollectingInfo {
		t.Errorf("Phase = %s, want %s", sess.Phase, store.PhaseCollectingInfo)
	}
	if f.calls != 0 {
		t.Errorf("lookup called %d times during slot filling", f.calls)
	}

	d = handle(t, o, sess, "from mumbai tomorrow morning")
	if d.Kind != KindRouteResults {
		t.Fatalf("Kind = %s, want %s", d.Kind, KindRouteResults)
	}
	if sess.Phase != store.PhaseShowingResults {
		t.Errorf("Phase = %s, want %s", sess.Phase, store.PhaseShowingResults)
	}
	if f.lastQ.Origin != "Mumbai" || f.lastQ.Destination != "Pune" {
		t.Errorf("lookup query = %+v, want Mumbai to Pune", f.lastQ)
	}
	if f.lastQ.Date == nil || f.lastQ.TimePreference == nil {
		t.Errorf("lookup query lost date/time: %+v", f.lastQ)
	}
	if len(sess.LastRoutes) != 2 {
		t.Fatalf("LastRoutes = %d routes, want 2", len(sess.LastRoutes))
	}
	if len(d.Recommendations) == 0 {
		t.Error("results decision carries no recommendations")
	}
	if sess.TurnCount != 2 {
		t.Errorf("TurnCount = %d, want 2", sess.TurnCount)
	}
}

func TestEmptyCandidateSetIsFirstClass(t *testing.T) {
	f := &fakeLookup{routes: nil}
	o := newTestOrchestrator(f)
	sess := store.NewSession("s1")

	d := handle(t, o, sess, "from mumbai to goa")
	if d.Kind != KindRouteResults {
		t.Fatalf("Kind = %s, want %s", d.Kind, KindRouteResults)
	}
	if len(d.Routes) != 0 || len(d.Recommendations) != 0 {
		t.Errorf("empty set produced routes=%d recs=%d", len(d.Routes), len(d.Recommendations))
	}
	if sess.Phase != store.PhaseShowingResults {
		t.Errorf("Phase = %s, want %s", sess.Phase, store.PhaseShowingResults)
	}
}

func TestLookupFailurePropagates(t *testing.T) {
	f := &fakeLookup{err: errors.New("catalog down")}
	o := newTestOrchestrator(f)
	sess := store.NewSession("s1")

	_, err := o.HandleTurn(context.Background(), sess, "from mumbai to pune")
	if err == nil {
		t.Fatal("HandleTurn did not propagate the lookup failure")
	}
	if sess.TurnCount != 0 || len(sess.History) != 0 {
		t.Errorf("turn partially recorded after failure: count=%d history=%d",
			sess.TurnCount, len(sess.History))
	}
}

func TestSelectRoute(t *testing.T) {
	tests := []struct {
		name       string
		seedRoutes int
		text       string
		wantKind   Kind
		wantIndex  int
		wantRange  int
	}{
		{name: "valid pick", seedRoutes: 2, text: "I'll take option 2", wantKind: KindSelectionDetail, wantIndex: 2},
		{name: "bare number", seedRoutes: 2, text: "1", wantKind: KindSelectionDetail, wantIndex: 1},
		{name: "out of range", seedRoutes: 2, text: "option 5", wantKind: KindSelectionPrompt, wantRange: 2},
		{name: "no integer", seedRoutes: 2, text: "pick that option", wantKind: KindSelectionPrompt, wantRange: 2},
		{name: "single route set rejects option 2", seedRoutes: 1, text: "option 2", wantKind: KindSelectionPrompt, wantRange: 1},
		{name: "nothing to select", seedRoutes: 0, text: "option 1", wantKind: KindSelectionPrompt, wantRange: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrchestrator(&fakeLookup{})
			sess := store.NewSession("s1")
			sess.LastRoutes = sampleRoutes()[:tt.seedRoutes]

			d := handle(t, o, sess, tt.text)
			if d.Kind != tt.wantKind {
				t.Fatalf("Kind = %s, want %s", d.Kind, tt.wantKind)
			}
			if tt.wantKind == KindSelectionDetail {
				if d.SelectedIndex != tt.wantIndex || d.Selected == nil {
					t.Errorf("selection = %d/%v, want index %d", d.SelectedIndex, d.Selected, tt.wantIndex)
				}
			} else if d.RangeMax != tt.wantRange {
				t.Errorf("RangeMax = %d, want %d", d.RangeMax, tt.wantRange)
			}
		})
	}
}

func TestCompareRoutes(t *testing.T) {
	t.Run("with shown results", func(t *testing.T) {
		o := newTestOrchestrator(&fakeLookup{})
		sess := store.NewSession("s1")
		sess.LastRoutes = sampleRoutes()

		d := handle(t, o, sess, "compare them please")
		if d.Kind != KindComparison {
			t.Fatalf("Kind = %s, want %s", d.Kind, KindComparison)
		}
		if len(d.Routes) != 2 {
			t.Errorf("comparison over %d routes, want 2", len(d.Routes))
		}
	})

	t.Run("single route still renders comparison kind", func(t *testing.T) {
		o := newTestOrchestrator(&fakeLookup{})
		sess := store.NewSession("s1")
		sess.LastRoutes = sampleRoutes()[:1]

		d := handle(t, o, sess, "compare the options for me")
		if d.Kind != KindComparison || len(d.Routes) != 1 {
			t.Errorf("got %s over %d routes, want comparison over 1", d.Kind, len(d.Routes))
		}
	})

	t.Run("known trip with no shown results searches again", func(t *testing.T) {
		f := &fakeLookup{routes: sampleRoutes()}
		o := newTestOrchestrator(f)
		sess := store.NewSession("s1")
		sess.Entities = store.Entities{Origin: "Mumbai", Destination: "Pune"}

		d := handle(t, o, sess, "compare the difference")
		if d.Kind != KindRouteResults {
			t.Fatalf("Kind = %s, want %s", d.Kind, KindRouteResults)
		}
		if f.calls != 1 {
			t.Errorf("lookup calls = %d, want 1", f.calls)
		}
	})

	t.Run("no results and no trip asks for slots", func(t *testing.T) {
		o := newTestOrchestrator(&fakeLookup{})
		sess := store.NewSession("s1")

		d := handle(t, o, sess, "compare routes")
		if d.Kind != KindMissingSlots {
			t.Errorf("Kind = %s, want %s", d.Kind, KindMissingSlots)
		}
	})
}

func TestPreferenceWithoutTripAcknowledges(t *testing.T) {
	o := newTestOrchestrator(&fakeLookup{})
	sess := store.NewSession("s1")

	d := handle(t, o, sess, "i prefer sleeper instead")
	if d.Kind != KindMissingSlots {
		t.Fatalf("Kind = %s, want %s", d.Kind, KindMissingSlots)
	}
	if d.Intent != intent.RoutePreference {
		t.Errorf("Intent = %s, want %s", d.Intent, intent.RoutePreference)
	}
	if d.Entities.SeatClass != "sleeper" {
		t.Errorf("SeatClass = %q, want sleeper", d.Entities.SeatClass)
	}
}

func TestPriceQueryRunsTravelHandler(t *testing.T) {
	t.Run("no trip yet prompts for slots", func(t *testing.T) {
		o := newTestOrchestrator(&fakeLookup{})
		sess := store.NewSession("s1")

		d := handle(t, o, sess, "how much does it cost?")
		if d.Kind != KindMissingSlots {
			t.Fatalf("Kind = %s, want %s", d.Kind, KindMissingSlots)
		}
		if d.Intent != intent.PriceQuery {
			t.Errorf("Intent = %s, want %s", d.Intent, intent.PriceQuery)
		}
	})

	t.Run("known trip searches", func(t *testing.T) {
		f := &fakeLookup{routes: sampleRoutes()}
		o := newTestOrchestrator(f)
		sess := store.NewSession("s1")
		sess.Entities = store.Entities{Origin: "Mumbai", Destination: "Pune"}

		d := handle(t, o, sess, "how much is the fare? i want something cheap")
		if d.Kind != KindRouteResults {
			t.Fatalf("Kind = %s, want %s", d.Kind, KindRouteResults)
		}
		if d.Intent != intent.PriceQuery {
			t.Errorf("Intent = %s, want %s", d.Intent, intent.PriceQuery)
		}
	})
}

func TestGibberishWithKnownTripSearches(t *testing.T) {
	f := &fakeLookup{routes: sampleRoutes()}
	o := newTestOrchestrator(f)
	sess := store.NewSession("s1")
	sess.Entities = store.Entities{Origin: "Mumbai", Destination: "Pune"}

	d := handle(t, o, sess, "qwerty asdf")
	if d.Kind != KindRouteResults {
		t.Errorf("Kind = %s, want %s", d.Kind, KindRouteResults)
	}
}

func TestUnknownWithoutContextFallsBack(t *testing.T) {
	o := newTestOrchestrator(&fakeLookup{})
	sess := store.NewSession("s1")

	d := handle(t, o, sess, "qwerty asdf")
	if d.Kind != KindUnknown {
		t.Errorf("Kind = %s, want %s", d.Kind, KindUnknown)
	}
	if sess.TurnCount != 1 {
		t.Errorf("fallback turn not counted: %d", sess.TurnCount)
	}
}

func TestGoodbyeDecision(t *testing.T) {
	o := newTestOrchestrator(&fakeLookup{})
	sess := store.NewSession("s1")

	d := handle(t, o, sess, "ok bye")
	if d.Kind != KindGoodbye {
		t.Errorf("Kind = %s, want %s", d.Kind, KindGoodbye)
	}
}
