package render

import (
	"strings"
	"testing"

	"ai-travelmate-be/pkg/assistant/dialog"
	"ai-travelmate-be/pkg/assistant/intent"
	"ai-travelmate-be/pkg/scoring"
	"ai-travelmate-be/pkg/store"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{195, "3h 15min"},
		{60, "1h"},
		{0, "0min"},
		{45, "45min"},
		{125, "2h 5min"},
		{-10, "0min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{450, "₹450"},
		{450.5, "₹450.5"},
		{1200, "₹1200"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func routes() []store.Route {
	return []store.Route{
		{ID: "r1", Name: "Shivneri Express", Origin: "Mumbai", Destination: "Pune",
			Mode: store.ModeBus, Operator: "MSRTC Shivneri", Price: 450, Duration: 195, Distance: 148,
			Departures: []store.Departure{{Time: "06:30", Arrival: "09:45"}, {Time: "08:00", Arrival: "11:15"}},
			Tags:       []string{"fastest"}},
		{ID: "r2", Name: "Deccan Queen", Origin: "Mumbai", Destination: "Pune",
			Mode: store.ModeTrain, Operator: "Indian Railways", Price: 350, Duration: 210,
			Departures: []store.Departure{{Time: "07:15", Arrival: "10:45", Platform: "3"}},
			Tags:       []string{"cheapest"}},
	}
}

func TestRenderCannedKinds(t *testing.T) {
	r := New()
	kinds := []dialog.Kind{
		dialog.KindGreeting, dialog.KindHelp, dialog.KindGoodbye,
		dialog.KindThanks, dialog.KindUnknown,
	}
	seen := map[string]dialog.Kind{}
	for _, k := range kinds {
		msg := r.Render(&dialog.Decision{Kind: k})
		if msg == "" {
			t.Errorf("Render(%s) returned empty text", k)
		}
		if prior, dup := seen[msg]; dup {
			t.Errorf("kinds %s and %s render identically", prior, k)
		}
		seen[msg] = k
	}
}

func TestRenderMissingSlots(t *testing.T) {
	r := New()
	tests := []struct {
		name     string
		decision dialog.Decision
		want     []string
	}{
		{
			name: "both endpoints",
			decision: dialog.Decision{Kind: dialog.KindMissingSlots,
				MissingSlots: []string{"origin", "destination"}},
			want: []string{"travelling from, and where to"},
		},
		{
			name: "origin only",
			decision: dialog.Decision{Kind: dialog.KindMissingSlots,
				MissingSlots: []string{"origin"},
				Entities:     store.Entities{Destination: "Pune"}},
			want: []string{"travelling from", "Pune"},
		},
		{
			name: "destination only",
			decision: dialog.Decision{Kind: dialog.KindMissingSlots,
				MissingSlots: []string{"destination"},
				Entities:     store.Entities{Origin: "Mumbai"}},
			want: []string{"go from Mumbai"},
		},
		{
			name: "preference acknowledged",
			decision: dialog.Decision{Kind: dialog.KindMissingSlots,
				Intent:       intent.RoutePreference,
				MissingSlots: []string{"origin", "destination"},
				Entities:     store.Entities{SeatClass: "sleeper", Mode: store.ModeBus}},
			want: []string{"sleeper bus", "travelling from"},
		},
		{
			name: "compare without trip",
			decision: dialog.Decision{Kind: dialog.KindMissingSlots,
				Intent:       intent.CompareRoutes,
				MissingSlots: []string{"origin", "destination"}},
			want: []string{"before I can compare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(&tt.decision)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestRenderRouteResults(t *testing.T) {
	r := New()
	d := &dialog.Decision{
		Kind:   dialog.KindRouteResults,
		Routes: routes(),
		Entities: store.Entities{Origin: "Mumbai", Destination: "Pune",
			Date: &store.TravelDate{Phrase: "tomorrow"}},
		Recommendations: []scoring.Recommendation{
			{Kind: scoring.RecCheapest, Route: routes()[1]},
			{Kind: scoring.RecFastest, Route: routes()[0]},
			{Kind: scoring.RecTimeMatch, Count: 2},
		},
	}

	got := r.Render(d)
	for _, w := range []string{
		"Mumbai to Pune",
		"tomorrow",
		"1. Shivneri Express (bus, MSRTC Shivneri): ₹450, 3h 15min, 2 departures/day [fastest]",
		"2. Deccan Queen",
		"Cheapest: Deccan Queen at ₹350.",
		"Fastest: Shivneri Express, 3h 15min end to end.",
		"2 of these run around your preferred time.",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("results text missing %q in:\n%s", w, got)
		}
	}
}

func TestRenderRouteResultsIntentFraming(t *testing.T) {
	r := New()
	tests := []struct {
		intent intent.Intent
		want   string
	}{
		{intent.PriceQuery, "Here are the fares for Mumbai to Pune"},
		{intent.ScheduleQuery, "Here are the departures for Mumbai to Pune"},
		{intent.TravelSearch, "Here's what I found for Mumbai to Pune"},
	}
	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			got := r.Render(&dialog.Decision{
				Kind:     dialog.KindRouteResults,
				Intent:   tt.intent,
				Routes:   routes(),
				Entities: store.Entities{Origin: "Mumbai", Destination: "Pune"},
			})
			if !strings.Contains(got, tt.want) {
				t.Errorf("results text missing %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderRouteResultsEmpty(t *testing.T) {
	r := New()
	d := &dialog.Decision{
		Kind:     dialog.KindRouteResults,
		Entities: store.Entities{Origin: "Mumbai", Destination: "Goa", Mode: store.ModeTrain},
	}

	got := r.Render(d)
	for _, w := range []string{"couldn't find any trains", "Mumbai", "Goa"} {
		if !strings.Contains(got, w) {
			t.Errorf("empty-results text missing %q in: %s", w, got)
		}
	}
}

func TestRenderComparison(t *testing.T) {
	r := New()

	t.Run("table", func(t *testing.T) {
		got := r.Render(&dialog.Decision{Kind: dialog.KindComparison, Routes: routes()})
		for _, w := range []string{"Side by side", "Shivneri Express", "Deccan Queen", "Fare", "Duration"} {
			if !strings.Contains(got, w) {
				t.Errorf("comparison missing %q in:\n%s", w, got)
			}
		}
	})

	t.Run("single entry explains itself", func(t *testing.T) {
		got := r.Render(&dialog.Decision{Kind: dialog.KindComparison, Routes: routes()[:1]})
		if !strings.Contains(got, "nothing to compare") {
			t.Errorf("single-entry comparison = %q", got)
		}
	})
}

func TestRenderSelection(t *testing.T) {
	r := New()

	t.Run("detail card", func(t *testing.T) {
		picked := routes()[1]
		got := r.Render(&dialog.Decision{Kind: dialog.KindSelectionDetail, Selected: &picked, SelectedIndex: 2})
		for _, w := range []string{
			"Deccan Queen",
			"Mumbai to Pune (train)",
			"Operator: Indian Railways",
			"Fare: ₹350",
			"Duration: 3h 30min",
			"07:15 to 10:45 (platform 3)",
		} {
			if !strings.Contains(got, w) {
				t.Errorf("detail card missing %q in:\n%s", w, got)
			}
		}
	})

	t.Run("re-prompt with range", func(t *testing.T) {
		got := r.Render(&dialog.Decision{Kind: dialog.KindSelectionPrompt, RangeMax: 3})
		if !strings.Contains(got, "between 1 and 3") {
			t.Errorf("re-prompt = %q", got)
		}
	})

	t.Run("nothing to select", func(t *testing.T) {
		got := r.Render(&dialog.Decision{Kind: dialog.KindSelectionPrompt, RangeMax: 0})
		if !strings.Contains(got, "no routes on the table") {
			t.Errorf("empty prompt = %q", got)
		}
	})
}
