package extractor

import (
	"testing"
	"time"

	"ai-travelmate-be/pkg/store"
)

// Wednesday, fixed so date rules are deterministic.
var testNow = time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	return &Extractor{now: func() time.Time { return testNow }}
}

func TestExtractLocations(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantOrigin      string
		wantDestination string
	}{
		{
			name:            "from A to B",
			text:            "from mumbai to pune",
			wantOrigin:      "Mumbai",
			wantDestination: "Pune",
		},
		{
			name:            "aliases resolve to canonical names",
			text:            "I want to go from Bombay to Poona",
			wantOrigin:      "Mumbai",
			wantDestination: "Pune",
		},
		{
			name:            "bare A to B",
			text:            "pune to mumbai tomorrow",
			wantOrigin:      "Pune",
			wantDestination: "Mumbai",
		},
		{
			name:            "to B from A",
			text:            "to goa from nashik",
			wantOrigin:      "Nashik",
			wantDestination: "Goa",
		},
		{
			name:            "reversed form with filler verb",
			text:            "i want to go to pune from mumbai",
			wantOrigin:      "Mumbai",
			wantDestination: "Pune",
		},
		{
			name:            "destination only via travel verb",
			text:            "i want to visit shirdi",
			wantDestination: "Shirdi",
		},
		{
			name:       "origin only",
			text:       "im travelling from surat",
			wantOrigin: "Surat",
		},
		{
			name:       "origin only behind filler words",
			text:       "i want to go from mumbai",
			wantOrigin: "Mumbai",
		},
		{
			name:            "unknown origin keeps slot empty",
			text:            "from xyzabc to pune",
			wantDestination: "Pune",
		},
		{
			name: "no locations at all",
			text: "hello there, what can you do?",
		},
		{
			name:            "qualifier words bound the capture",
			text:            "mumbai to pune by volvo on friday",
			wantOrigin:      "Mumbai",
			wantDestination: "Pune",
		},
	}

	x := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.ExtractFresh(tt.text)
			if got.Origin != tt.wantOrigin {
				t.Errorf("Origin = %q, want %q", got.Origin, tt.wantOrigin)
			}
			if got.Destination != tt.wantDestination {
				t.Errorf("Destination = %q, want %q", got.Destination, tt.wantDestination)
			}
		})
	}
}

func TestExtractModeSeatBudget(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantMode   string
		wantSeat   string
		wantBudget string
	}{
		{name: "train keywords", text: "book a train to pune", wantMode: store.ModeTrain},
		{name: "express counts as train", text: "any express to nagpur", wantMode: store.ModeTrain},
		{name: "bus keywords", text: "volvo bus please", wantMode: store.ModeBus},
		{name: "any mode", text: "either works for me", wantMode: store.ModeAny},
		{name: "no mode", text: "from mumbai to pune"},
		{name: "sleeper", text: "sleeper please", wantSeat: "sleeper"},
		{name: "non-ac outranks ac", text: "non ac bus", wantMode: store.ModeBus, wantSeat: "non-ac"},
		{name: "ac", text: "ac volvo", wantMode: store.ModeBus, wantSeat: "ac"},
		{name: "budget words", text: "cheapest option please", wantBudget: store.BudgetLow},
		{name: "premium words", text: "something comfortable and premium", wantBudget: store.BudgetPremium},
	}

	x := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.ExtractFresh(tt.text)
			if got.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", got.Mode, tt.wantMode)
			}
			if got.SeatClass != tt.wantSeat {
				t.Errorf("SeatClass = %q, want %q", got.SeatClass, tt.wantSeat)
			}
			if got.BudgetPreference != tt.wantBudget {
				t.Errorf("BudgetPreference = %q, want %q", got.BudgetPreference, tt.wantBudget)
			}
		})
	}
}

func TestMergeIsCumulative(t *testing.T) {
	x := newTestExtractor()

	prior := x.ExtractFresh("from mumbai to pune tomorrow")
	if prior.Origin != "Mumbai" || prior.Destination != "Pune" || prior.Date == nil {
		t.Fatalf("setup extraction incomplete: %+v", prior)
	}

	// A turn that says nothing about locations or dates must not erase them.
	merged := x.Extract("make it a sleeper bus", prior)
	if merged.Origin != "Mumbai" || merged.Destination != "Pune" {
		t.Errorf("locations lost in merge: %+v", merged)
	}
	if merged.Date == nil || !merged.Date.Date.Equal(prior.Date.Date) {
		t.Errorf("date lost in merge: %+v", merged.Date)
	}
	if merged.Mode != store.ModeBus {
		t.Errorf("Mode = %q, want %q", merged.Mode, store.ModeBus)
	}
	if merged.SeatClass != "sleeper" {
		t.Errorf("SeatClass = %q, want %q", merged.SeatClass, "sleeper")
	}

	// A turn that names a new destination overwrites just that slot.
	merged = x.Extract("actually to nagpur instead", merged)
	if merged.Destination != "Nagpur" {
		t.Errorf("Destination = %q, want %q", merged.Destination, "Nagpur")
	}
	if merged.Origin != "Mumbai" {
		t.Errorf("Origin = %q, want %q", merged.Origin, "Mumbai")
	}
}

func TestResolveCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mumbai", "Mumbai"},
		{"Bombay", "Mumbai"},
		{"  pune  ", "Pune"},
		{"navi mumbai", "Navi Mumbai"},
		{"pune station", "Pune"},
		{"go", ""},
		{"xyzabc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveCity(tt.in); got != tt.want {
			t.Errorf("ResolveCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCityIdempotent(t *testing.T) {
	for _, c := range KnownCities() {
		if got := ResolveCity(c); got != c {
			t.Errorf("ResolveCity(%q) = %q, not a fixed point", c, got)
		}
	}
}
