package intent

import (
	"testing"

	"ai-travelmate-be/pkg/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		entities   store.Entities
		wantIntent Intent
	}{
		{name: "greeting", text: "Hello!", wantIntent: Greeting},
		{name: "greeting namaste", text: "namaste", wantIntent: Greeting},
		{name: "help", text: "what can you do?", wantIntent: Help},
		{name: "goodbye", text: "ok bye", wantIntent: Goodbye},
		{name: "thanks", text: "thank you so much", wantIntent: Thanks},
		{name: "travel search", text: "i want to travel from mumbai to pune by bus", wantIntent: TravelSearch},
		{name: "schedule query", text: "when does the volvo leave?", wantIntent: ScheduleQuery},
		{name: "price query", text: "How much does it cost?", wantIntent: PriceQuery},
		{name: "compare", text: "compare the options", wantIntent: CompareRoutes},
		{name: "select by option number", text: "I'll take option 2", wantIntent: SelectRoute},
		{name: "select by bare number", text: "2", wantIntent: SelectRoute},
		{name: "preference", text: "i prefer sleeper instead", wantIntent: RoutePreference},
		{name: "gibberish is unknown", text: "qwerty asdf zxcv", wantIntent: Unknown},
		{
			name:       "entity boost dominates low-signal text",
			text:       "Find trains",
			entities:   store.Entities{Origin: "Mumbai", Destination: "Pune"},
			wantIntent: TravelSearch,
		},
		{
			name:       "zero score with a location forces travel search",
			text:       "qwerty asdf",
			entities:   store.Entities{Destination: "Pune"},
			wantIntent: TravelSearch,
		},
		{
			name:       "tie resolves to earlier declared intent",
			text:       "hi, how much?",
			wantIntent: Greeting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := Classify(tt.text, tt.entities)
			if got != tt.wantIntent {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.wantIntent)
			}
			if conf < 0 || conf > 1 {
				t.Errorf("confidence %v outside [0,1]", conf)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities store.Entities
		want     float64
	}{
		{name: "single pattern", text: "hello", want: 1.0 / 3.0},
		{name: "unknown is zero", text: "qwerty asdf", want: 0},
		{
			name:     "caps at one",
			text:     "find a bus ticket from mumbai to pune",
			entities: store.Entities{Origin: "Mumbai"},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, conf := Classify(tt.text, tt.entities)
			if conf != tt.want {
				t.Errorf("confidence = %v, want %v", conf, tt.want)
			}
		})
	}
}
