package extractor

import (
	"testing"

	"ai-travelmate-be/pkg/store"
)

func TestParseTimePreferenceWindows(t *testing.T) {
	tests := []struct {
		text      string
		wantLabel string
		wantStart int
		wantEnd   int
	}{
		{"tomorrow morning", "morning", 6, 12},
		{"in the afternoon", "afternoon", 12, 17},
		{"evening bus", "evening", 17, 21},
		{"night travel", "night", 21, 24},
		{"tonight", "night", 21, 24},
		{"early departure", "early", 5, 8},
		{"late departure", "late", 21, 24},
		// Declared order: "morning" wins over "early" in "early morning".
		{"early morning", "morning", 6, 12},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := parseTimePreference(tt.text)
			if got == nil {
				t.Fatalf("parseTimePreference(%q) = nil", tt.text)
			}
			if got.Kind != store.TimeKindWindow {
				t.Fatalf("Kind = %q, want window", got.Kind)
			}
			if got.Label != tt.wantLabel || got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("got %s [%d,%d), want %s [%d,%d)",
					got.Label, got.Start, got.End, tt.wantLabel, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseTimePreferenceAnchors(t *testing.T) {
	tests := []struct {
		text         string
		wantHour     int
		wantMinute   int
		wantRelation string
	}{
		{"at 6 pm", 18, 0, "at"},
		{"around 9am", 9, 0, "around"},
		{"after 7:30 am", 7, 30, "after"},
		{"by 11 pm", 23, 0, "by"},
		{"before 12 pm", 12, 0, "before"},
		{"at 12 am", 0, 0, "at"},
		{"at 18:45", 18, 45, "at"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := parseTimePreference(tt.text)
			if got == nil {
				t.Fatalf("parseTimePreference(%q) = nil", tt.text)
			}
			if got.Kind != store.TimeKindAnchor {
				t.Fatalf("Kind = %q, want anchor", got.Kind)
			}
			if got.Hour != tt.wantHour || got.Minute != tt.wantMinute {
				t.Errorf("time = %02d:%02d, want %02d:%02d", got.Hour, got.Minute, tt.wantHour, tt.wantMinute)
			}
			if got.Relation != tt.wantRelation {
				t.Errorf("Relation = %q, want %q", got.Relation, tt.wantRelation)
			}
		})
	}
}

func TestParseTimePreferenceRejects(t *testing.T) {
	tests := []string{
		"from mumbai to pune",
		"at 25 pm",
		"option 2",
	}
	for _, text := range tests {
		if got := parseTimePreference(text); got != nil {
			t.Errorf("parseTimePreference(%q) = %+v, want nil", text, got)
		}
	}
}
