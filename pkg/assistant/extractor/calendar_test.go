package extractor

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	// testNow is Wednesday 2025-06-11.
	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantNone bool
	}{
		{name: "today", text: "leaving today", want: date(2025, time.June, 11)},
		{name: "tonight counts as today", text: "leaving tonight", want: date(2025, time.June, 11)},
		{name: "tomorrow", text: "go tomorrow", want: date(2025, time.June, 12)},
		{name: "day after tomorrow", text: "day after tomorrow works", want: date(2025, time.June, 13)},
		{name: "day after without tomorrow", text: "the day after", want: date(2025, time.June, 13)},
		{name: "next week", text: "sometime next week", want: date(2025, time.June, 18)},
		{name: "this weekend is next saturday", text: "this weekend", want: date(2025, time.June, 14)},
		{name: "upcoming weekday", text: "on friday", want: date(2025, time.June, 13)},
		{name: "same weekday rolls a week ahead", text: "on wednesday", want: date(2025, time.June, 18)},
		{name: "day month in the future", text: "on 20 december", want: date(2025, time.December, 20)},
		{name: "day month already passed", text: "15 march", want: date(2026, time.March, 15)},
		{name: "month day order", text: "march 15", want: date(2026, time.March, 15)},
		{name: "ordinal suffix and of", text: "15th of august", want: date(2025, time.August, 15)},
		{name: "three letter month", text: "2 jul", want: date(2025, time.July, 2)},
		{name: "day overflow rejected", text: "31 feb", wantNone: true},
		{name: "no date", text: "from mumbai to pune", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.text, testNow)
			if tt.wantNone {
				if got != nil {
					t.Fatalf("parseDate(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseDate(%q) = nil, want %v", tt.text, tt.want)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.text, got.Date, tt.want)
			}
			if got.Phrase == "" {
				t.Errorf("parseDate(%q) lost its surface phrase", tt.text)
			}
		})
	}
}

func TestRelativeOutranksWeekday(t *testing.T) {
	// Both categories could fire; the relative category is tried first.
	got := parseDate("tomorrow or maybe friday", testNow)
	if got == nil {
		t.Fatal("parseDate returned nil")
	}
	if want := date(2025, time.June, 12); !got.Date.Equal(want) {
		t.Errorf("date = %v, want %v (tomorrow)", got.Date, want)
	}
}
