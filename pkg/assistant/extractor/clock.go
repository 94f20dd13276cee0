package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"ai-travelmate-be/pkg/store"
)

// Six fixed keyword windows, tried in declared order before any clock
// expression is considered. Half-open hour intervals on the 24h clock.
var timeWindowRules = []struct {
	label      string
	re         *regexp.Regexp
	start, end int
}{
	{"morning", regexp.MustCompile(`\bmorning\b`), 6, 12},
	{"afternoon", regexp.MustCompile(`\bafternoon\b`), 12, 17},
	{"evening", regexp.MustCompile(`\bevening\b`), 17, 21},
	{"night", regexp.MustCompile(`\b(?:night|tonight)\b`), 21, 24},
	{"early", regexp.MustCompile(`\bearly\b`), 5, 8},
	{"late", regexp.MustCompile(`\blate\b`), 21, 24},
}

var clockRe = regexp.MustCompile(`\b(at|around|by|before|after)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

// parseTimePreference resolves a labeled window or, failing that, a single
// anchor time introduced by at/around/by/before/after. Returns nil when the
// text carries no usable time phrase.
func parseTimePreference(lower string) *store.TimePreference {
	for _, w := range timeWindowRules {
		if w.re.MatchString(lower) {
			return &store.TimePreference{
				Kind:  store.TimeKindWindow,
				Label: w.label,
				Start: w.start,
				End:   w.end,
			}
		}
	}

	m := clockRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}

	hour, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	minute := 0
	if m[3] != "" {
		minute, err = strconv.Atoi(m[3])
		if err != nil || minute > 59 {
			return nil
		}
	}

	switch m[4] {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	if hour > 23 {
		return nil
	}

	return &store.TimePreference{
		Kind:     store.TimeKindAnchor,
		Label:    strings.TrimSpace(m[0]),
		Hour:     hour,
		Minute:   minute,
		Relation: m[1],
	}
}
