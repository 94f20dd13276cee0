package extractor

import (
	"regexp"
	"strconv"
	"time"

	"ai-travelmate-be/pkg/store"
)

// Date phrases resolve through three rule categories tried in order:
// named relative offsets, weekday names, explicit day/month tokens. Only
// the first category that matches contributes; later ones are skipped.

type relativeDateRule struct {
	re   *regexp.Regexp
	days int
	// weekend rules compute the offset from the current weekday instead
	// of using a fixed day count.
	weekend bool
}

// "day after" sits above "tomorrow" so the longer phrase wins.
var relativeDateRules = []relativeDateRule{
	{re: regexp.MustCompile(`\bday after(?: tomorrow)?\b`), days: 2},
	{re: regexp.MustCompile(`\btomorrow\b`), days: 1},
	{re: regexp.MustCompile(`\btoday\b|\btonight\b`), days: 0},
	{re: regexp.MustCompile(`\bnext week\b`), days: 7},
	{re: regexp.MustCompile(`\bthis weekend\b|\bweekend\b`), weekend: true},
}

var weekdayRe = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

const monthAlt = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var (
	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthAlt + `\b`)
	monthDayRe = regexp.MustCompile(`\b` + monthAlt + `\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
)

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func monthFromToken(tok string) (time.Month, bool) {
	if len(tok) > 3 {
		tok = tok[:3]
	}
	m, ok := monthNames[tok]
	return m, ok
}

// parseDate runs the three date categories against the lowered text.
// Returns nil when no category matches.
func parseDate(lower string, now time.Time) *store.TravelDate {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, r := range relativeDateRules {
		m := r.re.FindString(lower)
		if m == "" {
			continue
		}
		days := r.days
		if r.weekend {
			days = int((time.Saturday - today.Weekday() + 7) % 7)
		}
		return &store.TravelDate{Date: today.AddDate(0, 0, days), Phrase: m}
	}

	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		target := weekdayNames[m[1]]
		ahead := int((target - today.Weekday() + 7) % 7)
		if ahead == 0 {
			// Strictly after today: naming today's weekday means next week.
			ahead = 7
		}
		return &store.TravelDate{Date: today.AddDate(0, 0, ahead), Phrase: m[0]}
	}

	if d := parseDayMonth(lower, today); d != nil {
		return d
	}
	return nil
}

func parseDayMonth(lower string, today time.Time) *store.TravelDate {
	var dayTok, monthTok, phrase string
	if m := dayMonthRe.FindStringSubmatch(lower); m != nil {
		dayTok, monthTok, phrase = m[1], m[2], m[0]
	} else if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		dayTok, monthTok, phrase = m[2], m[1], m[0]
	} else {
		return nil
	}

	day, err := strconv.Atoi(dayTok)
	if err != nil || day < 1 || day > 31 {
		return nil
	}
	month, ok := monthFromToken(monthTok)
	if !ok {
		return nil
	}

	date := time.Date(today.Year(), month, day, 0, 0, 0, 0, today.Location())
	if date.Month() != month {
		// Day overflowed the month ("31 feb" normalizes into March).
		return nil
	}
	if date.Before(today) {
		date = date.AddDate(1, 0, 0)
	}
	return &store.TravelDate{Date: date, Phrase: phrase}
}
