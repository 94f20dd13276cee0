// Package extractor turns free-form travel text into the structured slot
// set the dialogue layer accumulates across turns. Everything here is an
// ordered rule table: regexes and keyword groups tried in declared order,
// first success wins per category. No state, no learning.
package extractor

import (
	"regexp"
	"strings"
	"time"

	"ai-travelmate-be/pkg/store"
)

// locTail bounds a lazy location capture at punctuation, end of text, or a
// following qualifier word so "pune tomorrow morning" captures just "pune".
const locTail = `(?:\s+(?:on|for|by|at|around|before|after|today|tomorrow|tonight|this|next|in|via|using|with|please)\b|[.,!?;]|$)`

const locPhrase = `([a-z][a-z ]*?)`

type locationRule struct {
	re        *regexp.Regexp
	originIdx int // submatch index, 0 = not captured
	destIdx   int
}

// Five surface shapes in fixed priority order. A rule wins only when at
// least one capture resolves through the alias table, which keeps the
// destination-only verb shape reachable behind the looser "A to B" form.
var locationRules = []locationRule{
	{re: regexp.MustCompile(`\bfrom\s+` + locPhrase + `\s+to\s+` + locPhrase + locTail), originIdx: 1, destIdx: 2},
	{re: regexp.MustCompile(`\b` + locPhrase + `\s+to\s+` + locPhrase + locTail), originIdx: 1, destIdx: 2},
	{re: regexp.MustCompile(`\bto\s+` + locPhrase + `\s+from\s+` + locPhrase + locTail), originIdx: 2, destIdx: 1},
	{re: regexp.MustCompile(`\b(?:go|going|travel|travelling|traveling|reach|reaching|visit|visiting)\s+to\s+` + locPhrase + locTail), destIdx: 1},
	{re: regexp.MustCompile(`\bfrom\s+` + locPhrase + locTail), originIdx: 1},
}

// fromWordRe rejects captures that swallowed a trailing "from ..." clause,
// which would otherwise shadow the "to B from A" shape.
var fromWordRe = regexp.MustCompile(`\bfrom\b`)

// Mode keyword groups, tried in order: train, bus, any.
var modeRules = []struct {
	mode string
	re   *regexp.Regexp
}{
	{store.ModeTrain, regexp.MustCompile(`\b(?:trains?|railways?|rail|express)\b`)},
	{store.ModeBus, regexp.MustCompile(`\b(?:bus(?:es)?|volvo|shivneri)\b`)},
	{store.ModeAny, regexp.MustCompile(`\b(?:any|both|either)\b`)},
}

// Seat class keyword groups. "non-ac" sits above "ac" so the longer form
// wins.
var seatClassRules = []struct {
	class string
	re    *regexp.Regexp
}{
	{"sleeper", regexp.MustCompile(`\bsleeper\b`)},
	{"seater", regexp.MustCompile(`\bseater\b`)},
	{"non-ac", regexp.MustCompile(`\bnon[- ]?a\.?c\b`)},
	{"ac", regexp.MustCompile(`\ba\.?c\b|\bair[- ]?conditioned\b`)},
	{"window", regexp.MustCompile(`\bwindow\b`)},
	{"first class", regexp.MustCompile(`\bfirst[- ]?class\b`)},
	{"second class", regexp.MustCompile(`\bsecond[- ]?class\b`)},
}

var budgetRules = []struct {
	pref string
	re   *regexp.Regexp
}{
	{store.BudgetLow, regexp.MustCompile(`\b(?:cheap(?:est)?|budget|economical|affordable|low[- ]?cost|lowest)\b`)},
	{store.BudgetPremium, regexp.MustCompile(`\b(?:premium|luxury|luxurious|comfortable|comfy|best|expensive)\b`)},
}

// Extractor resolves slots against the current clock. The zero value is not
// usable; construct with New.
type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// Extract parses one message and merges the result over the prior context.
// Pure function of (text, prior, clock); never erases a prior slot.
func (x *Extractor) Extract(text string, prior store.Entities) store.Entities {
	return Merge(x.ExtractFresh(text), prior)
}

// ExtractFresh parses one message with no prior context.
func (x *Extractor) ExtractFresh(text string) store.Entities {
	lower := strings.ToLower(text)
	var out store.Entities

	out.Origin, out.Destination = extractLocations(lower)

	for _, r := range modeRules {
		if r.re.MatchString(lower) {
			out.Mode = r.mode
			break
		}
	}
	for _, r := range seatClassRules {
		if r.re.MatchString(lower) {
			out.SeatClass = r.class
			break
		}
	}
	for _, r := range budgetRules {
		if r.re.MatchString(lower) {
			out.BudgetPreference = r.pref
			break
		}
	}

	out.Date = parseDate(lower, x.now())
	out.TimePreference = parseTimePreference(lower)

	return out
}

// Merge starts from the prior context and overwrites a slot only when the
// new extraction produced a value for it. Cumulative slot-filling: a slot,
// once known, survives turns that say nothing about it.
func Merge(next, prior store.Entities) store.Entities {
	out := prior
	if next.Origin != "" {
		out.Origin = next.Origin
	}
	if next.Destination != "" {
		out.Destination = next.Destination
	}
	if next.Mode != "" {
		out.Mode = next.Mode
	}
	if next.SeatClass != "" {
		out.SeatClass = next.SeatClass
	}
	if next.BudgetPreference != "" {
		out.BudgetPreference = next.BudgetPreference
	}
	if next.Date != nil {
		out.Date = next.Date
	}
	if next.TimePreference != nil {
		out.TimePreference = next.TimePreference
	}
	return out
}

func extractLocations(lower string) (origin, destination string) {
	for _, rule := range locationRules {
		m := rule.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		var o, d string
		if rule.originIdx > 0 {
			o = m[rule.originIdx]
		}
		if rule.destIdx > 0 {
			d = m[rule.destIdx]
		}
		if fromWordRe.MatchString(o) || fromWordRe.MatchString(d) {
			continue
		}

		ro, rd := ResolveCity(o), ResolveCity(d)
		if ro == "" && rd == "" {
			continue
		}
		return ro, rd
	}
	return "", ""
}
