// Package intent scores a message against per-intent pattern sets and picks
// a winner. Deterministic: every pattern is a boolean regex test, the score
// is the match count, and ties resolve to the earlier-declared intent.
package intent

import (
	"strings"

	"ai-travelmate-be/pkg/store"
)

// Intent is one label from the closed set below. Dispatch sites switch over
// every value; adding an intent means revisiting each of them.
type Intent string

const (
	Greeting        Intent = "greeting"
	Help            Intent = "help"
	Goodbye         Intent = "goodbye"
	Thanks          Intent = "thanks"
	TravelSearch    Intent = "travel_search"
	ScheduleQuery   Intent = "schedule_query"
	PriceQuery      Intent = "price_query"
	CompareRoutes   Intent = "compare_routes"
	SelectRoute     Intent = "select_route"
	RoutePreference Intent = "route_preference"
	Unknown         Intent = "unknown"
)

const (
	// entityBoost raises travel_search when the merged context already
	// carries a trip endpoint, so low-signal texts like "find trains"
	// still route to search once a location is known.
	entityBoost = 2

	// confidenceDivisor normalizes the winning score into [0,1]. A
	// heuristic, not a probability.
	confidenceDivisor = 3.0
)

// Classify scores the lowered text against every intent's pattern list and
// returns the winner with its normalized confidence. All patterns of an
// intent are tried and summed, not first-match. The first intent to reach
// the maximum keeps the win over later equal scores.
func Classify(text string, entities store.Entities) (Intent, float64) {
	lower := strings.ToLower(text)
	winner := Unknown
	best := 0

	for _, set := range intentPatterns {
		score := 0
		for _, p := range set.patterns {
			if p.MatchString(lower) {
				score++
			}
		}
		if set.intent == TravelSearch && entities.HasLocation() {
			score += entityBoost
		}
		if score > best {
			winner, best = set.intent, score
		}
	}

	if best <= 0 {
		if entities.HasLocation() {
			return TravelSearch, confidence(entityBoost)
		}
		return Unknown, 0
	}
	return winner, confidence(best)
}

func confidence(score int) float64 {
	c := float64(score) / confidenceDivisor
	if c > 1 {
		return 1
	}
	return c
}
