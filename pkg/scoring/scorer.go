// Package scoring ranks candidate routes with a fixed-weight, min/max
// normalized score and tags the notable ones. Stateless; every call works
// only on the routes and entities it was handed.
package scoring

import (
	"sort"

	"ai-travelmate-be/pkg/store"
)

const (
	TagCheapest = "cheapest"
	TagFastest  = "fastest"
	TagFrequent = "frequent"

	// frequentThreshold is the departure count at which a route counts as
	// high-frequency.
	frequentThreshold = 4

	// scheduleSaturation is the departure count that earns a full schedule
	// convenience score.
	scheduleSaturation = 5
)

// Score annotates every candidate with a total score in [0,1] and its tags,
// then returns them sorted by score descending. Equal scores keep their
// input order; the sort is stable on purpose. The input slice is not
// modified. An empty set comes back empty.
func Score(routes []store.Route, entities store.Entities) []store.Route {
	if len(routes) == 0 {
		return nil
	}

	out := make([]store.Route, len(routes))
	copy(out, routes)

	minPrice, maxPrice := out[0].Price, out[0].Price
	minDur, maxDur := out[0].Duration, out[0].Duration
	for _, r := range out[1:] {
		if r.Price < minPrice {
			minPrice = r.Price
		}
		if r.Price > maxPrice {
			maxPrice = r.Price
		}
		if r.Duration < minDur {
			minDur = r.Duration
		}
		if r.Duration > maxDur {
			maxDur = r.Duration
		}
	}

	w := ProfileFor(entities.BudgetPreference)

	for i := range out {
		r := &out[i]

		priceScore := 1.0
		if maxPrice != minPrice {
			priceScore = 1 - (r.Price-minPrice)/(maxPrice-minPrice)
		}
		durationScore := 1.0
		if maxDur != minDur {
			durationScore = 1 - float64(r.Duration-minDur)/float64(maxDur-minDur)
		}
		scheduleScore := float64(len(r.Departures)) / scheduleSaturation
		if scheduleScore > 1 {
			scheduleScore = 1
		}
		operatorScore := reputationOf(r.Operator)

		r.Score = w.Price*priceScore + w.Duration*durationScore +
			w.Schedule*scheduleScore + w.Operator*operatorScore

		r.Tags = nil
		if r.Price == minPrice {
			r.Tags = append(r.Tags, TagCheapest)
		}
		if r.Duration == minDur {
			r.Tags = append(r.Tags, TagFastest)
		}
		if len(r.Departures) >= frequentThreshold {
			r.Tags = append(r.Tags, TagFrequent)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// HasTag reports whether a scored route carries the given tag.
func HasTag(r store.Route, tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
