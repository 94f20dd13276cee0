// Package transit resolves corridor queries against the Postgres catalog.
// A short-lived Redis cache sits in front; the cache is advisory and every
// cache failure degrades to a catalog read.
package transit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/pkg/logger"
	"ai-travelmate-be/internal/repository/specification"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/assistant/dialog"
	"ai-travelmate-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

// aroundSlackMinutes is the half-width of the "at"/"around" anchor window.
const aroundSlackMinutes = 90

type Finder struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	cacheTTL   time.Duration
	log        logger.ILogger
}

func NewFinder(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, cacheTTL time.Duration, log logger.ILogger) *Finder {
	return &Finder{
		uowFactory: uowFactory,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// Lookup loads the corridor's candidates and trims each departure list to
// the queried day and time preference. Routes stay in the result even when
// no departure survives; the scorer treats a thin schedule as a ranking
// signal, not an exclusion.
func (f *Finder) Lookup(ctx context.Context, q dialog.LookupQuery) ([]store.Route, error) {
	key := cacheKey(q)
	if routes, ok := f.fromCache(ctx, key); ok {
		return routes, nil
	}

	specs := []specification.Specification{
		specification.ByOriginCity{City: q.Origin},
		specification.ByDestinationCity{City: q.Destination},
	}
	if q.Mode != "" && q.Mode != store.ModeAny {
		specs = append(specs, specification.ByMode{Mode: q.Mode})
	}

	uow := f.uowFactory.NewUnitOfWork(ctx)
	candidates, err := uow.TransitRouteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	routes := make([]store.Route, 0, len(candidates))
	for _, c := range candidates {
		routes = append(routes, toStoreRoute(c, q))
	}

	f.toCache(ctx, key, routes)
	return routes, nil
}

func toStoreRoute(r *entity.TransitRoute, q dialog.LookupQuery) store.Route {
	out := store.Route{
		ID:          r.Id.String(),
		Name:        r.Name,
		Origin:      r.OriginCity,
		Destination: r.DestinationCity,
		Mode:        r.Mode,
		Operator:    r.Operator,
		Price:       r.Price,
		Duration:    r.DurationMinutes,
		Distance:    r.DistanceKm,
	}
	for _, d := range r.Departures {
		if q.Date != nil && !runsOn(d.Days, q.Date.Date) {
			continue
		}
		if q.TimePreference != nil && !withinPreference(d.DepartureTime, q.TimePreference) {
			continue
		}
		out.Departures = append(out.Departures, store.Departure{
			Time:     d.DepartureTime,
			Arrival:  d.ArrivalTime,
			Platform: d.Platform,
		})
	}
	return out
}

// runsOn checks the departure's day list against the travel date. An empty
// list means the service runs daily.
func runsOn(days []string, date time.Time) bool {
	if len(days) == 0 {
		return true
	}
	day := strings.ToLower(date.Weekday().String())[:3]
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// withinPreference checks a "HH:MM" departure against the time preference.
// Windows are half-open [Start, End). Anchors compare by relation; "at" and
// "around" accept anything inside the slack band.
func withinPreference(departure string, tp *store.TimePreference) bool {
	m, ok := clockMinutes(departure)
	if !ok {
		// Unparseable schedule rows pass through rather than vanish.
		return true
	}

	if tp.Kind == store.TimeKindWindow {
		return m >= tp.Start*60 && m < tp.End*60
	}

	anchor := tp.Hour*60 + tp.Minute
	switch tp.Relation {
	case "before", "by":
		return m <= anchor
	case "after":
		return m >= anchor
	default: // "at", "around"
		diff := m - anchor
		if diff < 0 {
			diff = -diff
		}
		return diff <= aroundSlackMinutes
	}
}

func clockMinutes(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mi, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + mi, true
}

// cacheKey normalizes the query into a redis key. Budget preference is
// excluded: it shifts scoring weights, never the candidate set.
func cacheKey(q dialog.LookupQuery) string {
	date := ""
	if q.Date != nil {
		date = q.Date.Date.Format("2006-01-02")
	}
	timePref := ""
	if tp := q.TimePreference; tp != nil {
		if tp.Kind == store.TimeKindWindow {
			timePref = fmt.Sprintf("w%d-%d", tp.Start, tp.End)
		} else {
			timePref = fmt.Sprintf("%s%02d%02d", tp.Relation, tp.Hour, tp.Minute)
		}
	}
	return strings.ToLower(fmt.Sprintf("routes:%s:%s:%s:%s:%s", q.Origin, q.Destination, q.Mode, date, timePref))
}

func (f *Finder) fromCache(ctx context.Context, key string) ([]store.Route, bool) {
	if f.rdb == nil {
		return nil, false
	}
	raw, err := f.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		f.log.Warn("TransitFinder", "route cache read failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	}
	var routes []store.Route
	if err := json.Unmarshal([]byte(raw), &routes); err != nil {
		f.log.Warn("TransitFinder", "route cache entry corrupt", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	}
	return routes, true
}

func (f *Finder) toCache(ctx context.Context, key string, routes []store.Route) {
	if f.rdb == nil {
		return
	}
	raw, err := json.Marshal(routes)
	if err != nil {
		return
	}
	if err := f.rdb.Set(ctx, key, raw, f.cacheTTL).Err(); err != nil {
		f.log.Warn("TransitFinder", "route cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
