package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransitRoute is one scheduled service between two stations. Origin and
// destination cities are denormalized onto the route so corridor lookups
// don't join through stations.
type TransitRoute struct {
	Id                   uuid.UUID
	Name                 string
	Mode                 string // bus | train
	Operator             string
	OriginStationId      uuid.UUID
	DestinationStationId uuid.UUID
	OriginCity           string
	DestinationCity      string
	Price                float64
	DurationMinutes      int
	DistanceKm           float64
	Departures           []RouteDeparture
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// RouteDeparture is one clock-time run of a route. Days lists the weekdays
// it operates ("mon".."sun"); empty means daily.
type RouteDeparture struct {
	Id            uuid.UUID
	RouteId       uuid.UUID
	DepartureTime string // "06:30", 24h clock
	ArrivalTime   string
	Platform      string
	Days          []string
	CreatedAt     time.Time
}
