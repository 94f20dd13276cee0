package dto

import (
	"time"

	"github.com/google/uuid"
)

type StationResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
	Kind string    `json:"kind"`
}

type CatalogRouteResponse struct {
	Id              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Mode            string         `json:"mode"`
	Operator        string         `json:"operator"`
	OriginCity      string         `json:"origin_city"`
	DestinationCity string         `json:"destination_city"`
	Price           float64        `json:"price"`
	DurationMin     int            `json:"duration_min"`
	DistanceKm      float64        `json:"distance_km"`
	Departures      []DepartureDTO `json:"departures"`
}

type PopularCorridorResponse struct {
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	Mode            string    `json:"mode"`
	SearchCount     int64     `json:"search_count"`
	LastSearchedAt  time.Time `json:"last_searched_at"`
}
