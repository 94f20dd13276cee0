package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorridorStat counts searches per (origin, destination, mode) corridor.
// Fed by the search-performed worker, read by the catalog's popular-routes
// endpoint.
type CorridorStat struct {
	Id              uuid.UUID
	OriginCity      string
	DestinationCity string
	Mode            string
	SearchCount     int64
	LastSearchedAt  time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
