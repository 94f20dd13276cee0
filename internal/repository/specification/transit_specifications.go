package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOriginCity struct {
	City string
}

func (s ByOriginCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("origin_city ILIKE ?", s.City)
}

type ByDestinationCity struct {
	City string
}

func (s ByDestinationCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("destination_city ILIKE ?", s.City)
}

// ByMode restricts routes to one transport mode. Callers skip it when the
// traveller accepts anything.
type ByMode struct {
	Mode string
}

func (s ByMode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mode = ?", s.Mode)
}

type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city ILIKE ?", s.City)
}

type ByStationKind struct {
	Kind string
}

func (s ByStationKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", s.Kind)
}

type ByRouteID struct {
	RouteID uuid.UUID
}

func (s ByRouteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("route_id = ?", s.RouteID)
}
