package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransitRoute struct {
	Id                   uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                 string           `gorm:"type:text;not null"`
	Mode                 string           `gorm:"type:varchar(10);not null;index:idx_routes_corridor,priority:3"`
	Operator             string           `gorm:"type:varchar(100);not null"`
	OriginStationId      uuid.UUID        `gorm:"type:uuid;not null"`
	DestinationStationId uuid.UUID        `gorm:"type:uuid;not null"`
	OriginCity           string           `gorm:"type:varchar(100);not null;index:idx_routes_corridor,priority:1"`
	DestinationCity      string           `gorm:"type:varchar(100);not null;index:idx_routes_corridor,priority:2"`
	Price                float64          `gorm:"type:numeric(10,2);not null"`
	DurationMinutes      int              `gorm:"not null"`
	DistanceKm           float64          `gorm:"type:numeric(8,1)"`
	Departures           []RouteDeparture `gorm:"foreignKey:RouteId;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time        `gorm:"autoCreateTime"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime"`
}

func (TransitRoute) TableName() string {
	return "transit_routes"
}

type RouteDeparture struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RouteId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	DepartureTime string         `gorm:"type:varchar(5);not null"` // "06:30"
	ArrivalTime   string         `gorm:"type:varchar(5);not null"`
	Platform      string         `gorm:"type:varchar(10)"`
	Days          datatypes.JSON `gorm:"type:jsonb"` // ["mon","tue"], null means daily
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (RouteDeparture) TableName() string {
	return "route_departures"
}
