package entity

import (
	"time"

	"github.com/google/uuid"
)

type Station struct {
	Id        uuid.UUID
	Name      string
	City      string
	Kind      string // bus_terminal | railway_station
	CreatedAt time.Time
	UpdatedAt *time.Time
}
