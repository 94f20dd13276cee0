package model

import (
	"time"

	"github.com/google/uuid"
)

type Station struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;not null"`
	City      string    `gorm:"type:varchar(100);not null;index"`
	Kind      string    `gorm:"type:varchar(30);not null"` // bus_terminal | railway_station
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Station) TableName() string {
	return "stations"
}
