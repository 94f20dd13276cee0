package model

import (
	"time"

	"github.com/google/uuid"
)

type CorridorStat struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OriginCity      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_corridor_stats_key,priority:1"`
	DestinationCity string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_corridor_stats_key,priority:2"`
	Mode            string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_corridor_stats_key,priority:3"`
	SearchCount     int64     `gorm:"not null;default:0"`
	LastSearchedAt  time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (CorridorStat) TableName() string {
	return "corridor_stats"
}
