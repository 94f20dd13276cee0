package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceAlert struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OriginCity      string         `gorm:"type:varchar(100);index:idx_alerts_corridor,priority:1"`
	DestinationCity string         `gorm:"type:varchar(100);index:idx_alerts_corridor,priority:2"`
	Mode            string         `gorm:"type:varchar(10)"`
	Severity        string         `gorm:"type:varchar(20);not null;default:'info'"`
	Title           string         `gorm:"type:varchar(200);not null"`
	Message         string         `gorm:"type:text;not null"`
	EffectiveFrom   time.Time      `gorm:"not null"`
	EffectiveTo     *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ServiceAlert) TableName() string {
	return "service_alerts"
}
