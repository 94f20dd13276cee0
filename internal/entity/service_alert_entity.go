package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceAlert is an operator or corridor advisory (delay, cancellation,
// diversion) pushed to travellers whose trip matches it.
type ServiceAlert struct {
	Id              uuid.UUID
	OriginCity      string // empty matches any origin
	DestinationCity string // empty matches any destination
	Mode            string // empty matches both modes
	Severity        string // info | warning | disruption
	Title           string
	Message         string
	EffectiveFrom   time.Time
	EffectiveTo     *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
