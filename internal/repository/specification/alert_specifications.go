package specification

import (
	"time"

	"gorm.io/gorm"
)

// ActiveAt keeps alerts whose effective window covers the given instant.
// A NULL effective_to means the alert stays up until someone closes it.
type ActiveAt struct {
	At time.Time
}

func (s ActiveAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)", s.At, s.At)
}

// MatchesCorridor keeps alerts that apply to the given corridor. Alert rows
// with an empty origin, destination or mode act as wildcards; query fields
// left empty add no constraint.
type MatchesCorridor struct {
	OriginCity      string
	DestinationCity string
	Mode            string
}

func (s MatchesCorridor) Apply(db *gorm.DB) *gorm.DB {
	if s.OriginCity != "" {
		db = db.Where("origin_city = '' OR origin_city ILIKE ?", s.OriginCity)
	}
	if s.DestinationCity != "" {
		db = db.Where("destination_city = '' OR destination_city ILIKE ?", s.DestinationCity)
	}
	if s.Mode != "" {
		db = db.Where("mode = '' OR mode = ?", s.Mode)
	}
	return db
}

type BySeverity struct {
	Severity string
}

func (s BySeverity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("severity = ?", s.Severity)
}
