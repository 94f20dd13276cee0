package mapper

import (
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/model"

	"gorm.io/gorm"
)

type AlertMapper struct{}

func NewAlertMapper() *AlertMapper {
	return &AlertMapper{}
}

func (m *AlertMapper) AlertToEntity(a *model.ServiceAlert) *entity.ServiceAlert {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.ServiceAlert{
		Id:              a.Id,
		OriginCity:      a.OriginCity,
		DestinationCity: a.DestinationCity,
		Mode:            a.Mode,
		Severity:        a.Severity,
		Title:           a.Title,
		Message:         a.Message,
		EffectiveFrom:   a.EffectiveFrom,
		EffectiveTo:     a.EffectiveTo,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       a.DeletedAt.Valid,
	}
}

func (m *AlertMapper) AlertToModel(a *entity.ServiceAlert) *model.ServiceAlert {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.ServiceAlert{
		Id:              a.Id,
		OriginCity:      a.OriginCity,
		DestinationCity: a.DestinationCity,
		Mode:            a.Mode,
		Severity:        a.Severity,
		Title:           a.Title,
		Message:         a.Message,
		EffectiveFrom:   a.EffectiveFrom,
		EffectiveTo:     a.EffectiveTo,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}
