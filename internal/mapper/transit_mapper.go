package mapper

import (
	"encoding/json"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/model"

	"gorm.io/datatypes"
)

type TransitMapper struct{}

func NewTransitMapper() *TransitMapper {
	return &TransitMapper{}
}

// Station Mappers

func (m *TransitMapper) StationToEntity(s *model.Station) *entity.Station {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Station{
		Id:        s.Id,
		Name:      s.Name,
		City:      s.City,
		Kind:      s.Kind,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TransitMapper) StationToModel(s *entity.Station) *model.Station {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Station{
		Id:        s.Id,
		Name:      s.Name,
		City:      s.City,
		Kind:      s.Kind,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

// Route Mappers

func (m *TransitMapper) RouteToEntity(r *model.TransitRoute) *entity.TransitRoute {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	departures := make([]entity.RouteDeparture, len(r.Departures))
	for i := range r.Departures {
		departures[i] = *m.DepartureToEntity(&r.Departures[i])
	}

	return &entity.TransitRoute{
		Id:                   r.Id,
		Name:                 r.Name,
		Mode:                 r.Mode,
		Operator:             r.Operator,
		OriginStationId:      r.OriginStationId,
		DestinationStationId: r.DestinationStationId,
		OriginCity:           r.OriginCity,
		DestinationCity:      r.DestinationCity,
		Price:                r.Price,
		DurationMinutes:      r.DurationMinutes,
		DistanceKm:           r.DistanceKm,
		Departures:           departures,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *TransitMapper) RouteToModel(r *entity.TransitRoute) *model.TransitRoute {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	departures := make([]model.RouteDeparture, len(r.Departures))
	for i := range r.Departures {
		departures[i] = *m.DepartureToModel(&r.Departures[i])
	}

	return &model.TransitRoute{
		Id:                   r.Id,
		Name:                 r.Name,
		Mode:                 r.Mode,
		Operator:             r.Operator,
		OriginStationId:      r.OriginStationId,
		DestinationStationId: r.DestinationStationId,
		OriginCity:           r.OriginCity,
		DestinationCity:      r.DestinationCity,
		Price:                r.Price,
		DurationMinutes:      r.DurationMinutes,
		DistanceKm:           r.DistanceKm,
		Departures:           departures,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

// Departure Mappers

func (m *TransitMapper) DepartureToEntity(d *model.RouteDeparture) *entity.RouteDeparture {
	if d == nil {
		return nil
	}

	var days []string
	if len(d.Days) > 0 {
		// Unparseable days degrade to daily rather than failing the read.
		_ = json.Unmarshal(d.Days, &days)
	}

	return &entity.RouteDeparture{
		Id:            d.Id,
		RouteId:       d.RouteId,
		DepartureTime: d.DepartureTime,
		ArrivalTime:   d.ArrivalTime,
		Platform:      d.Platform,
		Days:          days,
		CreatedAt:     d.CreatedAt,
	}
}

func (m *TransitMapper) DepartureToModel(d *entity.RouteDeparture) *model.RouteDeparture {
	if d == nil {
		return nil
	}

	var days datatypes.JSON
	if len(d.Days) > 0 {
		raw, _ := json.Marshal(d.Days)
		days = datatypes.JSON(raw)
	}

	return &model.RouteDeparture{
		Id:            d.Id,
		RouteId:       d.RouteId,
		DepartureTime: d.DepartureTime,
		ArrivalTime:   d.ArrivalTime,
		Platform:      d.Platform,
		Days:          days,
		CreatedAt:     d.CreatedAt,
	}
}

// Corridor Stat Mappers

func (m *TransitMapper) CorridorStatToEntity(c *model.CorridorStat) *entity.CorridorStat {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.CorridorStat{
		Id:              c.Id,
		OriginCity:      c.OriginCity,
		DestinationCity: c.DestinationCity,
		Mode:            c.Mode,
		SearchCount:     c.SearchCount,
		LastSearchedAt:  c.LastSearchedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *TransitMapper) CorridorStatToModel(c *entity.CorridorStat) *model.CorridorStat {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.CorridorStat{
		Id:              c.Id,
		OriginCity:      c.OriginCity,
		DestinationCity: c.DestinationCity,
		Mode:            c.Mode,
		SearchCount:     c.SearchCount,
		LastSearchedAt:  c.LastSearchedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
