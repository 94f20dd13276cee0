package service

import (
	"context"
	"strings"
	"time"

	"ai-travelmate-be/internal/dto"
	"ai-travelmate-be/internal/repository/specification"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/store"
)

const popularCorridorLimit = 10

// ICatalogService serves the read-only catalog endpoints.
type ICatalogService interface {
	ListCities(ctx context.Context, query string) ([]string, error)
	ListStations(ctx context.Context, city string) ([]*dto.StationResponse, error)
	ListRoutes(ctx context.Context, origin, destination, mode string) ([]*dto.CatalogRouteResponse, error)
	PopularCorridors(ctx context.Context) ([]*dto.PopularCorridorResponse, error)
	ListActiveAlerts(ctx context.Context, origin, destination, mode string) ([]*dto.AlertResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{uowFactory: uowFactory}
}

// ListCities returns the catalog's cities, optionally narrowed by a
// substring. The set is small; filtering in process beats a second query
// shape on the repository.
func (s *catalogService) ListCities(ctx context.Context, query string) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cities, err := uow.StationRepository().ListCities(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return cities, nil
	}

	q := strings.ToLower(query)
	filtered := make([]string, 0, len(cities))
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *catalogService) ListStations(ctx context.Context, city string) ([]*dto.StationResponse, error) {
	var specs []specification.Specification
	if city != "" {
		specs = append(specs, specification.ByCity{City: city})
	}
	specs = append(specs, specification.OrderBy{Field: "name"})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stations, err := uow.StationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.StationResponse, 0, len(stations))
	for _, st := range stations {
		response = append(response, &dto.StationResponse{
			Id:   st.Id,
			Name: st.Name,
			City: st.City,
			Kind: st.Kind,
		})
	}
	return response, nil
}

func (s *catalogService) ListRoutes(ctx context.Context, origin, destination, mode string) ([]*dto.CatalogRouteResponse, error) {
	var specs []specification.Specification
	if origin != "" {
		specs = append(specs, specification.ByOriginCity{City: origin})
	}
	if destination != "" {
		specs = append(specs, specification.ByDestinationCity{City: destination})
	}
	if mode != "" && mode != store.ModeAny {
		specs = append(specs, specification.ByMode{Mode: mode})
	}
	specs = append(specs, specification.OrderBy{Field: "name"})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	routes, err := uow.TransitRouteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CatalogRouteResponse, 0, len(routes))
	for _, r := range routes {
		item := &dto.CatalogRouteResponse{
			Id:              r.Id,
			Name:            r.Name,
			Mode:            r.Mode,
			Operator:        r.Operator,
			OriginCity:      r.OriginCity,
			DestinationCity: r.DestinationCity,
			Price:           r.Price,
			DurationMin:     r.DurationMinutes,
			DistanceKm:      r.DistanceKm,
		}
		for _, d := range r.Departures {
			item.Departures = append(item.Departures, dto.DepartureDTO{
				Time:     d.DepartureTime,
				Arrival:  d.ArrivalTime,
				Platform: d.Platform,
			})
		}
		response = append(response, item)
	}
	return response, nil
}

func (s *catalogService) PopularCorridors(ctx context.Context) ([]*dto.PopularCorridorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.CorridorStatRepository().FindAll(ctx,
		specification.OrderBy{Field: "search_count", Desc: true},
		specification.Pagination{Limit: popularCorridorLimit},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PopularCorridorResponse, 0, len(stats))
	for _, st := range stats {
		response = append(response, &dto.PopularCorridorResponse{
			OriginCity:      st.OriginCity,
			DestinationCity: st.DestinationCity,
			Mode:            st.Mode,
			SearchCount:     st.SearchCount,
			LastSearchedAt:  st.LastSearchedAt,
		})
	}
	return response, nil
}

// ListActiveAlerts returns the alerts in effect right now, narrowed to a
// corridor when one is supplied.
func (s *catalogService) ListActiveAlerts(ctx context.Context, origin, destination, mode string) ([]*dto.AlertResponse, error) {
	specs := []specification.Specification{
		specification.ActiveAt{At: time.Now()},
		specification.MatchesCorridor{
			OriginCity:      origin,
			DestinationCity: destination,
			Mode:            mode,
		},
		specification.OrderBy{Field: "effective_from", Desc: true},
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	alerts, err := uow.ServiceAlertRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		response = append(response, &dto.AlertResponse{
			Id:              a.Id,
			OriginCity:      a.OriginCity,
			DestinationCity: a.DestinationCity,
			Mode:            a.Mode,
			Severity:        a.Severity,
			Title:           a.Title,
			Message:         a.Message,
			EffectiveFrom:   a.EffectiveFrom,
			EffectiveTo:     a.EffectiveTo,
		})
	}
	return response, nil
}
