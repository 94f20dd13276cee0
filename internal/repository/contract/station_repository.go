package contract

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"
)

type StationRepository interface {
	Create(ctx context.Context, station *entity.Station) error
	Update(ctx context.Context, station *entity.Station) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Station, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Station, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	ListCities(ctx context.Context) ([]string, error)
}
