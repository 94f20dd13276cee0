package contract

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TransitRouteRepository interface {
	Create(ctx context.Context, route *entity.TransitRoute) error
	Update(ctx context.Context, route *entity.TransitRoute) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TransitRoute, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TransitRoute, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
