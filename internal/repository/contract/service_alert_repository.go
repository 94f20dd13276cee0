package contract

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ServiceAlertRepository interface {
	Create(ctx context.Context, alert *entity.ServiceAlert) error
	Update(ctx context.Context, alert *entity.ServiceAlert) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceAlert, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceAlert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
