package contract

import (
	"context"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"
)

type CorridorStatRepository interface {
	// IncrementSearch bumps the counter for one corridor, creating the row on
	// first sight. Mode is stored as searched, including "any".
	IncrementSearch(ctx context.Context, originCity, destinationCity, mode string, at time.Time) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CorridorStat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
