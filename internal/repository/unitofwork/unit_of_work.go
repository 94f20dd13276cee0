package unitofwork

import (
	"context"

	"ai-travelmate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StationRepository() contract.StationRepository
	TransitRouteRepository() contract.TransitRouteRepository
	ConversationTurnRepository() contract.ConversationTurnRepository
	CorridorStatRepository() contract.CorridorStatRepository
	ServiceAlertRepository() contract.ServiceAlertRepository
}
