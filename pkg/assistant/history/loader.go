package history

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"
	"ai-travelmate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Loader reads the durable conversation log
type Loader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoader(uowFactory unitofwork.RepositoryFactory) *Loader {
	return &Loader{uowFactory: uowFactory}
}

// LoadRecent returns the last limit turns in chronological order. Zero or
// negative limits get the default; oversized ones are clamped.
func (l *Loader) LoadRecent(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.ConversationTurn, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.ConversationTurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	// Fetched newest first; flip to reading order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
