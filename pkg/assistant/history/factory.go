// Package history is the durable conversation log: factories for the rows
// and a loader for the history endpoint. The in-memory session keeps a
// bounded window; this log keeps everything until the session is cleared.
package history

import (
	"context"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/unitofwork"
	"ai-travelmate-be/pkg/store"

	"github.com/google/uuid"
)

// Factory builds log rows from turn outcomes
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// CreateUserTurn records what the traveller said plus how it was read.
func (f *Factory) CreateUserTurn(sessionId uuid.UUID, content, intentLabel string, confidence float64, now time.Time) entity.ConversationTurn {
	return entity.ConversationTurn{
		Id:         uuid.New(),
		SessionId:  sessionId,
		Role:       store.RoleUser,
		Content:    content,
		Intent:     intentLabel,
		Confidence: confidence,
		CreatedAt:  now,
	}
}

// CreateAssistantTurn records the rendered reply. Metadata carries the
// decision kind and result counts. The one second offset keeps the pair
// ordered under a created_at sort.
func (f *Factory) CreateAssistantTurn(sessionId uuid.UUID, content string, metadata map[string]interface{}, now time.Time) entity.ConversationTurn {
	return entity.ConversationTurn{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      store.RoleAssistant,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: now.Add(1 * time.Second),
	}
}

// SaveTurn persists one row through the unit of work.
func (f *Factory) SaveTurn(ctx context.Context, uow unitofwork.UnitOfWork, turn entity.ConversationTurn) error {
	return uow.ConversationTurnRepository().Create(ctx, &turn)
}
