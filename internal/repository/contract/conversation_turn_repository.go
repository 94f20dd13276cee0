package contract

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationTurnRepository interface {
	Create(ctx context.Context, turn *entity.ConversationTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error // Hard delete, session close wipes the log
}
