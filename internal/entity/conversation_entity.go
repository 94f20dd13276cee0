package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationTurn is one row of the durable conversation log. The in-memory
// session keeps a bounded window; this log keeps everything.
type ConversationTurn struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Role       string
	Content    string
	Intent     string
	Confidence float64
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}
