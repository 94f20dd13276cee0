package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConversationTurn struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID      `gorm:"type:uuid;not null;index:idx_turns_session_created,priority:1"`
	Role       string         `gorm:"type:varchar(20);not null"`
	Content    string         `gorm:"type:text;not null"`
	Intent     string         `gorm:"type:varchar(30)"`
	Confidence float64        `gorm:"type:numeric(4,3)"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_turns_session_created,priority:2"`
}

func (ConversationTurn) TableName() string {
	return "conversation_turns"
}
