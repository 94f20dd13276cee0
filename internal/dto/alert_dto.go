package dto

import (
	"time"

	"github.com/google/uuid"
)

type AlertResponse struct {
	Id              uuid.UUID  `json:"id"`
	OriginCity      string     `json:"origin_city,omitempty"` // empty means any corridor
	DestinationCity string     `json:"destination_city,omitempty"`
	Mode            string     `json:"mode,omitempty"` // empty means both modes
	Severity        string     `json:"severity"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	EffectiveFrom   time.Time  `json:"effective_from"`
	EffectiveTo     *time.Time `json:"effective_to,omitempty"`
}

// AlertPushMessage is one WebSocket frame sent to a connected session.
type AlertPushMessage struct {
	Type      string         `json:"type"`
	Alert     *AlertResponse `json:"alert,omitempty"`
	SessionId string         `json:"session_id,omitempty"`
}
