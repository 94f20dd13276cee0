package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type ChatResponse struct {
	SessionId    uuid.UUID   `json:"session_id"`
	Reply        string      `json:"reply"`
	Kind         string      `json:"kind"`
	Intent       string      `json:"intent"`
	Confidence   float64     `json:"confidence"`
	Phase        string      `json:"phase"`
	TurnCount    int         `json:"turn_count"`
	Entities     EntitiesDTO `json:"entities"`
	MissingSlots []string    `json:"missing_slots,omitempty"`
	Routes       []RouteDTO  `json:"routes,omitempty"`
}

// EntitiesDTO is the wire shape of the collected slots. Date flattens to an
// ISO day plus the phrase that produced it; the time preference flattens to
// its display label.
type EntitiesDTO struct {
	Origin           string `json:"origin,omitempty"`
	Destination      string `json:"destination,omitempty"`
	Mode             string `json:"mode,omitempty"`
	Date             string `json:"date,omitempty"` // "2006-01-02"
	DatePhrase       string `json:"date_phrase,omitempty"`
	TimePreference   string `json:"time_preference,omitempty"`
	SeatClass        string `json:"seat_class,omitempty"`
	BudgetPreference string `json:"budget_preference,omitempty"`
}

type RouteDTO struct {
	Id          string         `json:"id"`
	Name        string         `json:"name"`
	Mode        string         `json:"mode"`
	Operator    string         `json:"operator"`
	Price       float64        `json:"price"`
	DurationMin int            `json:"duration_min"`
	DistanceKm  float64        `json:"distance_km"`
	Score       float64        `json:"score"`
	Tags        []string       `json:"tags,omitempty"`
	Departures  []DepartureDTO `json:"departures"`
}

type DepartureDTO struct {
	Time     string `json:"time"`
	Arrival  string `json:"arrival"`
	Platform string `json:"platform,omitempty"`
}

type SessionStateResponse struct {
	Id           uuid.UUID   `json:"id"`
	Phase        string      `json:"phase"`
	TurnCount    int         `json:"turn_count"`
	LastIntent   string      `json:"last_intent"`
	Entities     EntitiesDTO `json:"entities"`
	MissingSlots []string    `json:"missing_slots"`
	CreatedAt    time.Time   `json:"created_at"`
}

type HistoryTurnResponse struct {
	Id         uuid.UUID              `json:"id"`
	Role       string                 `json:"role"`
	Content    string                 `json:"content"`
	Intent     string                 `json:"intent,omitempty"`
	Confidence float64                `json:"confidence,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// SearchPerformedMessage is the analytics payload published after every
// successful route lookup and folded into corridor stats by the consumer.
type SearchPerformedMessage struct {
	SessionId   uuid.UUID `json:"session_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Mode        string    `json:"mode"`
	ResultCount int       `json:"result_count"`
	At          time.Time `json:"at"`
}
