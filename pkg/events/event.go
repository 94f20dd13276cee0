package events

import "time"

// Event type codes carried on the bus. The NATS subject for a code is
// "events.<code>"; durable consumers filter on the subject.
const (
	TypeTurnRecorded  = "TURN_RECORDED"
	TypeRouteSearched = "ROUTE_SEARCHED"
	TypeSessionClosed = "SESSION_CLOSED"
	TypeServiceAlert  = "SERVICE_ALERT"
)

// Event is one fact emitted by the assistant pipeline.
type Event interface {
	// EventType returns the code for this event (e.g. "ROUTE_SEARCHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation services construct inline.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
