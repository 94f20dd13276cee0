package store

import "time"

// TravelDate is a resolved calendar date plus the phrase that produced it.
type TravelDate struct {
	Date   time.Time `json:"date"`
	Phrase string    `json:"phrase"` // "tomorrow", "15 march", ...
}

// TimePreference is either a labeled clock window or a single anchor time.
type TimePreference struct {
	Kind  string `json:"kind"`  // "window" | "anchor"
	Label string `json:"label"` // "morning", "after 6 pm", ...

	// Window bounds, half-open [Start, End) in 24h clock. Window kind only.
	Start int `json:"start_hour,omitempty"`
	End   int `json:"end_hour,omitempty"`

	// Anchor clock time. Anchor kind only.
	Hour     int    `json:"hour,omitempty"`
	Minute   int    `json:"minute,omitempty"`
	Relation string `json:"relation,omitempty"` // "at" | "around" | "by" | "before" | "after"
}

// Entities is the accumulated slot set for a session. A field is present
// only when a source pattern or prior context supplied it; empty means
// unknown, never "explicitly none".
type Entities struct {
	Origin           string          `json:"origin,omitempty"`
	Destination      string          `json:"destination,omitempty"`
	Mode             string          `json:"mode,omitempty"` // "bus" | "train" | "any"
	Date             *TravelDate     `json:"date,omitempty"`
	TimePreference   *TimePreference `json:"time_preference,omitempty"`
	SeatClass        string          `json:"seat_class,omitempty"`
	BudgetPreference string          `json:"budget_preference,omitempty"` // "budget" | "premium" | "balanced"
}

// HasLocation reports whether at least one endpoint of the trip is known.
func (e Entities) HasLocation() bool {
	return e.Origin != "" || e.Destination != ""
}

// Departure is one scheduled run of a route.
type Departure struct {
	Time     string `json:"time"` // "06:30", 24h clock
	Arrival  string `json:"arrival"`
	Platform string `json:"platform,omitempty"`
}

// Route is a candidate transport offering returned by the lookup
// collaborator. Score and Tags are filled in by the scorer.
type Route struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Mode        string      `json:"mode"`
	Operator    string      `json:"operator"`
	Price       float64     `json:"price"`        // rupees
	Duration    int         `json:"duration_min"` // minutes end to end
	Distance    float64     `json:"distance_km"`
	Departures  []Departure `json:"departures"`

	Score float64  `json:"score"`
	Tags  []string `json:"tags,omitempty"`
}

// Turn is one role-tagged message of the conversation.
type Turn struct {
	Role    string    `json:"role"` // "user" | "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Session is the active conversation state held in memory per session id.
type Session struct {
	ID         string    `json:"id"`
	Entities   Entities  `json:"entities"`
	LastIntent string    `json:"last_intent"`
	TurnCount  int       `json:"turn_count"`
	History    []Turn    `json:"history"` // bounded, oldest evicted first
	LastRoutes []Route   `json:"last_routes"`
	Phase      string    `json:"phase"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	PhaseIdle           = "idle"
	PhaseCollectingInfo = "collecting_info"
	PhaseShowingResults = "showing_results"
	// PhaseConfirming is reserved; no transition enters it today.
	PhaseConfirming = "confirming"

	ModeBus   = "bus"
	ModeTrain = "train"
	ModeAny   = "any"

	BudgetLow      = "budget"
	BudgetPremium  = "premium"
	BudgetBalanced = "balanced"

	TimeKindWindow = "window"
	TimeKindAnchor = "anchor"

	RoleUser      = "user"
	RoleAssistant = "assistant"

	// HistoryCap bounds the in-session history; the durable log is unbounded.
	HistoryCap = 20
)

// NewSession returns a fresh idle session for the given id.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Phase:     PhaseIdle,
		History:   make([]Turn, 0, HistoryCap),
		CreatedAt: time.Now(),
	}
}

// AppendTurn records a turn in the bounded history, evicting the oldest
// entry once the cap is reached.
func (s *Session) AppendTurn(role, content string) {
	if len(s.History) >= HistoryCap {
		s.History = s.History[1:]
	}
	s.History = append(s.History, Turn{Role: role, Content: content, At: time.Now()})
}

// Clone deep-copies the session so a turn can be computed without touching
// the stored state until it fully succeeds.
func (s *Session) Clone() *Session {
	cp := *s

	cp.History = make([]Turn, len(s.History), cap(s.History))
	copy(cp.History, s.History)

	cp.LastRoutes = make([]Route, len(s.LastRoutes))
	copy(cp.LastRoutes, s.LastRoutes)
	for i := range cp.LastRoutes {
		r := &cp.LastRoutes[i]
		r.Departures = append([]Departure(nil), r.Departures...)
		r.Tags = append([]string(nil), r.Tags...)
	}

	if s.Entities.Date != nil {
		d := *s.Entities.Date
		cp.Entities.Date = &d
	}
	if s.Entities.TimePreference != nil {
		t := *s.Entities.TimePreference
		cp.Entities.TimePreference = &t
	}
	return &cp
}
