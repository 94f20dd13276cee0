package dialog

import (
	"context"

	"ai-travelmate-be/pkg/assistant/intent"
	"ai-travelmate-be/pkg/scoring"
	"ai-travelmate-be/pkg/store"
)

// Kind tags the structured outcome of one turn. The renderer maps each kind
// plus its payload to display text; nothing here is user-facing prose.
type Kind string

const (
	KindGreeting        Kind = "greeting"
	KindHelp            Kind = "help"
	KindGoodbye         Kind = "goodbye"
	KindThanks          Kind = "thanks"
	KindMissingSlots    Kind = "missing_slots"
	KindRouteResults    Kind = "route_results"
	KindComparison      Kind = "comparison"
	KindSelectionDetail Kind = "selection_detail"
	KindSelectionPrompt Kind = "selection_prompt"
	KindUnknown         Kind = "unknown"
)

// Decision is what a processed turn resolves to. Kind says which payload
// fields are meaningful.
type Decision struct {
	Kind       Kind          `json:"kind"`
	Intent     intent.Intent `json:"intent"`
	Confidence float64       `json:"confidence"`

	// Snapshot of the merged slots after this turn.
	Entities store.Entities `json:"entities"`

	// missing_slots: the required slots still unknown, in check order.
	MissingSlots []string `json:"missing_slots,omitempty"`

	// route_results and comparison.
	Routes          []store.Route            `json:"routes,omitempty"`
	Recommendations []scoring.Recommendation `json:"recommendations,omitempty"`

	// selection_detail.
	Selected      *store.Route `json:"selected,omitempty"`
	SelectedIndex int          `json:"selected_index,omitempty"` // 1-based

	// selection_prompt: the valid range is 1..RangeMax; zero means there is
	// nothing to select from.
	RangeMax int `json:"range_max,omitempty"`
}

// LookupQuery is the slot set handed to the route-lookup collaborator.
type LookupQuery struct {
	Origin           string
	Destination      string
	Mode             string
	Date             *store.TravelDate
	TimePreference   *store.TimePreference
	BudgetPreference string
}

// RouteLookup is the external transport catalog. Implementations return
// geographically filtered candidates with schedules attached and day/time
// filtering already applied.
type RouteLookup interface {
	Lookup(ctx context.Context, q LookupQuery) ([]store.Route, error)
}

func queryFrom(e store.Entities) LookupQuery {
	return LookupQuery{
		Origin:           e.Origin,
		Destination:      e.Destination,
		Mode:             e.Mode,
		Date:             e.Date,
		TimePreference:   e.TimePreference,
		BudgetPreference: e.BudgetPreference,
	}
}
