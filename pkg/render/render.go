// Package render turns structured turn decisions into display text. Every
// message is a deterministic template over the decision payload; the renderer
// holds no state and never errors.
package render

import (
	"fmt"
	"strings"

	"ai-travelmate-be/pkg/assistant/dialog"
	"ai-travelmate-be/pkg/assistant/intent"
	"ai-travelmate-be/pkg/scoring"
	"ai-travelmate-be/pkg/store"
)

const (
	greetingMessage = "Hi! I can help you find buses and trains between cities. " +
		"Tell me where you're headed, like \"bus from Mumbai to Pune tomorrow\"."

	helpMessage = "Here's what I can do:\n" +
		"1. Search routes: \"train from Mumbai to Pune tomorrow morning\"\n" +
		"2. Answer schedule and fare questions once a trip is set\n" +
		"3. Compare the options I've shown: \"compare them\"\n" +
		"4. Pull up one option's full schedule: \"option 2\"\n" +
		"You can add preferences any time, like \"sleeper only\" or \"something cheap\"."

	goodbyeMessage = "Goodbye! I've cleared this conversation. Safe travels."

	thanksMessage = "Happy to help! Anything else you'd like to look up?"

	unknownMessage = "I didn't catch that. Try something like \"bus from Mumbai to Pune tomorrow\", " +
		"or say \"help\" to see what I can do."
)

// Renderer maps decisions to reply text.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Render produces the reply for one decision. Unrecognized kinds fall back
// to the didn't-understand message rather than failing the turn.
func (r *Renderer) Render(d *dialog.Decision) string {
	switch d.Kind {
	case dialog.KindGreeting:
		return greetingMessage
	case dialog.KindHelp:
		return helpMessage
	case dialog.KindGoodbye:
		return goodbyeMessage
	case dialog.KindThanks:
		return thanksMessage
	case dialog.KindMissingSlots:
		return r.missingSlots(d)
	case dialog.KindRouteResults:
		return r.routeResults(d)
	case dialog.KindComparison:
		return r.comparison(d)
	case dialog.KindSelectionDetail:
		return r.selectionDetail(d)
	case dialog.KindSelectionPrompt:
		return r.selectionPrompt(d)
	default:
		return unknownMessage
	}
}

// missingSlots prompts for whichever trip endpoint is still unknown. Turns
// that arrived as a preference or a comparison get a lead-in so the prompt
// doesn't read like a non-sequitur.
func (r *Renderer) missingSlots(d *dialog.Decision) string {
	var b strings.Builder

	switch d.Intent {
	case intent.RoutePreference:
		if ack := preferenceSummary(d.Entities); ack != "" {
			fmt.Fprintf(&b, "Got it, I'll look for %s options. ", ack)
		} else {
			b.WriteString("Noted. ")
		}
	case intent.CompareRoutes:
		b.WriteString("I need a trip before I can compare anything. ")
	}

	missing := make(map[string]bool, len(d.MissingSlots))
	for _, s := range d.MissingSlots {
		missing[s] = true
	}

	switch {
	case missing["origin"] && missing["destination"]:
		b.WriteString("Where are you travelling from, and where to? For example: \"from Mumbai to Pune\".")
	case missing["origin"]:
		fmt.Fprintf(&b, "Where will you be travelling from to reach %s?", d.Entities.Destination)
	case missing["destination"]:
		fmt.Fprintf(&b, "Where would you like to go from %s?", d.Entities.Origin)
	default:
		b.WriteString("Could you tell me a bit more about the trip?")
	}
	return b.String()
}

// preferenceSummary phrases the non-endpoint slots the user has supplied,
// e.g. "sleeper bus" or "premium train".
func preferenceSummary(e store.Entities) string {
	var parts []string
	if e.BudgetPreference == store.BudgetLow {
		parts = append(parts, "budget-friendly")
	}
	if e.BudgetPreference == store.BudgetPremium {
		parts = append(parts, "premium")
	}
	if e.SeatClass != "" {
		parts = append(parts, e.SeatClass)
	}
	if e.Mode != "" && e.Mode != store.ModeAny {
		parts = append(parts, e.Mode)
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) routeResults(d *dialog.Decision) string {
	e := d.Entities
	if len(d.Routes) == 0 {
		return fmt.Sprintf("I couldn't find any %s from %s to %s. Try a different date, or a nearby city.",
			modeNoun(e.Mode), e.Origin, e.Destination)
	}

	var b strings.Builder
	switch d.Intent {
	case intent.PriceQuery:
		fmt.Fprintf(&b, "Here are the fares for %s to %s", e.Origin, e.Destination)
	case intent.ScheduleQuery:
		fmt.Fprintf(&b, "Here are the departures for %s to %s", e.Origin, e.Destination)
	default:
		fmt.Fprintf(&b, "Here's what I found for %s to %s", e.Origin, e.Destination)
	}
	if ds := formatTravelDate(e.Date); ds != "" {
		b.WriteString(", " + ds)
	}
	if ts := formatTimePreference(e.TimePreference); ts != "" {
		b.WriteString(", " + ts)
	}
	b.WriteString(":\n\n")

	for i, rt := range d.Routes {
		fmt.Fprintf(&b, "%d. %s (%s, %s): %s, %s, %d departures/day%s\n",
			i+1, rt.Name, rt.Mode, rt.Operator,
			FormatPrice(rt.Price), FormatDuration(rt.Duration),
			len(rt.Departures), tagSuffix(rt.Tags))
	}

	if lines := recommendationLines(d.Recommendations); len(lines) > 0 {
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
	}

	b.WriteString("\nReply with a number for the full schedule, or say \"compare\".")
	return b.String()
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}

func recommendationLines(recs []scoring.Recommendation) []string {
	var lines []string
	for _, rec := range recs {
		switch rec.Kind {
		case scoring.RecCheapest:
			lines = append(lines, fmt.Sprintf("Cheapest: %s at %s.", rec.Route.Name, FormatPrice(rec.Route.Price)))
		case scoring.RecFastest:
			lines = append(lines, fmt.Sprintf("Fastest: %s, %s end to end.", rec.Route.Name, FormatDuration(rec.Route.Duration)))
		case scoring.RecBestValue:
			lines = append(lines, fmt.Sprintf("Best overall: %s, balancing fare, time and operator.", rec.Route.Name))
		case scoring.RecTimeMatch:
			if rec.Count == 1 {
				lines = append(lines, "1 of these runs around your preferred time.")
			} else {
				lines = append(lines, fmt.Sprintf("%d of these run around your preferred time.", rec.Count))
			}
		}
	}
	return lines
}

// comparison renders the side-by-side table. A single-entry set is explained
// instead of tabulated.
func (r *Renderer) comparison(d *dialog.Decision) string {
	if len(d.Routes) == 1 {
		return fmt.Sprintf("There's only one option on the table (%s), so there's nothing to compare. "+
			"Want me to search again with different preferences?", d.Routes[0].Name)
	}

	var b strings.Builder
	b.WriteString("Side by side:\n\n")
	fmt.Fprintf(&b, "%-3s %-25s %-6s %-7s %-9s %s\n", "#", "Route", "Mode", "Fare", "Duration", "Departures")
	for i, rt := range d.Routes {
		fmt.Fprintf(&b, "%-3d %-25.25s %-6s %-7s %-9s %d\n",
			i+1, rt.Name, rt.Mode, formatFare(rt.Price), FormatDuration(rt.Duration), len(rt.Departures))
	}
	b.WriteString("\nFares are in rupees. Reply with a number to pick one.")
	return b.String()
}

func (r *Renderer) selectionDetail(d *dialog.Decision) string {
	s := d.Selected
	if s == nil {
		return unknownMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)
	fmt.Fprintf(&b, "Route: %s to %s (%s)\n", s.Origin, s.Destination, s.Mode)
	fmt.Fprintf(&b, "Operator: %s\n", s.Operator)
	fmt.Fprintf(&b, "Fare: %s\n", FormatPrice(s.Price))
	fmt.Fprintf(&b, "Duration: %s\n", FormatDuration(s.Duration))
	if s.Distance > 0 {
		fmt.Fprintf(&b, "Distance: %g km\n", s.Distance)
	}
	if len(s.Departures) > 0 {
		b.WriteString("Departures:\n")
		for _, dep := range s.Departures {
			fmt.Fprintf(&b, "  %s to %s", dep.Time, dep.Arrival)
			if dep.Platform != "" {
				fmt.Fprintf(&b, " (platform %s)", dep.Platform)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\nI can compare the options again or start a new search whenever you like.")
	return b.String()
}

func (r *Renderer) selectionPrompt(d *dialog.Decision) string {
	if d.RangeMax == 0 {
		return "There are no routes on the table yet. Search first, like \"bus from Mumbai to Pune\"."
	}
	return fmt.Sprintf("That option isn't available. Please choose a number between 1 and %d.", d.RangeMax)
}
