// Package dialog owns the per-session state machine: it merges each turn's
// entities into the session, classifies the intent, dispatches to the
// matching handler and hands back a structured decision. Sessions move
// between idle, collecting_info and showing_results; confirming is reserved
// and nothing transitions into it.
package dialog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"ai-travelmate-be/pkg/assistant/extractor"
	"ai-travelmate-be/pkg/assistant/intent"
	"ai-travelmate-be/pkg/scoring"
	"ai-travelmate-be/pkg/store"
)

type Orchestrator struct {
	extractor *extractor.Extractor
	lookup    RouteLookup
}

func NewOrchestrator(x *extractor.Extractor, lookup RouteLookup) *Orchestrator {
	return &Orchestrator{extractor: x, lookup: lookup}
}

// HandleTurn processes one user message against the session. The session is
// mutated in place: merged entities, phase, lastIntent, turnCount, lastRoutes
// and the user turn in history. Callers work on a clone and persist it only
// when this returns without error, so a lookup failure commits nothing.
// The assistant turn is appended by the caller once the decision is rendered.
//
// Messages for one session must not be processed concurrently; the caller
// serializes them.
func (o *Orchestrator) HandleTurn(ctx context.Context, sess *store.Session, text string) (*Decision, error) {
	sess.Entities = o.extractor.Extract(text, sess.Entities)
	it, conf := intent.Classify(text, sess.Entities)

	d, err := o.dispatch(ctx, sess, it, text)
	if err != nil {
		return nil, err
	}

	d.Intent = it
	d.Confidence = conf
	d.Entities = sess.Entities

	sess.LastIntent = string(it)
	sess.TurnCount++
	sess.AppendTurn(store.RoleUser, text)
	return d, nil
}

// dispatch is the closed intent switch. Every intent label has a case;
// adding one without a handler is a compile-visible hole here, not a silent
// fallthrough.
func (o *Orchestrator) dispatch(ctx context.Context, sess *store.Session, it intent.Intent, text string) (*Decision, error) {
	switch it {
	case intent.Greeting:
		sess.Phase = store.PhaseIdle
		return &Decision{Kind: KindGreeting}, nil
	case intent.Help:
		return &Decision{Kind: KindHelp}, nil
	case intent.Goodbye:
		return &Decision{Kind: KindGoodbye}, nil
	case intent.Thanks:
		return &Decision{Kind: KindThanks}, nil
	case intent.TravelSearch, intent.ScheduleQuery, intent.PriceQuery:
		return o.travelQuery(ctx, sess)
	case intent.CompareRoutes:
		return o.compareRoutes(ctx, sess)
	case intent.RoutePreference:
		return o.routePreference(ctx, sess)
	case intent.SelectRoute:
		return o.selectRoute(sess, text), nil
	case intent.Unknown:
		return o.unmatched(ctx, sess)
	default:
		return o.unmatched(ctx, sess)
	}
}

// travelQuery is the shared slot-filling handler behind travel_search,
// schedule_query, price_query and the silent fallbacks. Origin and
// destination are the required slots, checked in that order.
func (o *Orchestrator) travelQuery(ctx context.Context, sess *store.Session) (*Decision, error) {
	if missing := MissingSlots(sess.Entities); len(missing) > 0 {
		sess.Phase = store.PhaseCollectingInfo
		return &Decision{Kind: KindMissingSlots, MissingSlots: missing}, nil
	}

	routes, err := o.lookup.Lookup(ctx, queryFrom(sess.Entities))
	if err != nil {
		return nil, fmt.Errorf("route lookup %s to %s: %w", sess.Entities.Origin, sess.Entities.Destination, err)
	}

	scored := scoring.Score(routes, sess.Entities)
	sess.Phase = store.PhaseShowingResults
	sess.LastRoutes = scored

	return &Decision{
		Kind:            KindRouteResults,
		Routes:          scored,
		Recommendations: scoring.Recommend(scored, sess.Entities),
	}, nil
}

func (o *Orchestrator) compareRoutes(ctx context.Context, sess *store.Session) (*Decision, error) {
	if len(sess.LastRoutes) >= 1 {
		return &Decision{Kind: KindComparison, Routes: sess.LastRoutes}, nil
	}
	if sess.Entities.Origin != "" && sess.Entities.Destination != "" {
		return o.travelQuery(ctx, sess)
	}
	// Nothing to compare and no trip yet: ask for the trip first.
	sess.Phase = store.PhaseCollectingInfo
	return &Decision{Kind: KindMissingSlots, MissingSlots: MissingSlots(sess.Entities)}, nil
}

func (o *Orchestrator) routePreference(ctx context.Context, sess *store.Session) (*Decision, error) {
	if sess.Entities.Origin != "" && sess.Entities.Destination != "" {
		// The merged preference re-ranks through a fresh lookup.
		return o.travelQuery(ctx, sess)
	}
	// Acknowledge what was supplied and prompt for the trip endpoints; the
	// renderer phrases the acknowledgment off the intent.
	sess.Phase = store.PhaseCollectingInfo
	return &Decision{Kind: KindMissingSlots, MissingSlots: MissingSlots(sess.Entities)}, nil
}

var integerRe = regexp.MustCompile(`\d+`)

// selectRoute resolves "option 2" style picks against lastRoutes. Bad picks
// are conversational re-prompts, never errors.
func (o *Orchestrator) selectRoute(sess *store.Session, text string) *Decision {
	if len(sess.LastRoutes) == 0 {
		return &Decision{Kind: KindSelectionPrompt, RangeMax: 0}
	}

	lit := integerRe.FindString(text)
	if lit == "" {
		return &Decision{Kind: KindSelectionPrompt, RangeMax: len(sess.LastRoutes)}
	}
	n, err := strconv.Atoi(lit)
	if err != nil || n < 1 || n > len(sess.LastRoutes) {
		return &Decision{Kind: KindSelectionPrompt, RangeMax: len(sess.LastRoutes)}
	}

	picked := sess.LastRoutes[n-1]
	return &Decision{Kind: KindSelectionDetail, Selected: &picked, SelectedIndex: n}
}

// unmatched: with both endpoints known the turn silently becomes a travel
// search; otherwise it is the didn't-understand fallback.
func (o *Orchestrator) unmatched(ctx context.Context, sess *store.Session) (*Decision, error) {
	if sess.Entities.Origin != "" && sess.Entities.Destination != "" {
		return o.travelQuery(ctx, sess)
	}
	return &Decision{Kind: KindUnknown}, nil
}

// MissingSlots lists the required slots not yet known, in check order.
func MissingSlots(e store.Entities) []string {
	var missing []string
	if e.Origin == "" {
		missing = append(missing, "origin")
	}
	if e.Destination == "" {
		missing = append(missing, "destination")
	}
	return missing
}
