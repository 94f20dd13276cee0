package main

import (
	"context"
	"fmt"
	"time"

	"ai-travelmate-be/pkg/assistant/dialog"
	"ai-travelmate-be/pkg/assistant/extractor"
	"ai-travelmate-be/pkg/render"
	"ai-travelmate-be/pkg/store"
)

// fixtureLookup serves a static corridor so the whole dialogue pipeline runs
// with no server, database or cache behind it.
type fixtureLookup struct{}

func (fixtureLookup) Lookup(_ context.Context, q dialog.LookupQuery) ([]store.Route, error) {
	if q.Origin != "Mumbai" || q.Destination != "Pune" {
		return nil, nil
	}
	routes := []store.Route{
		{
			ID: "sim-1", Name: "Deccan Express", Origin: "Mumbai", Destination: "Pune",
			Mode: "train", Operator: "Central Railway", Price: 145, Duration: 195, Distance: 192,
			Departures: []store.Departure{
				{Time: "07:00", Arrival: "10:15", Platform: "5"},
				{Time: "15:10", Arrival: "18:25", Platform: "7"},
			},
		},
		{
			ID: "sim-2", Name: "Shivneri Volvo", Origin: "Mumbai", Destination: "Pune",
			Mode: "bus", Operator: "MSRTC", Price: 420, Duration: 210, Distance: 148,
			Departures: []store.Departure{
				{Time: "06:30", Arrival: "10:00"},
				{Time: "09:00", Arrival: "12:30"},
			},
		},
		{
			ID: "sim-3", Name: "Deccan Queen", Origin: "Mumbai", Destination: "Pune",
			Mode: "train", Operator: "Central Railway", Price: 170, Duration: 185, Distance: 192,
			Departures: []store.Departure{
				{Time: "17:10", Arrival: "20:15", Platform: "8"},
			},
		},
	}
	if q.Mode != "" && q.Mode != store.ModeAny {
		filtered := routes[:0]
		for _, r := range routes {
			if r.Mode == q.Mode {
				filtered = append(filtered, r)
			}
		}
		routes = filtered
	}
	return routes, nil
}

func main() {
	fmt.Println("=== Travel Assistant Offline Simulation ===")
	fmt.Println("No server, DB or NATS required. Fixture corridor: Mumbai-Pune.")

	orch := dialog.NewOrchestrator(extractor.New(), fixtureLookup{})
	renderer := render.New()
	sess := store.NewSession("simulation")

	script := []string{
		"hello!",
		"what can you do?",
		"I want to go from mumbai to pune",
		"tomorrow morning, by train please",
		"which is the cheapest?",
		"tell me more about option 2",
		"thanks",
		"bye",
	}

	for _, text := range script {
		fmt.Printf("\nUSER: %s\n", text)

		start := time.Now()
		decision, err := orch.HandleTurn(context.Background(), sess, text)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		reply := renderer.Render(decision)
		sess.AppendTurn(store.RoleAssistant, reply)

		fmt.Printf("ASSISTANT (%v): %s\n", elapsed, reply)
		fmt.Printf("  [kind=%s intent=%s confidence=%.2f phase=%s routes=%d]\n",
			decision.Kind, decision.Intent, decision.Confidence, sess.Phase, len(decision.Routes))
	}

	fmt.Printf("\nFinal session: %d turns, entities %+v\n", sess.TurnCount, sess.Entities)
}
