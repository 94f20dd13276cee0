package store

import (
	"fmt"
	"testing"
)

func TestAppendTurnEvictsOldestAtCap(t *testing.T) {
	s := NewSession("s1")

	for i := 0; i < HistoryCap+5; i++ {
		s.AppendTurn(RoleUser, fmt.Sprintf("msg-%d", i))
	}

	if len(s.History) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(s.History), HistoryCap)
	}
	if got := s.History[0].Content; got != "msg-5" {
		t.Errorf("oldest surviving turn = %q, want %q", got, "msg-5")
	}
	if got := s.History[len(s.History)-1].Content; got != fmt.Sprintf("msg-%d", HistoryCap+4) {
		t.Errorf("newest turn = %q, want %q", got, fmt.Sprintf("msg-%d", HistoryCap+4))
	}
}

func TestCloneIsolatesMutations(t *testing.T) {
	s := NewSession("s1")
	s.Entities.Origin = "Mumbai"
	s.Entities.Date = &TravelDate{Phrase: "tomorrow"}
	s.AppendTurn(RoleUser, "hello")
	s.LastRoutes = []Route{{ID: "r1", Tags: []string{"cheapest"}, Departures: []Departure{{Time: "06:00"}}}}

	cp := s.Clone()
	cp.Entities.Origin = "Pune"
	cp.Entities.Date.Phrase = "today"
	cp.AppendTurn(RoleAssistant, "hi")
	cp.LastRoutes[0].Tags[0] = "fastest"
	cp.LastRoutes[0].Departures[0].Time = "09:00"

	if s.Entities.Origin != "Mumbai" {
		t.Errorf("origin mutated through clone: %q", s.Entities.Origin)
	}
	if s.Entities.Date.Phrase != "tomorrow" {
		t.Errorf("date mutated through clone: %q", s.Entities.Date.Phrase)
	}
	if len(s.History) != 1 {
		t.Errorf("history mutated through clone: %d turns", len(s.History))
	}
	if s.LastRoutes[0].Tags[0] != "cheapest" {
		t.Errorf("route tags mutated through clone: %q", s.LastRoutes[0].Tags[0])
	}
	if s.LastRoutes[0].Departures[0].Time != "06:00" {
		t.Errorf("departures mutated through clone: %q", s.LastRoutes[0].Departures[0].Time)
	}
}
