package authoring

import (
	"encoding/json"
	"testing"
)

func TestBaseGamePlayerSeating(t *testing.T) {
	g := NewBaseGame(2)
	if g.MinPlayers() != 2 {
		t.Fatalf("expected min players 2, got %d", g.MinPlayers())
	}

	p1 := g.AddPlayer("alice")
	p2 := g.AddPlayer("bob")

	if p1.ID != 0 || p2.ID != 1 {
		t.Fatalf("expected 0-based sequential ids, got %d, %d", p1.ID, p2.ID)
	}
	if g.NumPlayers() != 2 {
		t.Fatalf("expected 2 players, got %d", g.NumPlayers())
	}
	if g.PlayerByID(1).Name != "bob" {
		t.Fatalf("expected PlayerByID(1) to return bob")
	}
	if g.PlayerByID(5) != nil {
		t.Fatalf("expected PlayerByID for unknown id to return nil")
	}
}

func TestBaseGameActionDispatch(t *testing.T) {
	g := NewBaseGame(2)
	g.RegisterAction("ping", func(player *Player, data json.RawMessage) (interface{}, error) {
		return "pong", nil
	})

	result, err := g.Action("ping", nil, nil)
	if err != nil || result != "pong" {
		t.Fatalf("unexpected dispatch result: %v %v", result, err)
	}

	_, err = g.Action("missing", nil, nil)
	gameErr, ok := err.(*GameError)
	if !ok || gameErr.Code != -50101 {
		t.Fatalf("expected ErrNoSuchAction, got %v", err)
	}
}

func TestBaseGameStateUpdatedFlag(t *testing.T) {
	g := NewBaseGame(2)
	if g.StateUpdated() {
		t.Fatalf("expected state-updated to start false")
	}
	g.NotifyUpdate()
	if !g.StateUpdated() {
		t.Fatalf("expected state-updated to be true after NotifyUpdate")
	}
	g.ResetStateUpdated()
	if g.StateUpdated() {
		t.Fatalf("expected state-updated to be false after reset")
	}
}
