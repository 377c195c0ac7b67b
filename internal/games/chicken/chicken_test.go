package chicken

import (
	"encoding/json"
	"testing"

	"github.com/chimeramatch/server/internal/authoring"
)

func newStartedGame(t *testing.T) (*Game, *authoring.Player, *authoring.Player) {
	t.Helper()
	g := New(nil).(*Game)
	p1 := g.AddPlayer("alice")
	p2 := g.AddPlayer("bob")
	g.OnStart()
	return g, p1, p2
}

func move(t *testing.T, g *Game, player *authoring.Player, swerve bool) error {
	t.Helper()
	data, _ := json.Marshal(map[string]bool{"swerve": swerve})
	_, err := g.Action("move", player, data)
	return err
}

func TestRoundResolvesOnceBothMove(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	if err := move(t, g, p1, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Done() {
		t.Fatalf("expected game not done after only one player's move")
	}

	if err := move(t, g, p2, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := g.GameState().(map[string]interface{})
	if state["p1_points"] != 0 || state["p2_points"] != 3 {
		t.Fatalf("unexpected points after p1 swerves, p2 doesn't: %+v", state)
	}
}

func TestGameEndsWhenNeitherSwerves(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	move(t, g, p1, false)
	move(t, g, p2, false)

	if !g.Done() {
		t.Fatalf("expected game done once neither player swerves")
	}
}

func TestSecondMoveInSameRoundRejected(t *testing.T) {
	g, p1, _ := newStartedGame(t)

	if err := move(t, g, p1, true); err != nil {
		t.Fatalf("unexpected error on first move: %v", err)
	}
	if err := move(t, g, p1, false); err == nil {
		t.Fatalf("expected error on second move within the same round")
	}
}
