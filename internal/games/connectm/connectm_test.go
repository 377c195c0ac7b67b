package connectm

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

func drop(t *testing.T, g *Game, player *authoring.Player, column int) error {
	t.Helper()
	data, _ := json.Marshal(map[string]int{"column": column})
	_, err := g.Action("drop", player, data)
	return err
}

func TestRedMovesFirst(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	if err := drop(t, g, p2, 0); err == nil {
		t.Fatalf("expected error when player 2 (yellow) drops before red's turn")
	}
	if err := drop(t, g, p1, 0); err != nil {
		t.Fatalf("unexpected error on player 1's drop: %v", err)
	}
}

func TestFourInARowWins(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	// Red drops in columns 0-3, Yellow drops in column 6 each time
	// (never blocking red's row).
	for col := 0; col < 4; col++ {
		if err := drop(t, g, p1, col); err != nil {
			t.Fatalf("unexpected error on red's drop in column %d: %v", col, err)
		}
		if col < 3 {
			if err := drop(t, g, p2, 6); err != nil {
				t.Fatalf("unexpected error on yellow's drop: %v", err)
			}
		}
	}

	if !g.Done() {
		t.Fatalf("expected game done after red connects 4")
	}
	if g.Winner() == nil || g.Winner().Name != "alice" {
		t.Fatalf("expected alice (red) to win, got %v", g.Winner())
	}
}

func TestDropInfoQueriesEachColorIndependently(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	// Set up red three-in-a-row in columns 0-2, so dropping red in
	// column 3 would win, but dropping yellow would not.
	drop(t, g, p1, 0)
	drop(t, g, p2, 6)
	drop(t, g, p1, 1)
	drop(t, g, p2, 6)
	drop(t, g, p1, 2)
	// It is now player 2's (yellow's) turn; query drop-info as them.

	data, _ := json.Marshal(map[string]interface{}{})
	result, err := g.Action("drop-info", p2, data)
	if err != nil {
		t.Fatalf("unexpected error from drop-info: %v", err)
	}

	info := result.(map[string]interface{})
	dropWins := info["drop_wins"].(map[string]interface{})
	redWins := dropWins["R"].([]bool)
	yellowWins := dropWins["Y"].([]bool)

	if !redWins[3] {
		t.Fatalf("expected dropping red in column 3 to be reported as a win")
	}
	if yellowWins[3] {
		t.Fatalf("expected dropping yellow in column 3 to NOT be reported as a win")
	}
}

func TestGameStateReportsTurnAndColors(t *testing.T) {
	g, p1, p2 := newStartedGame(t)

	state := g.GameState().(map[string]interface{})
	if state["turn"] != p1.Name {
		t.Fatalf("expected red (player 1) to move first, got turn=%v", state["turn"])
	}

	players := state["players"].(map[string]string)
	if players[p1.Name] != "R" || players[p2.Name] != "Y" {
		t.Fatalf("unexpected player colors: %+v", players)
	}
}
