// Package chicken implements the game of Chicken: repeated simultaneous
// rounds where each player secretly swerves or doesn't, until both choose
// not to swerve and the game ends.
package chicken

import (
	"encoding/json"

	"github.com/chimeramatch/server/internal/authoring"
)

type roundOutcome struct {
	P1Swerve bool `json:"p1_swerve"`
	P2Swerve bool `json:"p2_swerve"`
	P1Points int  `json:"p1_points"`
	P2Points int  `json:"p2_points"`
}

// Game is the Chicken game.
type Game struct {
	authoring.TwoPlayerGame

	points       [2]int
	currentRound [2]*bool
	outcomes     []roundOutcome
}

// New constructs a Chicken game. It ignores options.
func New(options map[string]interface{}) authoring.Game {
	g := &Game{TwoPlayerGame: authoring.NewTwoPlayerGame()}
	g.RegisterAction("move", authoring.ExpectData([]string{"swerve"}, g.actionMove))
	return g
}

func (g *Game) OnStart() {
	g.points = [2]int{0, 0}
	g.currentRound = [2]*bool{nil, nil}
	g.outcomes = nil
}

func (g *Game) OnEnd() {}

// move records player's swerve decision for the current round. A second
// submission within the same round is rejected: the round is resolved
// from the first submission only.
func (g *Game) move(player *authoring.Player, swerve bool) error {
	if g.currentRound[player.ID] != nil {
		return authoring.ErrIncorrectMove("You have already submitted a move for this round.")
	}
	g.currentRound[player.ID] = &swerve

	p1Swerve, p2Swerve := g.currentRound[0], g.currentRound[1]
	if p1Swerve == nil || p2Swerve == nil {
		return nil
	}

	var p1Points, p2Points int
	switch {
	case *p1Swerve && *p2Swerve:
		p1Points, p2Points = 1, 1
	case *p1Swerve && !*p2Swerve:
		p1Points, p2Points = 0, 3
	case !*p1Swerve && *p2Swerve:
		p1Points, p2Points = 3, 0
	default:
		p1Points, p2Points = 0, 0
	}

	g.points[0] += p1Points
	g.points[1] += p2Points
	g.outcomes = append(g.outcomes, roundOutcome{*p1Swerve, *p2Swerve, p1Points, p2Points})
	g.currentRound = [2]*bool{nil, nil}

	g.NotifyUpdate()
	return nil
}

func (g *Game) Done() bool {
	if len(g.outcomes) == 0 {
		return false
	}
	last := g.outcomes[len(g.outcomes)-1]
	return !last.P1Swerve && !last.P2Swerve
}

func (g *Game) Winner() *authoring.Player {
	if !g.Done() {
		return nil
	}
	switch {
	case g.points[0] > g.points[1]:
		return g.PlayerByID(0)
	case g.points[0] < g.points[1]:
		return g.PlayerByID(1)
	default:
		return nil
	}
}

func (g *Game) GameState() interface{} {
	return map[string]interface{}{
		"p1_points": g.points[0],
		"p2_points": g.points[1],
		"rounds":    g.outcomes,
	}
}

func (g *Game) actionMove(player *authoring.Player, data map[string]json.RawMessage) (interface{}, error) {
	var swerve bool
	if err := json.Unmarshal(data["swerve"], &swerve); err != nil {
		return nil, authoring.ErrIncorrectActionData("Field 'swerve' must be a boolean")
	}

	if err := g.move(player, swerve); err != nil {
		return nil, err
	}

	return map[string]interface{}{"swerve": swerve}, nil
}
