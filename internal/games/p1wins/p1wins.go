// Package p1wins implements "Player One Wins": a two-player, one-round
// game where each player submits a phrase, and player one always wins
// regardless of what either player said.
package p1wins

import (
	"encoding/json"

	"github.com/chimeramatch/server/internal/authoring"
)

// Game is the PlayerOneWins game.
type Game struct {
	authoring.TwoPlayerTurnBasedGame

	phrases []*string
}

// New constructs a PlayerOneWins game. It ignores options.
func New(options map[string]interface{}) authoring.Game {
	g := &Game{TwoPlayerTurnBasedGame: authoring.NewTwoPlayerTurnBasedGame()}
	g.RegisterAction("move", authoring.ValidateTurn(&g.TwoPlayerTurnBasedGame,
		authoring.ExpectData([]string{"phrase"}, g.actionMove)))
	return g
}

func (g *Game) OnStart() {
	g.phrases = make([]*string, g.NumPlayers())
}

func (g *Game) OnEnd() {}

func (g *Game) move(player *authoring.Player, phrase string) {
	g.phrases[player.ID] = &phrase
	g.TurnToNextPlayer()
	g.NotifyUpdate()
}

func (g *Game) Done() bool {
	for _, p := range g.phrases {
		if p == nil {
			return false
		}
	}
	return true
}

func (g *Game) Winner() *authoring.Player {
	if !g.Done() {
		return nil
	}
	return g.PlayerByID(0)
}

func (g *Game) GameState() interface{} {
	return map[string]interface{}{
		"player1_phrase": g.phrases[0],
		"player2_phrase": g.phrases[1],
	}
}

func (g *Game) actionMove(player *authoring.Player, data map[string]json.RawMessage) (interface{}, error) {
	var phrase string
	if err := json.Unmarshal(data["phrase"], &phrase); err != nil {
		return nil, authoring.ErrIncorrectActionData("Field 'phrase' must be a string")
	}

	g.move(player, phrase)

	return map[string]interface{}{"received": phrase}, nil
}
