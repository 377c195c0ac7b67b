package authoring

import "encoding/json"

// TwoPlayerGame is a reusable base for games requiring exactly two
// players, with no enforced turn order.
type TwoPlayerGame struct {
	BaseGame
}

// NewTwoPlayerGame constructs a TwoPlayerGame.
func NewTwoPlayerGame() TwoPlayerGame {
	return TwoPlayerGame{BaseGame: NewBaseGame(2)}
}

// TwoPlayerTurnBasedGame extends TwoPlayerGame with a current-player
// cursor and a turn guard for actions that must only be performed by the
// player whose turn it is.
type TwoPlayerTurnBasedGame struct {
	BaseGame
	currentPlayerIdx int
}

// NewTwoPlayerTurnBasedGame constructs a TwoPlayerTurnBasedGame, with
// player 0 to move first.
func NewTwoPlayerTurnBasedGame() TwoPlayerTurnBasedGame {
	return TwoPlayerTurnBasedGame{BaseGame: NewBaseGame(2)}
}

// CurrentPlayer returns the player whose turn it currently is.
func (g *TwoPlayerTurnBasedGame) CurrentPlayer() *Player {
	return g.PlayerByID(g.currentPlayerIdx)
}

// TurnToNextPlayer advances the turn cursor to the other player.
func (g *TwoPlayerTurnBasedGame) TurnToNextPlayer() {
	g.currentPlayerIdx = (g.currentPlayerIdx + 1) % 2
}

// ValidateTurn wraps an action handler so it fails with ErrNotPlayerTurn
// unless invoked by the current player. Mirrors the original's
// @validate_turn decorator.
func ValidateTurn(g *TwoPlayerTurnBasedGame, handler ActionHandler) ActionHandler {
	return func(player *Player, data json.RawMessage) (interface{}, error) {
		if player != g.CurrentPlayer() {
			return nil, ErrNotPlayerTurn("")
		}
		return handler(player, data)
	}
}
