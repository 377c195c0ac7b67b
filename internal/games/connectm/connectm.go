// Package connectm implements Connect-M: a generalized Connect Four where
// a run of M contiguous same-colored pieces (not necessarily four) wins.
package connectm

import (
	"encoding/json"

	"github.com/chimeramatch/server/internal/authoring"
)

const (
	boardRows = 6
	boardCols = 7
	boardM    = 4
)

// Game is the Connect-M game.
type Game struct {
	authoring.TwoPlayerTurnBasedGame

	board        *board
	playerColor  map[int]PieceColor
	colorPlayer  map[PieceColor]int
}

// New constructs a Connect-M game on a standard 6x7 board requiring 4 in a
// row. It ignores options.
func New(options map[string]interface{}) authoring.Game {
	g := &Game{
		TwoPlayerTurnBasedGame: authoring.NewTwoPlayerTurnBasedGame(),
		board:                  newBoard(boardRows, boardCols, boardM),
		playerColor:            make(map[int]PieceColor),
		colorPlayer:            make(map[PieceColor]int),
	}
	g.RegisterAction("drop", authoring.ValidateTurn(&g.TwoPlayerTurnBasedGame,
		authoring.ExpectData([]string{"column"}, g.actionDrop)))
	g.RegisterAction("drop-info", authoring.ExpectData(nil, g.actionDropInfo))
	return g
}

func (g *Game) OnStart() {
	g.playerColor[0] = Red
	g.playerColor[1] = Yellow
	g.colorPlayer[Red] = 0
	g.colorPlayer[Yellow] = 1
}

func (g *Game) OnEnd() {}

func (g *Game) drop(player *authoring.Player, column int) error {
	if !g.board.canDrop(column) {
		return authoring.ErrIncorrectMove("Cannot drop piece in column")
	}

	g.board.drop(column, g.playerColor[player.ID])
	g.TurnToNextPlayer()
	g.NotifyUpdate()
	return nil
}

func (g *Game) Done() bool {
	return g.board.getWinner() != nil
}

func (g *Game) Winner() *authoring.Player {
	winner := g.board.getWinner()
	if winner == nil {
		return nil
	}
	return g.PlayerByID(g.colorPlayer[*winner])
}

func (g *Game) GameState() interface{} {
	player1 := g.PlayerByID(0)
	player2 := g.PlayerByID(1)

	return map[string]interface{}{
		"turn": g.CurrentPlayer().Name,
		"players": map[string]string{
			player1.Name: g.playerColor[0].String(),
			player2.Name: g.playerColor[1].String(),
		},
		"board": g.board.toStrGrid(),
	}
}

func (g *Game) actionDrop(player *authoring.Player, data map[string]json.RawMessage) (interface{}, error) {
	var column int
	if err := json.Unmarshal(data["column"], &column); err != nil {
		return nil, authoring.ErrIncorrectActionData("Field 'column' must be an integer")
	}

	if err := g.drop(player, column); err != nil {
		return nil, err
	}

	return map[string]interface{}{"column": column}, nil
}

// actionDropInfo reports, for every column, whether a piece can be
// dropped there and whether doing so would immediately win for each
// color.
func (g *Game) actionDropInfo(player *authoring.Player, data map[string]json.RawMessage) (interface{}, error) {
	canDrop := make([]bool, g.board.numCols())
	dropWinsY := make([]bool, g.board.numCols())
	dropWinsR := make([]bool, g.board.numCols())

	for col := 0; col < g.board.numCols(); col++ {
		canDrop[col] = g.board.canDrop(col)
		dropWinsY[col] = g.board.dropWins(col, Yellow)
		dropWinsR[col] = g.board.dropWins(col, Red)
	}

	return map[string]interface{}{
		"can_drop": canDrop,
		"drop_wins": map[string]interface{}{
			"Y": dropWinsY,
			"R": dropWinsR,
		},
	}, nil
}
