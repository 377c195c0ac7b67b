// Package authoring defines the contract that a pluggable Chimera game
// implements: construction from options, player bookkeeping, lifecycle
// hooks, a named-action registry, and a JSON-serializable game state.
package authoring

import "encoding/json"

// Player is a single participant in a match. Players are identified by
// a 0-based index assigned in join order.
type Player struct {
	ID   int
	Name string
}

// ActionHandler handles one named game action. It receives the raw,
// not-yet-validated action data; handlers that care about specific
// fields should wrap themselves with ExpectData.
type ActionHandler func(player *Player, data json.RawMessage) (interface{}, error)

// Game is the contract every pluggable game implements.
type Game interface {
	// MinPlayers is the number of players required before the match
	// transitions from AWAITING_PLAYERS to READY.
	MinPlayers() int

	// NumPlayers returns the number of players currently seated.
	NumPlayers() int

	// AddPlayer creates and seats a new player, returning its handle.
	AddPlayer(name string) *Player

	// Players returns the seated players in join order.
	Players() []*Player

	// OnStart is called exactly once, when the match transitions to
	// IN_PROGRESS.
	OnStart()

	// OnEnd is called exactly once, when Done becomes true and the
	// match transitions to DONE.
	OnEnd()

	// Done reports whether the game has concluded.
	Done() bool

	// Winner returns the winning player, or nil if the game is not
	// done or ended in a draw.
	Winner() *Player

	// GameState returns a JSON-serializable snapshot of the game.
	GameState() interface{}

	// Action dispatches a named action to its registered handler.
	// Returns ErrNoSuchAction if no handler is registered under name.
	Action(name string, player *Player, data json.RawMessage) (interface{}, error)

	// StateUpdated reports whether the game state changed since the
	// last ResetStateUpdated call.
	StateUpdated() bool

	// ResetStateUpdated clears the dirty flag after the dispatcher has
	// fanned out an update notification.
	ResetStateUpdated()
}

// Factory constructs a new Game instance from an options map. The
// dispatcher passes nil options when it creates a match, and the bundled
// example games ignore them.
type Factory func(options map[string]interface{}) Game
