package authoring

import "github.com/chimeramatch/server/internal/wire"

// GameError is raised by action handlers to signal one of the game-level
// error conditions the dispatcher maps onto a wire error code.
type GameError struct {
	Code    wire.Code
	Details string
}

func (e *GameError) Error() string {
	return e.Details
}

// ErrNotPlayerTurn is raised when an action is attempted outside the
// acting player's turn.
func ErrNotPlayerTurn(details string) *GameError {
	if details == "" {
		details = "It is not your turn."
	}
	return &GameError{Code: wire.GameNotPlayerTurn, Details: details}
}

// ErrIncorrectActionData is raised when the action's data does not match
// the fields the action expects.
func ErrIncorrectActionData(details string) *GameError {
	if details == "" {
		details = "Incorrect action data"
	}
	return &GameError{Code: wire.GameIncorrectActionData, Details: details}
}

// ErrIncorrectMove is raised when the move itself is invalid game logic
// (e.g. dropping into a full column), distinct from malformed data.
func ErrIncorrectMove(details string) *GameError {
	if details == "" {
		details = "Incorrect move"
	}
	return &GameError{Code: wire.GameIncorrectMove, Details: details}
}

// ErrNoSuchAction is raised when the requested action name has no
// registered handler in the game.
func ErrNoSuchAction(action string) *GameError {
	return &GameError{Code: wire.GameNoSuchAction, Details: "No such action: " + action}
}
