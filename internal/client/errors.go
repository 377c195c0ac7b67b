package client

import (
	"errors"
	"fmt"

	"github.com/chimeramatch/server/internal/wire"
)

// ErrSendFromCallback is returned when a request is sent from inside a
// notification callback. The connector's background receive processing
// blocks on the very call that's attempting a synchronous send, so the
// operation can never complete; this is reported immediately instead of
// deadlocking.
var ErrSendFromCallback = errors.New("chimera: cannot send a request from within a notification callback")

// ConnectionRefusedError wraps the dial failure when a Chimera server
// cannot be reached.
type ConnectionRefusedError struct {
	Err error
}

func (e *ConnectionRefusedError) Error() string {
	return fmt.Sprintf("chimera: connection refused: %v", e.Err)
}

func (e *ConnectionRefusedError) Unwrap() error { return e.Err }

// MalformedResponseError is raised when a server response is missing a
// field the client API requires.
type MalformedResponseError struct {
	Message  string
	Response *wire.Response
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("chimera: malformed response: %s", e.Message)
}

// ErrorResponse wraps a wire-level error response into a Go error. It is
// the base for the typed error conditions below, and is itself returned
// only as the fallback for a code not in errorTypes.
type ErrorResponse struct {
	Code    wire.Code
	Message string
	Details string
}

func (e *ErrorResponse) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("chimera: error %d: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("chimera: error %d: %s", e.Code, e.Message)
}

// The following distinguish the error conditions callers are expected to
// branch on by type (e.g. `var dp *client.DuplicatePlayer;
// errors.As(err, &dp)`) rather than by comparing Code.
type AlreadyInAMatch struct{ ErrorResponse }
type UnknownMatch struct{ ErrorResponse }
type DuplicatePlayer struct{ ErrorResponse }
type GameNoSuchAction struct{ ErrorResponse }
type GameIncorrectActionData struct{ ErrorResponse }
type GameNotPlayerTurn struct{ ErrorResponse }
type GameIncorrectMove struct{ ErrorResponse }

// errorTypes maps a wire error code to the constructor for its typed
// client-side error. A code with no entry falls back to *ErrorResponse.
var errorTypes = map[wire.Code]func(ErrorResponse) error{
	wire.AlreadyInMatch:          func(er ErrorResponse) error { return &AlreadyInAMatch{er} },
	wire.UnknownMatch:            func(er ErrorResponse) error { return &UnknownMatch{er} },
	wire.DuplicatePlayer:         func(er ErrorResponse) error { return &DuplicatePlayer{er} },
	wire.GameNoSuchAction:        func(er ErrorResponse) error { return &GameNoSuchAction{er} },
	wire.GameIncorrectActionData: func(er ErrorResponse) error { return &GameIncorrectActionData{er} },
	wire.GameNotPlayerTurn:       func(er ErrorResponse) error { return &GameNotPlayerTurn{er} },
	wire.GameIncorrectMove:       func(er ErrorResponse) error { return &GameIncorrectMove{er} },
}

func newErrorResponse(wireErr *wire.Error) error {
	er := ErrorResponse{Code: wireErr.Code, Message: wireErr.Message}
	if data, ok := wireErr.Data.(map[string]interface{}); ok {
		if details, ok := data["details"].(string); ok {
			er.Details = details
		}
	}
	if ctor, ok := errorTypes[er.Code]; ok {
		return ctor(er)
	}
	return &er
}
