// Package wire implements the Chimera JSON request/response/notification
// envelopes and the closed taxonomy of wire error codes.
package wire

// Code is a wire-level error code. Values are stable and must never be
// renumbered once assigned.
type Code int

const (
	ParseError      Code = -32700
	IncorrectRequest Code = -32600
	NoSuchOperation  Code = -32601
	IncorrectParams  Code = -32602

	UnknownGame     Code = -40100
	AlreadyInMatch  Code = -40101
	UnknownMatch    Code = -40102
	DuplicatePlayer Code = -40103
	IncorrectMatch  Code = -40104

	GameNotPlayerTurn        Code = -50100
	GameNoSuchAction         Code = -50101
	GameIncorrectActionData  Code = -50102
	GameIncorrectMove        Code = -50103
)

var messages = map[Code]string{
	ParseError:       "Parse error",
	IncorrectRequest: "Incorrect request",
	NoSuchOperation:  "No such operation",
	IncorrectParams:  "Incorrect parameters",

	UnknownGame:     "Unknown game",
	AlreadyInMatch:  "Already in a match",
	UnknownMatch:    "Unknown match",
	DuplicatePlayer: "Duplicate player name",
	IncorrectMatch:  "Incorrect match",

	GameNotPlayerTurn:       "Action not allowed outside player's turn",
	GameNoSuchAction:        "Unsupported action in game",
	GameIncorrectActionData: "Incorrect data in game action",
	GameIncorrectMove:       "Incorrect move",
}

// String returns the canonical message for the error code.
func (c Code) String() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// Error is the `error` member of a response envelope.
type Error struct {
	Code    Code        `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewError builds a wire Error, filling in the canonical message for code.
func NewError(code Code, details string) *Error {
	e := &Error{Code: code, Message: code.String()}
	if details != "" {
		e.Data = map[string]string{"details": details}
	}
	return e
}
