package server

import (
	"github.com/go-playground/validator/v10"
)

var paramValidator = validator.New()

// createMatchParams and joinMatchParams carry struct tag validation for
// the player-facing fields that RequireParams' presence check doesn't
// cover: a player-name has to actually look like a name, not just be
// present.
type createMatchParams struct {
	Game       string `json:"game" validate:"required"`
	PlayerName string `json:"player-name" validate:"required,min=1,max=32"`
}

type joinMatchParams struct {
	Game       string `json:"game" validate:"required"`
	MatchID    string `json:"match-id" validate:"required"`
	PlayerName string `json:"player-name" validate:"required,min=1,max=32"`
}
