package server

import "github.com/chimeramatch/server/internal/authoring"

// RegisteredGame is one game available for matches on this server.
type RegisteredGame struct {
	ID          string
	Description string
	Factory     authoring.Factory
}
