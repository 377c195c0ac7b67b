package server

import (
	"errors"
	"fmt"
	"log"

	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/match"
	"github.com/chimeramatch/server/internal/wire"
)

func (d *Dispatcher) sendError(client *Client, id interface{}, code wire.Code, details string) {
	resp := wire.NewErrorResponse(id, wire.NewError(code, details))
	if err := client.Sender.Send(resp); err != nil {
		log.Printf("chimera: failed to send error response to %s: %v", client.ID, err)
	}
}

func (d *Dispatcher) sendResult(client *Client, id interface{}, result interface{}) {
	if err := client.Sender.Send(wire.NewResponse(id, result)); err != nil {
		log.Printf("chimera: failed to send response to %s: %v", client.ID, err)
	}
}

func (d *Dispatcher) handleListGames(client *Client, req *wire.Request) {
	d.mu.RLock()
	games := make([]map[string]interface{}, 0, len(d.games))
	for _, rg := range d.games {
		games = append(games, map[string]interface{}{"id": rg.ID, "description": rg.Description})
	}
	d.mu.RUnlock()

	d.sendResult(client, req.ID, map[string]interface{}{"games": games})
}

func (d *Dispatcher) handleCreateMatch(client *Client, req *wire.Request) {
	if client.CurrentMatch() != nil {
		d.sendError(client, req.ID, wire.AlreadyInMatch, "You are already in a match. You cannot create new matches.")
		return
	}

	params, errResp := wire.RequireParams(req, []string{"game", "player-name"})
	if errResp != nil {
		_ = client.Sender.Send(errResp)
		return
	}

	var gameID, playerName string
	_ = wire.DecodeParam(params, "game", &gameID)
	_ = wire.DecodeParam(params, "player-name", &playerName)

	if err := paramValidator.Struct(&createMatchParams{Game: gameID, PlayerName: playerName}); err != nil {
		d.sendError(client, req.ID, wire.IncorrectParams, err.Error())
		return
	}

	d.mu.RLock()
	rg, ok := d.games[gameID]
	d.mu.RUnlock()
	if !ok {
		d.sendError(client, req.ID, wire.UnknownGame, fmt.Sprintf("Unknown game: %s", gameID))
		return
	}

	d.mu.Lock()
	slug := d.slugs.Generate(func(s string) bool {
		_, taken := d.matches[s]
		return taken
	})
	game := rg.Factory(nil)
	m := match.New(slug, gameID, game)
	d.matches[slug] = m
	d.mu.Unlock()

	m.Lock()
	player := m.AddPlayer(playerName)
	m.AddSubscriber(client)
	m.Unlock()

	client.setMatch(m, player)

	d.sendResult(client, req.ID, map[string]interface{}{"match-id": slug})
}

func (d *Dispatcher) handleJoinMatch(client *Client, req *wire.Request) {
	if client.CurrentMatch() != nil {
		d.sendError(client, req.ID, wire.AlreadyInMatch, "You are already in a match. You cannot create new matches.")
		return
	}

	params, errResp := wire.RequireParams(req, []string{"game", "player-name", "match-id"})
	if errResp != nil {
		_ = client.Sender.Send(errResp)
		return
	}

	var gameID, playerName, matchID string
	_ = wire.DecodeParam(params, "game", &gameID)
	_ = wire.DecodeParam(params, "player-name", &playerName)
	_ = wire.DecodeParam(params, "match-id", &matchID)

	if err := paramValidator.Struct(&joinMatchParams{Game: gameID, MatchID: matchID, PlayerName: playerName}); err != nil {
		d.sendError(client, req.ID, wire.IncorrectParams, err.Error())
		return
	}

	m := d.lookupMatch(matchID)
	if m == nil {
		d.sendError(client, req.ID, wire.UnknownMatch, fmt.Sprintf("Unknown match: %s", matchID))
		return
	}

	if m.GameID != gameID {
		d.sendError(client, req.ID, wire.UnknownMatch, fmt.Sprintf("Wrong game for %s (expected %s)", matchID, m.GameID))
		return
	}

	m.Lock()
	defer m.Unlock()

	for _, p := range m.Game.Players() {
		if p.Name == playerName {
			d.sendError(client, req.ID, wire.DuplicatePlayer, fmt.Sprintf("Player '%s' already exists in match '%s'", playerName, matchID))
			return
		}
	}

	player := m.AddPlayer(playerName)
	m.AddSubscriber(client)
	client.setMatch(m, player)

	d.sendResult(client, req.ID, map[string]interface{}{})

	// If the match now has enough players, it starts immediately, within
	// this same handler invocation: the "ready" status is never observed
	// separately on the wire.
	if m.IsReady() {
		m.Start()
	}
}

func (d *Dispatcher) handleGameAction(client *Client, req *wire.Request) {
	params, errResp := wire.RequireParams(req, []string{"match-id", "action", "data"})
	if errResp != nil {
		_ = client.Sender.Send(errResp)
		return
	}

	var matchID, action string
	_ = wire.DecodeParam(params, "match-id", &matchID)
	_ = wire.DecodeParam(params, "action", &action)
	data := params["data"]

	current := client.CurrentMatch()
	if current == nil {
		d.sendError(client, req.ID, wire.IncorrectMatch, fmt.Sprintf("You are not in %s (or that match does not exist)", matchID))
		return
	}

	m := d.lookupMatch(matchID)
	if m == nil || m != current {
		d.sendError(client, req.ID, wire.IncorrectMatch, fmt.Sprintf("You are not in %s (or that match does not exist)", matchID))
		return
	}

	m.Lock()
	defer m.Unlock()

	player := client.CurrentPlayer()
	result, err := m.Game.Action(action, player, data)
	if err != nil {
		var gerr *authoring.GameError
		if errors.As(err, &gerr) {
			d.sendError(client, req.ID, gerr.Code, gerr.Details)
		} else {
			// Anything other than a sentinel GameError is a bug inside
			// the plug-in, not a condition with a meaningful wire code.
			// Coercing it to one (e.g. GAME_INCORRECT_MOVE) would lie to
			// the client about what went wrong, so this is logged and
			// the connection is dropped instead of answered.
			log.Printf("chimera: game %q action %q returned a non-GameError for match %s: %v", m.GameID, action, matchID, err)
			if cerr := client.Sender.Close(); cerr != nil {
				log.Printf("chimera: failed to close connection for %s: %v", client.ID, cerr)
			}
			return
		}
	} else {
		d.sendResult(client, req.ID, result)
	}

	// Response (or error) has been sent. Now check for a state
	// transition: DONE takes priority over a plain state update.
	if m.Game.Done() {
		d.finishMatch(m, matchID)
	} else if m.Game.StateUpdated() {
		m.NotifyUpdate()
		m.Game.ResetStateUpdated()
	}
}

// finishMatch ends the match, records its history (if enabled), and
// atomically removes it from the active registry. Callers must hold the
// match's lock.
func (d *Dispatcher) finishMatch(m *match.Match, matchID string) {
	m.End()

	if d.history != nil {
		players := m.Game.Players()
		names := make([]string, 0, len(players))
		for _, p := range players {
			names = append(names, p.Name)
		}
		winnerName := ""
		if w := m.Game.Winner(); w != nil {
			winnerName = w.Name
		}
		if err := d.history.RecordMatch(m.GameID, m.ID, names, winnerName, m.StartedAt, m.EndedAt); err != nil {
			log.Printf("chimera: failed to record match history for %s: %v", m.ID, err)
		}
	}

	d.mu.Lock()
	delete(d.matches, matchID)
	d.mu.Unlock()
}
