// Package server implements the Chimera dispatcher: the operation
// handlers (list-games, create-match, join-match, game-action), the
// active match registry, and per-client connection state.
package server

import (
	"log"
	"sync"
	"time"

	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/match"
	"github.com/chimeramatch/server/internal/slugs"
	"github.com/chimeramatch/server/internal/wire"
)

// HistoryRecorder persists a completed match. Implemented by
// internal/history.Store; nil-safe (a Dispatcher with no recorder simply
// skips persistence).
type HistoryRecorder interface {
	RecordMatch(gameID, slug string, players []string, winner string, startedAt, endedAt time.Time) error
}

type operationHandler func(d *Dispatcher, client *Client, req *wire.Request)

// Dispatcher routes validated requests to operation handlers and owns the
// registry of games and active matches.
type Dispatcher struct {
	mu      sync.RWMutex
	games   map[string]*RegisteredGame
	matches map[string]*match.Match

	slugs   slugs.Allocator
	history HistoryRecorder

	handlers map[string]operationHandler
}

// NewDispatcher constructs an empty Dispatcher. A nil history recorder
// disables match-history persistence.
func NewDispatcher(slugAllocator slugs.Allocator, history HistoryRecorder) *Dispatcher {
	d := &Dispatcher{
		games:   make(map[string]*RegisteredGame),
		matches: make(map[string]*match.Match),
		slugs:   slugAllocator,
		history: history,
	}
	d.handlers = map[string]operationHandler{
		"list-games":  (*Dispatcher).handleListGames,
		"create-match": (*Dispatcher).handleCreateMatch,
		"join-match":  (*Dispatcher).handleJoinMatch,
		"game-action": (*Dispatcher).handleGameAction,
	}
	return d
}

// RegisterGame makes a game available for create-match/join-match.
func (d *Dispatcher) RegisterGame(id string, factory authoring.Factory, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.games[id] = &RegisteredGame{ID: id, Description: description, Factory: factory}
}

// isKnownOperation reports whether operation has a registered handler.
func (d *Dispatcher) isKnownOperation(operation string) bool {
	_, ok := d.handlers[operation]
	return ok
}

// HandleMessage validates and dispatches one inbound raw message for
// client, sending the response (and, for join-match/game-action, any
// resulting notifications) through client.Sender.
func (d *Dispatcher) HandleMessage(client *Client, raw []byte) {
	req, errResp := wire.ValidateEnvelope(raw, d.isKnownOperation)
	if errResp != nil {
		if err := client.Sender.Send(errResp); err != nil {
			log.Printf("chimera: failed to send error response to %s: %v", client.ID, err)
		}
		return
	}

	handler := d.handlers[req.Operation]
	handler(d, client, req)
}

func (d *Dispatcher) lookupMatch(id string) *match.Match {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.matches[id]
}

func (d *Dispatcher) matchExists(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.matches[id]
	return ok
}
