// Package match implements the match lifecycle state machine: the
// AWAITING_PLAYERS -> READY -> IN_PROGRESS -> DONE transitions, subscriber
// fan-out, and the match-status snapshot sent to clients.
package match

import (
	"sync"
	"time"

	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/wire"
)

// State is one of the four match lifecycle states.
type State int

const (
	AwaitingPlayers State = iota
	Ready
	InProgress
	Done
)

var stateNames = map[State]string{
	AwaitingPlayers: "awaiting-players",
	Ready:           "ready",
	InProgress:      "in-progress",
	Done:            "done",
}

func (s State) String() string { return stateNames[s] }

// Subscriber receives notifications for a match it has joined.
type Subscriber interface {
	SendNotification(n *wire.Notification) error
}

// Match tracks one in-progress game session: its game instance, lifecycle
// state, and the set of clients subscribed to its notifications.
type Match struct {
	mu sync.Mutex

	ID     string
	GameID string
	Game   authoring.Game
	state  State

	StartedAt time.Time
	EndedAt   time.Time

	subscribers map[Subscriber]bool
}

// New constructs a match in the AWAITING_PLAYERS state.
func New(id, gameID string, game authoring.Game) *Match {
	return &Match{
		ID:          id,
		GameID:      gameID,
		Game:        game,
		state:       AwaitingPlayers,
		subscribers: make(map[Subscriber]bool),
	}
}

// Lock serializes access to the match for the duration of handling one
// client request, including any game-level mutation.
func (m *Match) Lock() { m.mu.Lock() }

// Unlock releases the lock taken by Lock.
func (m *Match) Unlock() { m.mu.Unlock() }

// State returns the current lifecycle state. Callers must hold the lock.
func (m *Match) State() State { return m.state }

// AddPlayer seats a new player and, if this fills the match to its
// minimum player count, atomically transitions to READY. Callers must
// hold the lock.
func (m *Match) AddPlayer(name string) *authoring.Player {
	player := m.Game.AddPlayer(name)
	if m.state == AwaitingPlayers && m.Game.NumPlayers() >= m.Game.MinPlayers() {
		m.state = Ready
	}
	return player
}

// AddSubscriber registers a client to receive this match's notifications.
// Callers must hold the lock.
func (m *Match) AddSubscriber(sub Subscriber) {
	m.subscribers[sub] = true
}

// IsReady reports whether the match has enough players to start. Callers
// must hold the lock.
func (m *Match) IsReady() bool { return m.state == Ready }

// Snapshot builds the match-status payload sent in responses and
// notifications.
func (m *Match) Snapshot() map[string]interface{} {
	state := map[string]interface{}{
		"match-id":     m.ID,
		"match-status": m.state.String(),
		"game-id":      m.GameID,
	}
	if m.state == Done {
		if winner := m.Game.Winner(); winner != nil {
			state["match-winner"] = winner.Name
		} else {
			state["match-winner"] = nil
		}
	}
	if m.state == InProgress || m.state == Done {
		state["game-state"] = m.Game.GameState()
	}
	return state
}

// Start transitions the match to IN_PROGRESS, runs the game's OnStart
// hook, and fans out a "start" notification. Callers must hold the lock.
func (m *Match) Start() {
	m.state = InProgress
	m.StartedAt = time.Now()
	m.Game.OnStart()
	m.broadcast(wire.EventStart)
}

// NotifyUpdate fans out an "update" notification with the current
// snapshot. Callers must hold the lock.
func (m *Match) NotifyUpdate() {
	m.broadcast(wire.EventUpdate)
}

// End transitions the match to DONE, runs the game's OnEnd hook, and fans
// out an "end" notification. Callers must hold the lock.
func (m *Match) End() {
	m.state = Done
	m.EndedAt = time.Now()
	m.Game.OnEnd()
	m.broadcast(wire.EventEnd)
}

// broadcast fans out a notification to every subscriber. Callers must hold
// the lock; the snapshot is built while still holding it so the notified
// state can never race with a concurrent mutation of the same match.
func (m *Match) broadcast(event string) {
	snapshot := m.Snapshot()
	n := wire.NewMatchNotification(event, snapshot)
	for s := range m.subscribers {
		_ = s.SendNotification(n)
	}
}
