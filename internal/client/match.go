package client

import "sync"

// Match status strings, mirroring the match-status values on the wire.
const (
	StatusAwaitingPlayers = "awaiting-players"
	StatusReady           = "ready"
	StatusInProgress      = "in-progress"
	StatusDone            = "done"
)

// Match represents a match this client has created or joined. Obtained
// from Game.CreateMatch / Game.JoinMatch; never constructed directly.
// Status, Winner, and GameState only advance when a queued notification
// is processed, via WaitForUpdate, NextNotification, or the notification
// callback.
type Match struct {
	api        *ClientAPI
	game       *Game
	id         string
	playerName string

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*MatchNotification
	status string
	winner *string
	state  interface{}
}

func newMatch(api *ClientAPI, game *Game, id, playerName string) *Match {
	m := &Match{
		api:        api,
		game:       game,
		id:         id,
		playerName: playerName,
		status:     StatusAwaitingPlayers,
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *Match) ID() string         { return m.id }
func (m *Match) PlayerName() string { return m.playerName }

func (m *Match) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Match) Winner() *string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.winner
}

func (m *Match) GameState() interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// GameAction requests a game action and returns its result.
func (m *Match) GameAction(action string, data interface{}) (interface{}, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	params := map[string]interface{}{"match-id": m.id, "action": action, "data": data}
	resp, err := m.api.sendRequest("game-action", params)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// WaitForUpdate blocks until at least one notification has arrived for
// this match, processes it, then drains and processes any further
// notifications already queued without blocking again.
func (m *Match) WaitForUpdate() {
	m.mu.Lock()
	for len(m.queue) == 0 {
		m.cond.Wait()
	}
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.mu.Unlock()
			return
		}
		n := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()
		n.process()
	}
}

// NextNotification pops and returns the oldest unprocessed notification
// for this match, or nil if none is queued. Unlike WaitForUpdate, it does
// not process the returned notification: the caller must call its
// Process method to advance the match's state.
func (m *Match) NextNotification() *MatchNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil
	}
	n := m.queue[0]
	m.queue = m.queue[1:]
	return n
}

func (m *Match) enqueue(n *MatchNotification) {
	m.mu.Lock()
	m.queue = append(m.queue, n)
	m.cond.Signal()
	m.mu.Unlock()
}

func (m *Match) applyNotification(n *MatchNotification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = n.matchStatus
	m.state = n.gameState
	m.winner = n.winner
}
