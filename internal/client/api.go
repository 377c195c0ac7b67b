// Package client implements the Chimera client API: connecting to a
// server (or an in-process fake), listing and joining games, driving
// matches, and receiving match notifications.
package client

import (
	"sync"

	"github.com/chimeramatch/server/internal/wire"
)

// Connector is the transport-facing half of the client: it turns an
// operation + params into a synchronous response, and feeds inbound
// notifications to the owning ClientAPI as they arrive.
type Connector interface {
	SendRequest(operation string, params interface{}) (*wire.Response, error)
	Close() error
}

// NotificationCallback is invoked for every match notification when set;
// otherwise notifications queue on their Match for WaitForUpdate /
// NextNotification to retrieve.
type NotificationCallback func(*MatchNotification)

type matchKey struct {
	gameID  string
	matchID string
}

// ClientAPI is the shared implementation behind Chimera and FakeChimera.
type ClientAPI struct {
	connector Connector

	mu                   sync.Mutex
	notificationCallback NotificationCallback
	matches              map[matchKey]*Match
}

func newClientAPI(connector Connector, notificationCallback NotificationCallback) *ClientAPI {
	return &ClientAPI{
		connector:            connector,
		notificationCallback: notificationCallback,
		matches:              make(map[matchKey]*Match),
	}
}

// SetNotificationCallback installs (or clears, with nil) the notification
// callback.
func (a *ClientAPI) SetNotificationCallback(cb NotificationCallback) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notificationCallback = cb
}

// GetGames lists the games available on the server.
func (a *ClientAPI) GetGames() (map[string]*Game, error) {
	resp, err := a.sendRequest("list-games", nil)
	if err != nil {
		return nil, err
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		return nil, &MalformedResponseError{Message: "Missing 'games' field", Response: resp}
	}
	rawGames, ok := result["games"].([]interface{})
	if !ok {
		return nil, &MalformedResponseError{Message: "Missing 'games' field", Response: resp}
	}

	games := make(map[string]*Game, len(rawGames))
	for _, rg := range rawGames {
		g, ok := rg.(map[string]interface{})
		if !ok {
			return nil, &MalformedResponseError{Message: "Malformed game entry", Response: resp}
		}
		id, _ := g["id"].(string)
		description, _ := g["description"].(string)
		if id == "" {
			return nil, &MalformedResponseError{Message: "Missing 'id' field in game", Response: resp}
		}
		games[id] = &Game{api: a, id: id, description: description}
	}

	return games, nil
}

func (a *ClientAPI) sendRequest(operation string, params interface{}) (*wire.Response, error) {
	resp, err := a.connector.SendRequest(operation, params)
	if err != nil {
		return nil, err
	}

	if resp.Type != "response" {
		return nil, &MalformedResponseError{Message: "Unexpected message type '" + resp.Type + "'", Response: resp}
	}

	if resp.Error != nil {
		return nil, newErrorResponse(resp.Error)
	}

	return resp, nil
}

// processNotification routes one inbound notification to its match,
// either via the registered callback or the match's own queue. Matches a
// notification for a match this client hasn't joined are silently
// dropped, mirroring the original's behavior.
func (a *ClientAPI) processNotification(n *wire.Notification) {
	if n.Scope != wire.ScopeMatch {
		return
	}
	data, ok := n.Data.(map[string]interface{})
	if !ok {
		return
	}
	gameID, _ := data["game-id"].(string)
	matchID, _ := data["match-id"].(string)

	a.mu.Lock()
	m := a.matches[matchKey{gameID, matchID}]
	cb := a.notificationCallback
	a.mu.Unlock()

	if m == nil {
		return
	}

	notification := newMatchNotification(m, n.Event, data)

	if cb != nil {
		cb(notification)
	} else {
		m.enqueue(notification)
	}
}

func (a *ClientAPI) registerMatch(m *Match) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.matches[matchKey{m.game.id, m.id}] = m
}
