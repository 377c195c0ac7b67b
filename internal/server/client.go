package server

import (
	"sync"

	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/match"
	"github.com/chimeramatch/server/internal/wire"
)

// Sender delivers one wire envelope (a Response or a Notification) to a
// connected client, and can terminate the connection. Implemented by the
// transport layer.
type Sender interface {
	Send(v interface{}) error
	Close() error
}

// Client tracks per-connection dispatcher state: the match (if any) the
// connection currently belongs to, and which player it is in that match.
type Client struct {
	ID     string
	Sender Sender

	mu            sync.Mutex
	currentMatch  *match.Match
	currentPlayer *authoring.Player
}

// NewClient wraps a transport Sender with dispatcher state.
func NewClient(id string, sender Sender) *Client {
	return &Client{ID: id, Sender: sender}
}

// SendNotification implements match.Subscriber.
func (c *Client) SendNotification(n *wire.Notification) error {
	return c.Sender.Send(n)
}

// CurrentMatch returns the match this client is currently part of, or nil.
func (c *Client) CurrentMatch() *match.Match {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentMatch
}

// CurrentPlayer returns this client's player handle in its current match.
func (c *Client) CurrentPlayer() *authoring.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPlayer
}

func (c *Client) setMatch(m *match.Match, p *authoring.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentMatch = m
	c.currentPlayer = p
}
