package client

import (
	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/transport"
)

// Chimera is a client connected to a real Chimera server over a
// websocket.
type Chimera struct {
	*ClientAPI
	connector *wsConnector
}

// NewChimera dials host:port and returns a connected client. cb may be nil,
// in which case notifications queue on their Match for WaitForUpdate /
// NextNotification.
func NewChimera(host, port string, cb NotificationCallback) (*Chimera, error) {
	conn, err := dialWebSocket(host, port)
	if err != nil {
		return nil, err
	}

	api := newClientAPI(conn, cb)
	conn.attach(api)

	return &Chimera{ClientAPI: api, connector: conn}, nil
}

// Close disconnects from the server.
func (c *Chimera) Close() error {
	return c.connector.Close()
}

// FakeChimera is an in-process client driving a transport.FakeServer
// directly, with no network involved. Useful for tests and local demos.
type FakeChimera struct {
	*ClientAPI
	connector *fakeConnector
}

// NewFakeChimera attaches a new fake client, identified by clientID, to
// fakeServer.
func NewFakeChimera(fakeServer *transport.FakeServer, clientID string, cb NotificationCallback) *FakeChimera {
	conn := newFakeConnector(fakeServer, clientID)
	api := newClientAPI(conn, cb)
	conn.attach(api)

	return &FakeChimera{ClientAPI: api, connector: conn}
}

// RegisterGame registers a game factory directly on the underlying fake
// server, bypassing the wire protocol entirely (there is no
// register-game operation).
func (c *FakeChimera) RegisterGame(id string, factory authoring.Factory, description string) {
	c.connector.server.Dispatcher.RegisterGame(id, factory, description)
}

// ProcessNotifications drains and applies every notification queued since
// the last call. The real Chimera client routes notifications to their
// match (or the callback) as they arrive on its background receive loop;
// FakeChimera has no such loop, so callers must call this explicitly to
// observe queued updates.
func (c *FakeChimera) ProcessNotifications() {
	c.connector.ProcessNotifications()
}

func (c *FakeChimera) Close() error {
	return c.connector.Close()
}
