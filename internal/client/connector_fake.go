package client

import (
	"encoding/json"
	"fmt"

	"github.com/chimeramatch/server/internal/server"
	"github.com/chimeramatch/server/internal/transport"
	"github.com/chimeramatch/server/internal/wire"
)

// fakeConnector drives a server.Dispatcher in-process, with no network or
// goroutines involved. Unlike wsConnector, it does not process
// notifications as they arrive: SendRequest only ever drains the single
// response it's waiting for, leaving any notifications queued until
// ProcessNotifications is called explicitly.
type fakeConnector struct {
	server *transport.FakeServer
	client *server.Client
	sender *transport.FakeSender
	api    *ClientAPI
	nextID int
}

func newFakeConnector(fakeServer *transport.FakeServer, clientID string) *fakeConnector {
	c, sender := fakeServer.CreateClient(clientID)
	return &fakeConnector{server: fakeServer, client: c, sender: sender}
}

func (c *fakeConnector) attach(api *ClientAPI) {
	c.api = api
}

func (c *fakeConnector) SendRequest(operation string, params interface{}) (*wire.Response, error) {
	id := fmt.Sprintf("%d", c.nextID)
	c.nextID++

	msg := map[string]interface{}{
		"type":      "request",
		"id":        id,
		"operation": operation,
	}
	if params != nil {
		msg["params"] = params
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	c.server.SendMessage(c.client, raw)

	resp := c.sender.NextResponse()
	if resp == nil {
		return nil, &MalformedResponseError{Message: "no response produced"}
	}

	// Round-trip through JSON so the response has the same shape a
	// websocket client decodes off the wire.
	encoded, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var decoded wire.Response
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}

// ProcessNotifications drains and applies every notification queued since
// the last call, in arrival order: each is routed to the callback (if set)
// or to its match's queue, and then every match's queue is processed.
func (c *fakeConnector) ProcessNotifications() {
	for {
		n := c.sender.NextNotification()
		if n == nil {
			break
		}
		c.api.processNotification(n)
	}

	c.api.mu.Lock()
	matches := make([]*Match, 0, len(c.api.matches))
	for _, m := range c.api.matches {
		matches = append(matches, m)
	}
	c.api.mu.Unlock()
	for _, m := range matches {
		for n := m.NextNotification(); n != nil; n = m.NextNotification() {
			n.process()
		}
	}
}

func (c *fakeConnector) Close() error {
	return nil
}
