package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/chimeramatch/server/internal/wire"
)

// wsConnector is the real, network-backed Connector: a background receive
// goroutine routes inbound responses to the pending request that's
// waiting on them, and inbound notifications to the owning ClientAPI.
type wsConnector struct {
	api       *ClientAPI
	conn      *websocket.Conn
	localAddr string

	mu      sync.Mutex
	nextID  int
	pending map[string]chan *wire.Response

	// inCallback is set for the duration of a notification callback
	// invocation on the receive goroutine. SendRequest refuses to run
	// while it's set: the receive goroutine is the only reader of
	// responses, so a synchronous send from inside a callback it is
	// running would block forever waiting for itself.
	inCallback int32
}

func dialWebSocket(host, port string) (*wsConnector, error) {
	u := url.URL{Scheme: "ws", Host: fmt.Sprintf("%s:%s", host, port)}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, &ConnectionRefusedError{Err: err}
	}
	return &wsConnector{
		conn:      conn,
		localAddr: conn.LocalAddr().String(),
		pending:   make(map[string]chan *wire.Response),
	}, nil
}

func (c *wsConnector) attach(api *ClientAPI) {
	c.api = api
	go c.recvLoop()
}

func (c *wsConnector) recvLoop() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var generic map[string]json.RawMessage
		if err := json.Unmarshal(data, &generic); err != nil {
			continue
		}

		if idRaw, hasID := generic["id"]; hasID {
			var id string
			if err := json.Unmarshal(idRaw, &id); err != nil {
				continue
			}

			c.mu.Lock()
			ch, ok := c.pending[id]
			if ok {
				delete(c.pending, id)
			}
			c.mu.Unlock()

			if !ok {
				continue
			}

			var resp wire.Response
			if err := json.Unmarshal(data, &resp); err != nil {
				continue
			}
			ch <- &resp
			continue
		}

		var note wire.Notification
		if err := json.Unmarshal(data, &note); err != nil {
			continue
		}
		atomic.StoreInt32(&c.inCallback, 1)
		c.api.processNotification(&note)
		atomic.StoreInt32(&c.inCallback, 0)
	}
}

func (c *wsConnector) generateID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := fmt.Sprintf("%s-%08d", c.localAddr, c.nextID)
	c.nextID++
	return id
}

func (c *wsConnector) SendRequest(operation string, params interface{}) (*wire.Response, error) {
	if atomic.LoadInt32(&c.inCallback) == 1 {
		return nil, ErrSendFromCallback
	}

	id := c.generateID()
	msg := map[string]interface{}{
		"type":      "request",
		"id":        id,
		"operation": operation,
	}
	if params != nil {
		msg["params"] = params
	}

	respCh := make(chan *wire.Response, 1)
	c.mu.Lock()
	c.pending[id] = respCh
	c.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return nil, err
	}

	return <-respCh, nil
}

func (c *wsConnector) Close() error {
	return c.conn.Close()
}
