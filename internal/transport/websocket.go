// Package transport provides the duplex message channel between a
// connected client and the dispatcher: a real gorilla/websocket adapter
// for production, and an in-process fake for tests, both presenting the
// same observable response/notification ordering.
package transport

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/chimeramatch/server/internal/server"
)

const (
	maxMessageSize = 32 * 1024
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSConn is the connected-client adapter: a per-connection read/write pump
// pair around a gorilla/websocket connection.
type WSConn struct {
	conn *websocket.Conn
	send chan []byte
}

// Send implements server.Sender by JSON-encoding v and queuing it for the
// write pump.
func (c *WSConn) Send(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.send <- data
	return nil
}

// Close implements server.Sender, terminating the underlying connection.
// The read pump observes the resulting error and unwinds on its own.
func (c *WSConn) Close() error {
	return c.conn.Close()
}

// ServeWs upgrades an HTTP request to a websocket connection, wires it to
// the dispatcher as a new client, and starts its read/write pumps. The
// write pump runs in its own goroutine; the read pump runs on the calling
// goroutine, so this blocks until the connection is closed.
func ServeWs(dispatcher *server.Dispatcher, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chimera: websocket upgrade failed: %v", err)
		return
	}

	wsConn := &WSConn{conn: conn, send: make(chan []byte, 256)}
	client := server.NewClient(uuid.New().String(), wsConn)

	go writePump(wsConn)
	readPump(dispatcher, client, wsConn)
}

func readPump(dispatcher *server.Dispatcher, client *server.Client, wsConn *WSConn) {
	defer func() {
		close(wsConn.send)
		wsConn.conn.Close()
	}()

	wsConn.conn.SetReadLimit(maxMessageSize)
	wsConn.conn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.conn.SetPongHandler(func(string) error {
		wsConn.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := wsConn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("chimera: read error from %s: %v", client.ID, err)
			}
			break
		}
		message = bytes.TrimSpace(message)
		dispatcher.HandleMessage(client, message)
	}
}

func writePump(wsConn *WSConn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.conn.Close()
	}()

	for {
		select {
		case message, ok := <-wsConn.send:
			wsConn.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			wsConn.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
