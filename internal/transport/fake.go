package transport

import (
	"sync"

	"github.com/chimeramatch/server/internal/server"
	"github.com/chimeramatch/server/internal/wire"
)

// FakeSender is an in-process server.Sender that splits outgoing envelopes
// into a response queue and a notification queue, exactly as the
// original's FakeConnectedClient separates "response" from "notification"
// messages rather than interleaving them on a socket.
type FakeSender struct {
	mu            sync.Mutex
	responses     []*wire.Response
	notifications []*wire.Notification
	closed        bool
}

// NewFakeSender constructs an empty FakeSender.
func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

// Send implements server.Sender.
func (s *FakeSender) Send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg := v.(type) {
	case *wire.Response:
		s.responses = append(s.responses, msg)
	case *wire.Notification:
		s.notifications = append(s.notifications, msg)
	}
	return nil
}

// Close implements server.Sender, marking the fake connection closed so
// tests can assert on disconnection without a real socket to tear down.
func (s *FakeSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *FakeSender) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// NextResponse pops the oldest queued response, or returns nil if none.
func (s *FakeSender) NextResponse() *wire.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.responses) == 0 {
		return nil
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r
}

// NextNotification pops the oldest queued notification, or returns nil if
// none.
func (s *FakeSender) NextNotification() *wire.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.notifications) == 0 {
		return nil
	}
	n := s.notifications[0]
	s.notifications = s.notifications[1:]
	return n
}

// FakeServer wraps a Dispatcher with the fake-client bookkeeping a test
// harness needs, mirroring FakeChimeraServer.
type FakeServer struct {
	Dispatcher *server.Dispatcher
}

// NewFakeServer constructs a FakeServer around an already-configured
// dispatcher (games registered, allocator/history wired as desired).
func NewFakeServer(dispatcher *server.Dispatcher) *FakeServer {
	return &FakeServer{Dispatcher: dispatcher}
}

// CreateClient creates a new fake connected client with its own
// independent response/notification queues.
func (fs *FakeServer) CreateClient(id string) (*server.Client, *FakeSender) {
	sender := NewFakeSender()
	client := server.NewClient(id, sender)
	return client, sender
}

// SendMessage synchronously feeds a raw client message to the dispatcher,
// exactly as fake_send_message does: no goroutine hop, so by the time this
// call returns, the client's FakeSender queues hold every response and
// notification the dispatcher produced as a result.
func (fs *FakeServer) SendMessage(client *server.Client, raw []byte) {
	fs.Dispatcher.HandleMessage(client, raw)
}
