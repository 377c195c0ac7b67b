package match

import (
	"testing"

	"github.com/chimeramatch/server/internal/authoring"
	"github.com/chimeramatch/server/internal/wire"
)

// fakeGame is a minimal authoring.Game double for exercising the match
// lifecycle without depending on any real game.
type fakeGame struct {
	authoring.BaseGame
	started bool
	ended   bool
	done    bool
	winner  *authoring.Player
}

func newFakeGame(minPlayers int) *fakeGame {
	return &fakeGame{BaseGame: authoring.NewBaseGame(minPlayers)}
}

func (g *fakeGame) OnStart()                { g.started = true }
func (g *fakeGame) OnEnd()                  { g.ended = true }
func (g *fakeGame) Done() bool              { return g.done }
func (g *fakeGame) Winner() *authoring.Player { return g.winner }
func (g *fakeGame) GameState() interface{}  { return map[string]interface{}{"ok": true} }

type fakeSubscriber struct {
	notifications []*wire.Notification
}

func (s *fakeSubscriber) SendNotification(n *wire.Notification) error {
	s.notifications = append(s.notifications, n)
	return nil
}

func TestAddPlayerTransitionsToReady(t *testing.T) {
	g := newFakeGame(2)
	m := New("abc-def", "testgame", g)

	m.Lock()
	m.AddPlayer("alice")
	if m.State() != AwaitingPlayers {
		t.Fatalf("expected AwaitingPlayers with 1/2 players, got %v", m.State())
	}
	m.AddPlayer("bob")
	if m.State() != Ready {
		t.Fatalf("expected Ready once min players reached, got %v", m.State())
	}
	m.Unlock()
}

func TestStartBroadcastsToSubscribers(t *testing.T) {
	g := newFakeGame(2)
	m := New("abc-def", "testgame", g)
	sub := &fakeSubscriber{}

	m.Lock()
	m.AddPlayer("alice")
	m.AddPlayer("bob")
	m.AddSubscriber(sub)
	m.Start()
	m.Unlock()

	if !g.started {
		t.Fatalf("expected OnStart to have been called")
	}
	if m.State() != InProgress {
		t.Fatalf("expected InProgress after Start, got %v", m.State())
	}
	if len(sub.notifications) != 1 || sub.notifications[0].Event != wire.EventStart {
		t.Fatalf("expected one start notification, got %+v", sub.notifications)
	}
}

func TestEndMarksDoneAndReportsWinner(t *testing.T) {
	g := newFakeGame(2)
	m := New("abc-def", "testgame", g)
	sub := &fakeSubscriber{}

	m.Lock()
	p1 := m.AddPlayer("alice")
	m.AddPlayer("bob")
	m.AddSubscriber(sub)
	m.Start()
	g.done = true
	g.winner = p1
	m.End()
	m.Unlock()

	if !g.ended {
		t.Fatalf("expected OnEnd to have been called")
	}
	if m.State() != Done {
		t.Fatalf("expected Done after End, got %v", m.State())
	}

	snapshot := m.Snapshot()
	if snapshot["match-winner"] != "alice" {
		t.Fatalf("expected winner 'alice' in snapshot, got %v", snapshot["match-winner"])
	}

	last := sub.notifications[len(sub.notifications)-1]
	if last.Event != wire.EventEnd {
		t.Fatalf("expected final notification to be 'end', got %v", last.Event)
	}
}

func TestSnapshotOmitsGameStateBeforeInProgress(t *testing.T) {
	g := newFakeGame(2)
	m := New("abc-def", "testgame", g)

	m.Lock()
	m.AddPlayer("alice")
	snapshot := m.Snapshot()
	m.Unlock()

	if _, ok := snapshot["game-state"]; ok {
		t.Fatalf("expected no game-state before IN_PROGRESS, got %+v", snapshot)
	}
	if snapshot["match-status"] != AwaitingPlayers.String() {
		t.Fatalf("unexpected match-status: %v", snapshot["match-status"])
	}
}
