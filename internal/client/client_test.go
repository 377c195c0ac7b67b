package client_test

import (
	"testing"

	"github.com/chimeramatch/server/internal/client"
	"github.com/chimeramatch/server/internal/games/p1wins"
	"github.com/chimeramatch/server/internal/server"
	"github.com/chimeramatch/server/internal/slugs"
	"github.com/chimeramatch/server/internal/transport"
)

func newFakeServer() *transport.FakeServer {
	dispatcher := server.NewDispatcher(slugs.NewMemoryAllocator(1), nil)
	dispatcher.RegisterGame("p1wins", p1wins.New, "Player One Wins")
	return transport.NewFakeServer(dispatcher)
}

func TestFakeChimeraCreateJoinAndPlay(t *testing.T) {
	fs := newFakeServer()
	alice := client.NewFakeChimera(fs, "alice-conn", nil)
	bob := client.NewFakeChimera(fs, "bob-conn", nil)

	games, err := alice.GetGames()
	if err != nil {
		t.Fatalf("GetGames failed: %v", err)
	}
	p1winsGame, ok := games["p1wins"]
	if !ok {
		t.Fatalf("expected p1wins in games list, got %+v", games)
	}

	aliceMatch, err := p1winsGame.CreateMatch("alice")
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	if aliceMatch.Status() != client.StatusAwaitingPlayers {
		t.Fatalf("expected awaiting-players status, got %s", aliceMatch.Status())
	}

	bobGames, err := bob.GetGames()
	if err != nil {
		t.Fatalf("GetGames (bob) failed: %v", err)
	}
	bobMatch, err := bobGames["p1wins"].JoinMatch(aliceMatch.ID(), "bob")
	if err != nil {
		t.Fatalf("JoinMatch failed: %v", err)
	}

	// The fake client does not auto-process notifications: the queued
	// "start" notification must be drained explicitly.
	alice.ProcessNotifications()
	bob.ProcessNotifications()

	if aliceMatch.Status() != client.StatusInProgress {
		t.Fatalf("expected in-progress after both players joined, got %s", aliceMatch.Status())
	}
	if bobMatch.Status() != client.StatusInProgress {
		t.Fatalf("expected in-progress for bob's match handle, got %s", bobMatch.Status())
	}

	if _, err := aliceMatch.GameAction("move", map[string]string{"phrase": "hi"}); err != nil {
		t.Fatalf("alice's move failed: %v", err)
	}
	alice.ProcessNotifications()
	bob.ProcessNotifications()

	if _, err := bobMatch.GameAction("move", map[string]string{"phrase": "bye"}); err != nil {
		t.Fatalf("bob's move failed: %v", err)
	}
	alice.ProcessNotifications()
	bob.ProcessNotifications()

	if aliceMatch.Status() != client.StatusDone {
		t.Fatalf("expected match done after both moves, got %s", aliceMatch.Status())
	}
	if aliceMatch.Winner() == nil || *aliceMatch.Winner() != "alice" {
		t.Fatalf("expected alice to be reported as the winner, got %v", aliceMatch.Winner())
	}
}

func TestFakeChimeraDuplicatePlayerName(t *testing.T) {
	fs := newFakeServer()
	alice := client.NewFakeChimera(fs, "alice-conn", nil)
	mallory := client.NewFakeChimera(fs, "mallory-conn", nil)

	games, _ := alice.GetGames()
	match, err := games["p1wins"].CreateMatch("alice")
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	mGames, _ := mallory.GetGames()
	_, err = mGames["p1wins"].JoinMatch(match.ID(), "alice")
	if _, ok := err.(*client.DuplicatePlayer); !ok {
		t.Fatalf("expected *client.DuplicatePlayer, got %v", err)
	}
}

func TestFakeChimeraNotificationCallback(t *testing.T) {
	fs := newFakeServer()

	var received []string
	alice := client.NewFakeChimera(fs, "alice-conn", func(n *client.MatchNotification) {
		received = append(received, n.Event)
		n.Process()
	})
	bob := client.NewFakeChimera(fs, "bob-conn", nil)

	games, _ := alice.GetGames()
	aliceMatch, err := games["p1wins"].CreateMatch("alice")
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	bobGames, _ := bob.GetGames()
	if _, err := bobGames["p1wins"].JoinMatch(aliceMatch.ID(), "bob"); err != nil {
		t.Fatalf("JoinMatch failed: %v", err)
	}

	alice.ProcessNotifications()

	if len(received) != 1 || received[0] != client.EventStart {
		t.Fatalf("expected callback invoked once with 'start', got %+v", received)
	}
	if aliceMatch.Status() != client.StatusInProgress {
		t.Fatalf("expected callback's Process() call to have advanced match status")
	}
}
