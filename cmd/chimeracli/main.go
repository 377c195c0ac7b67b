// Command chimeracli is a small interactive demo client: it connects to a
// running Chimera server, creates or joins a match for the requested
// game, and prints match state as notifications arrive.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chimeramatch/server/internal/client"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:14200", "host:port of the Chimera server")
	game := flag.String("game", "connectm", "game identifier to play")
	player := flag.String("player", "", "player name (required)")
	matchID := flag.String("match", "", "match to join; if empty, a new match is created")
	flag.Parse()

	if *player == "" {
		fmt.Println("ERROR: -player is required")
		os.Exit(1)
	}

	host, port, err := splitAddr(*addr)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	chimera, err := client.NewChimera(host, port, nil)
	if err != nil {
		fmt.Printf("ERROR: Could not connect to chimera server at %s\n", *addr)
		os.Exit(1)
	}
	defer chimera.Close()

	games, err := chimera.GetGames()
	if err != nil {
		log.Fatalf("Failed to list games: %v", err)
	}
	g, ok := games[*game]
	if !ok {
		fmt.Printf("ERROR: Server at %s does not support game '%s'\n", *addr, *game)
		os.Exit(1)
	}

	match := connectOrRetry(g, *player, *matchID)

	for match.Status() != client.StatusInProgress && match.Status() != client.StatusDone {
		match.WaitForUpdate()
	}

	printState(match)
	for match.Status() != client.StatusDone {
		match.WaitForUpdate()
		printState(match)
	}

	if winner := match.Winner(); winner != nil {
		fmt.Printf("Match over. Winner: %s\n", *winner)
	} else {
		fmt.Println("Match over. No winner.")
	}
}

// connectOrRetry creates or joins a match under playerName, retrying with
// numeric suffixes (playerName2 .. playerName9) if the name is already
// taken in that match, and exiting on any other error.
func connectOrRetry(g *client.Game, playerName, matchID string) *client.Match {
	suffix := 1
	for {
		name := playerName
		if suffix > 1 {
			name = fmt.Sprintf("%s%d", playerName, suffix)
		}

		var match *client.Match
		var err error
		if matchID == "" {
			match, err = g.CreateMatch(name)
			if err == nil {
				fmt.Printf("Your match ID is %s\n", match.ID())
				fmt.Println("Waiting for other player(s) to join...")
			}
		} else {
			match, err = g.JoinMatch(matchID, name)
		}

		if err == nil {
			return match
		}

		switch e := err.(type) {
		case *client.DuplicatePlayer:
			if suffix == 9 {
				fmt.Printf("ERROR: There is already a player called '%s' and suffixes 2-9 are also taken\n", playerName)
				os.Exit(1)
			}
			suffix++
		case *client.UnknownMatch:
			fmt.Printf("ERROR: No such match: %s\n", matchID)
			os.Exit(1)
		case *client.AlreadyInAMatch:
			fmt.Println("ERROR: Already in another match")
			os.Exit(1)
		case *client.ErrorResponse:
			fmt.Printf("ERROR: %s\n", e.Message)
			os.Exit(1)
		default:
			log.Fatalf("Failed to connect to match: %v", err)
		}
	}
}

func printState(match *client.Match) {
	state, err := json.MarshalIndent(match.GameState(), "", "  ")
	if err != nil {
		fmt.Printf("[%s] <unprintable state>\n", match.Status())
		return
	}
	fmt.Printf("[%s]\n%s\n", match.Status(), state)
}

func splitAddr(addr string) (host, port string, err error) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i], addr[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("address %q is not in host:port form", addr)
}
