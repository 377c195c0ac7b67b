package client

// Game represents one game offered by a server. Obtained from
// ClientAPI.GetGames; never constructed directly.
type Game struct {
	api         *ClientAPI
	id          string
	description string
}

func (g *Game) ID() string          { return g.id }
func (g *Game) Description() string { return g.description }

// CreateMatch creates a new match for this game and seats playerName as
// its first player.
func (g *Game) CreateMatch(playerName string) (*Match, error) {
	params := map[string]interface{}{"game": g.id, "player-name": playerName}
	resp, err := g.api.sendRequest("create-match", params)
	if err != nil {
		return nil, err
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		return nil, &MalformedResponseError{Message: "Missing 'match-id' field", Response: resp}
	}
	matchID, ok := result["match-id"].(string)
	if !ok {
		return nil, &MalformedResponseError{Message: "Missing 'match-id' field", Response: resp}
	}

	m := newMatch(g.api, g, matchID, playerName)
	g.api.registerMatch(m)
	return m, nil
}

// JoinMatch joins an existing match as playerName.
func (g *Game) JoinMatch(matchID, playerName string) (*Match, error) {
	params := map[string]interface{}{"game": g.id, "match-id": matchID, "player-name": playerName}
	_, err := g.api.sendRequest("join-match", params)
	if err != nil {
		return nil, err
	}

	m := newMatch(g.api, g, matchID, playerName)
	g.api.registerMatch(m)
	return m, nil
}
