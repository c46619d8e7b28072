package room

import "github.com/Nithin0000007/Rock-paper-scissors/game"

// Player is one occupied slot in a room. ID is the connection identity of the
// owning session.
type Player struct {
	ID     string
	Name   string
	Score  int
	Choice game.Choice
	Ready  bool
}

// snapshot captures the player for broadcasting. Choice is included as-is, so
// callers decide whether it is taken before or after the round reset.
func (p *Player) snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		ID:      p.ID,
		Name:    p.Name,
		Score:   p.Score,
		Choice:  string(p.Choice),
		IsReady: p.Ready,
	}
}

// PlayerSnapshot is the wire form of a player.
type PlayerSnapshot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Choice  string `json:"choice"`
	IsReady bool   `json:"isReady"`
}
