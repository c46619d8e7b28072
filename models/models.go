// models/models.go
package models

import "time"

// MatchRecord is one completed match, written to the store when the room
// reaches its round limit.
type MatchRecord struct {
	RoomID   string        `json:"room_id"`
	Player1  PlayerResult  `json:"player1"`
	Player2  PlayerResult  `json:"player2"`
	Winner   string        `json:"winner"` // display name, empty on a draw
	Rounds   int           `json:"rounds"`
	Duration time.Duration `json:"duration"`
}

// PlayerResult is one player's final line in a match record.
type PlayerResult struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PlayerStanding is a leaderboard row aggregated over recorded matches.
type PlayerStanding struct {
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}
