// services/match_history.go
package services

import (
	"time"

	"github.com/Nithin0000007/Rock-paper-scissors/models"
	"github.com/Nithin0000007/Rock-paper-scissors/persistence"
	"github.com/Nithin0000007/Rock-paper-scissors/room"
)

// MatchHistoryService persists finished matches and serves the leaderboard.
// A nil store disables history without touching the callers.
type MatchHistoryService struct {
	store persistence.Store
}

func NewMatchHistoryService(store persistence.Store) *MatchHistoryService {
	return &MatchHistoryService{store: store}
}

func (s *MatchHistoryService) Enabled() bool {
	return s.store != nil
}

// RecordMatch writes one finished match from its gameOver event.
func (s *MatchHistoryService) RecordMatch(roomID string, over *room.GameOver, rounds int, startedAt time.Time) error {
	if s.store == nil {
		return nil
	}

	record := &models.MatchRecord{
		RoomID: roomID,
		Player1: models.PlayerResult{
			Name:  over.Player1.Name,
			Score: over.Player1.Score,
		},
		Player2: models.PlayerResult{
			Name:  over.Player2.Name,
			Score: over.Player2.Score,
		},
		Winner:   over.Winner,
		Rounds:   rounds,
		Duration: time.Since(startedAt),
	}
	return s.store.SaveMatch(record)
}

func (s *MatchHistoryService) TopPlayers(limit int) ([]models.PlayerStanding, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.TopPlayers(limit)
}
