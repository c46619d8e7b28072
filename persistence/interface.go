// persistence/interface.go
package persistence

import (
	"fmt"

	"github.com/Nithin0000007/Rock-paper-scissors/models"
)

// Store 对局历史存储接口
type Store interface {
	SaveMatch(record *models.MatchRecord) error
	TopPlayers(limit int) ([]models.PlayerStanding, error)
	Close() error
}

// 错误定义
var (
	ErrRecordNotFound = fmt.Errorf("record not found")
)

// standingsQuery aggregates wins and match counts per player name across both
// seats. Shared by the raw and the GORM store.
const standingsQuery = `
	SELECT name,
	       COUNT(*) FILTER (WHERE winner = name) AS wins,
	       COUNT(*)                              AS matches
	FROM (
	    SELECT player1 AS name, winner FROM matches
	    UNION ALL
	    SELECT player2 AS name, winner FROM matches
	) seats
	GROUP BY name
	ORDER BY wins DESC, matches ASC, name ASC
	LIMIT $1`
