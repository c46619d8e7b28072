// persistence/postgresql.go
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// PostgreSQL 驱动
	_ "github.com/lib/pq"

	"github.com/Nithin0000007/Rock-paper-scissors/models"
)

// PostgreSQL is the plain database/sql implementation of Store.
type PostgreSQL struct {
	db *sql.DB
}

// NewPostgreSQL 创建 PostgreSQL 数据库连接
func NewPostgreSQL(host string, port int, user, password, dbname string) (*PostgreSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	// 设置连接池参数
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &PostgreSQL{db: db}, nil
}

// initTables 初始化数据库表结构
func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS matches (
            id SERIAL PRIMARY KEY,
            room_id TEXT NOT NULL,
            player1 TEXT NOT NULL,
            player1_score INT NOT NULL DEFAULT 0,
            player2 TEXT NOT NULL,
            player2_score INT NOT NULL DEFAULT 0,
            winner TEXT NOT NULL DEFAULT '',
            rounds INT NOT NULL DEFAULT 0,
            duration_seconds INT NOT NULL DEFAULT 0,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_matches_room_id ON matches (room_id)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches (winner)`)
	return err
}

func (p *PostgreSQL) SaveMatch(record *models.MatchRecord) error {
	_, err := p.db.Exec(`
        INSERT INTO matches
            (room_id, player1, player1_score, player2, player2_score, winner, rounds, duration_seconds)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.RoomID,
		record.Player1.Name, record.Player1.Score,
		record.Player2.Name, record.Player2.Score,
		record.Winner,
		record.Rounds,
		int(record.Duration.Seconds()),
	)
	return err
}

func (p *PostgreSQL) TopPlayers(limit int) ([]models.PlayerStanding, error) {
	rows, err := p.db.Query(standingsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []models.PlayerStanding
	for rows.Next() {
		var s models.PlayerStanding
		if err := rows.Scan(&s.Name, &s.Wins, &s.Matches); err != nil {
			return nil, err
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

func (p *PostgreSQL) Close() error {
	return p.db.Close()
}
