// room/room.go
package room

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Nithin0000007/Rock-paper-scissors/game"
)

// MaxPlayers is fixed: a room is a single two-player match.
const MaxPlayers = 2

// DefaultMaxRounds is the number of rounds played before a match ends.
const DefaultMaxRounds = 5

// Status 表示房间的业务状态
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	default:
		return "waiting"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Snapshot is the canonical room-state broadcast sent after every mutation.
type Snapshot struct {
	Players   []PlayerSnapshot `json:"players"`
	GameState Status           `json:"gameState"`
	Round     int              `json:"round"`
	MaxRounds int              `json:"maxRounds"`
}

// RoundResult carries both players' post-round state with the chosen moves
// still visible, captured before the reset clears them.
type RoundResult struct {
	Winner  string         `json:"winner"` // connection id of the winner, "" on a tie
	Player1 PlayerSnapshot `json:"player1"`
	Player2 PlayerSnapshot `json:"player2"`
	Round   int            `json:"round"`
}

// GameOver carries final player state once the round limit is reached.
type GameOver struct {
	Player1 PlayerSnapshot `json:"player1"`
	Player2 PlayerSnapshot `json:"player2"`
	Winner  string         `json:"winner"` // name of the overall winner, "" on a draw
}

// ChoiceOutcome is everything a choice submission produced, in the order the
// gateway must broadcast it: RoundResult, then GameOver, then Snapshot.
// RoundResult and GameOver are nil when resolution did not fire.
type ChoiceOutcome struct {
	RoundResult *RoundResult
	GameOver    *GameOver
	Snapshot    Snapshot
}

// Room 是一场对局的核心结构. All state behind the mutex; every event against
// the room holds it for the full mutation, so same-room events never
// interleave and the "both ready" check is atomic with the resolution.
type Room struct {
	ID        string
	MaxRounds int

	mu        sync.Mutex
	players   []*Player
	status    Status
	round     int
	createdAt time.Time
}

// NewRoom 创建一个新房间
func NewRoom(id string, maxRounds int) *Room {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Room{
		ID:        id,
		MaxRounds: maxRounds,
		players:   make([]*Player, 0, MaxPlayers),
		status:    StatusWaiting,
		createdAt: time.Now(),
	}
}

// AddPlayer 添加一个玩家到房间. Slot order is join order; slot 0 is the
// creator. Capacity is the only gate.
func (r *Room) AddPlayer(id, name string) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) >= MaxPlayers {
		return Snapshot{}, ErrRoomFull
	}

	r.players = append(r.players, &Player{ID: id, Name: name})
	return r.snapshot(), nil
}

// RemovePlayer 从房间移除一个玩家. Returns the post-removal snapshot, whether
// the player was present, and whether the room is now empty. Status, round
// and the remaining player's state are deliberately left untouched.
func (r *Room) RemovePlayer(id string) (Snapshot, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return r.snapshot(), true, len(r.players) == 0
		}
	}
	return r.snapshot(), false, len(r.players) == 0
}

// SubmitChoice records a player's move and fires round resolution when both
// slots are ready. A repeat submission before the opponent answers silently
// overwrites the earlier move. Finished rooms ignore submissions entirely.
func (r *Room) SubmitChoice(id string, choice game.Choice) *ChoiceOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := &ChoiceOutcome{}

	if r.status == StatusFinished {
		out.Snapshot = r.snapshot()
		return out
	}

	player := r.playerByID(id)
	if player == nil {
		out.Snapshot = r.snapshot()
		return out
	}

	player.Choice = choice
	player.Ready = true

	if len(r.players) == MaxPlayers && r.players[0].Ready && r.players[1].Ready {
		r.resolveRound(out)
	}

	out.Snapshot = r.snapshot()
	return out
}

// resolveRound runs the fixed resolution sequence. Caller holds the mutex and
// has verified both players are present and ready, which is exactly the
// contract game.Resolve demands.
func (r *Room) resolveRound(out *ChoiceOutcome) {
	p1, p2 := r.players[0], r.players[1]

	r.status = StatusPlaying

	var winnerID string
	switch game.Resolve(p1.Choice, p2.Choice) {
	case game.OutcomePlayer1Wins:
		p1.Score++
		winnerID = p1.ID
	case game.OutcomePlayer2Wins:
		p2.Score++
		winnerID = p2.ID
	}

	r.round++

	// Captured before the reset so the chosen moves are still visible.
	out.RoundResult = &RoundResult{
		Winner:  winnerID,
		Player1: p1.snapshot(),
		Player2: p2.snapshot(),
		Round:   r.round,
	}

	p1.Choice, p1.Ready = game.ChoiceNone, false
	p2.Choice, p2.Ready = game.ChoiceNone, false

	if r.round >= r.MaxRounds {
		r.status = StatusFinished
		out.GameOver = &GameOver{
			Player1: p1.snapshot(),
			Player2: p2.snapshot(),
			Winner:  overallWinner(p1, p2),
		}
	}
}

func overallWinner(p1, p2 *Player) string {
	switch {
	case p1.Score > p2.Score:
		return p1.Name
	case p2.Score > p1.Score:
		return p2.Name
	default:
		return ""
	}
}

func (r *Room) playerByID(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Snapshot returns the current observable room state.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// snapshot builds the wire state. Caller holds the mutex.
func (r *Room) snapshot() Snapshot {
	players := make([]PlayerSnapshot, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p.snapshot())
	}
	return Snapshot{
		Players:   players,
		GameState: r.status,
		Round:     r.round,
		MaxRounds: r.MaxRounds,
	}
}

// PlayerIDs returns the connection identities currently seated, used by the
// broadcaster to fan events out.
func (r *Room) PlayerIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.ID)
	}
	return ids
}

func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}
