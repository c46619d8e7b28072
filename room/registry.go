// room/registry.go
package room

import (
	"errors"
	"sync"

	"github.com/Nithin0000007/Rock-paper-scissors/game"
	"github.com/Nithin0000007/Rock-paper-scissors/roomid"
)

var (
	ErrRoomNotFound = errors.New("room does not exist")
	ErrRoomFull     = errors.New("room is full")
)

// Registry exclusively owns every live Room plus the connection→room index.
// Its mutex guards only the two maps; per-room state is serialized by the
// room's own mutex, so traffic in different rooms proceeds in parallel.
type Registry struct {
	mutex     sync.RWMutex
	rooms     map[string]*Room
	byConn    map[string]string // connection id -> room id
	idgen     *roomid.Generator
	maxRounds int
}

func NewRegistry(maxRounds int) *Registry {
	return &Registry{
		rooms:     make(map[string]*Room),
		byConn:    make(map[string]string),
		idgen:     roomid.NewGenerator(),
		maxRounds: maxRounds,
	}
}

// CreateRoom allocates a fresh room with the creator seated in slot 0 and
// records the connection association. It always succeeds; an id collision
// with a live room is resolved by regenerating.
func (reg *Registry) CreateRoom(playerName, connID string) (string, Snapshot) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	id := reg.idgen.New()
	for {
		if _, taken := reg.rooms[id]; !taken {
			break
		}
		id = reg.idgen.New()
	}

	rm := NewRoom(id, reg.maxRounds)
	snap, _ := rm.AddPlayer(connID, playerName) // fresh room, cannot be full

	reg.rooms[id] = rm
	reg.byConn[connID] = id
	return id, snap
}

// JoinRoom seats a second player. Capacity is the only gate.
func (reg *Registry) JoinRoom(roomID, playerName, connID string) (Snapshot, error) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	rm, exists := reg.rooms[roomID]
	if !exists {
		return Snapshot{}, ErrRoomNotFound
	}

	snap, err := rm.AddPlayer(connID, playerName)
	if err != nil {
		return Snapshot{}, err
	}

	reg.byConn[connID] = roomID
	return snap, nil
}

// SubmitChoice routes a move to the connection's room. An unassociated
// connection or vanished room is a benign race: ok is false and nothing else
// happens.
func (reg *Registry) SubmitChoice(connID string, choice game.Choice) (*ChoiceOutcome, string, bool) {
	reg.mutex.RLock()
	roomID, assoc := reg.byConn[connID]
	rm := reg.rooms[roomID]
	reg.mutex.RUnlock()

	if !assoc || rm == nil {
		return nil, "", false
	}
	return rm.SubmitChoice(connID, choice), roomID, true
}

// LeaveResult describes the effect of a connection leaving its room.
type LeaveResult struct {
	RoomID    string
	Snapshot  Snapshot
	Destroyed bool
}

// RemoveConnection drops the player behind connID from its room and always
// clears the association. An emptied room is destroyed and its id becomes
// reusable immediately. ok is false when connID had no room.
func (reg *Registry) RemoveConnection(connID string) (*LeaveResult, bool) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	roomID, assoc := reg.byConn[connID]
	if !assoc {
		return nil, false
	}
	delete(reg.byConn, connID)

	rm, exists := reg.rooms[roomID]
	if !exists {
		return nil, false
	}

	snap, _, empty := rm.RemovePlayer(connID)
	if empty {
		delete(reg.rooms, roomID)
	}

	return &LeaveResult{RoomID: roomID, Snapshot: snap, Destroyed: empty}, true
}

func (reg *Registry) GetRoom(roomID string) (*Room, bool) {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()
	rm, exists := reg.rooms[roomID]
	return rm, exists
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()
	return len(reg.rooms)
}
