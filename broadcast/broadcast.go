// broadcast/broadcast.go
package broadcast

import (
	"errors"

	"github.com/Nithin0000007/Rock-paper-scissors/room"
	"github.com/Nithin0000007/Rock-paper-scissors/session"
)

var ErrRoomNotFound = errors.New("room not found")

// 广播接口
type Broadcaster interface {
	BroadcastToRoom(roomID string, event string, payload interface{}) error
	SendToConnection(connID string, event string, payload interface{}) error
}

// RoomBroadcaster fans events out to every session seated in a room.
type RoomBroadcaster struct {
	registry       *room.Registry
	sessionManager *session.Manager
}

func NewRoomBroadcaster(registry *room.Registry, sessionManager *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{
		registry:       registry,
		sessionManager: sessionManager,
	}
}

func (b *RoomBroadcaster) BroadcastToRoom(roomID string, event string, payload interface{}) error {
	rm, exists := b.registry.GetRoom(roomID)
	if !exists {
		return ErrRoomNotFound
	}

	for _, connID := range rm.PlayerIDs() {
		sess, exists := b.sessionManager.Get(connID)
		if !exists {
			continue
		}
		if err := sess.Send(event, payload); err != nil {
			// A failed send means the connection is on its way out; its own
			// read loop handles the teardown.
			continue
		}
	}
	return nil
}

func (b *RoomBroadcaster) SendToConnection(connID string, event string, payload interface{}) error {
	sess, exists := b.sessionManager.Get(connID)
	if !exists {
		return nil
	}
	return sess.Send(event, payload)
}
