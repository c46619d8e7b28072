package broadcast

import (
	"net"
	"testing"

	"github.com/Nithin0000007/Rock-paper-scissors/network"
	"github.com/Nithin0000007/Rock-paper-scissors/room"
	"github.com/Nithin0000007/Rock-paper-scissors/session"
)

// MockConnection records every event sent through it.
type MockConnection struct {
	events []string
}

func (m *MockConnection) Send(event string, payload interface{}) error {
	m.events = append(m.events, event)
	return nil
}
func (m *MockConnection) ReadEvent() (*network.Envelope, error) { return nil, nil }
func (m *MockConnection) Close() error                          { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                  { return &net.TCPAddr{} }

func TestRoomBroadcaster_BroadcastToRoom(t *testing.T) {
	registry := room.NewRegistry(room.DefaultMaxRounds)
	sessions := session.NewManager()

	conn1, conn2 := &MockConnection{}, &MockConnection{}
	sessions.Add(session.NewSession("c1", conn1))
	sessions.Add(session.NewSession("c2", conn2))

	roomID, _ := registry.CreateRoom("Alice", "c1")
	registry.JoinRoom(roomID, "Bob", "c2")

	b := NewRoomBroadcaster(registry, sessions)
	if err := b.BroadcastToRoom(roomID, network.EventRoomUpdate, nil); err != nil {
		t.Fatalf("BroadcastToRoom failed: %v", err)
	}

	for i, conn := range []*MockConnection{conn1, conn2} {
		if len(conn.events) != 1 || conn.events[0] != network.EventRoomUpdate {
			t.Errorf("Connection %d should have received one roomUpdate, got %v", i+1, conn.events)
		}
	}
}

func TestRoomBroadcaster_UnknownRoom(t *testing.T) {
	b := NewRoomBroadcaster(room.NewRegistry(room.DefaultMaxRounds), session.NewManager())

	if err := b.BroadcastToRoom("NOSUCH", network.EventRoomUpdate, nil); err != ErrRoomNotFound {
		t.Fatalf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomBroadcaster_SendToConnection(t *testing.T) {
	sessions := session.NewManager()
	conn := &MockConnection{}
	sessions.Add(session.NewSession("c1", conn))

	b := NewRoomBroadcaster(room.NewRegistry(room.DefaultMaxRounds), sessions)

	if err := b.SendToConnection("c1", network.EventError, nil); err != nil {
		t.Fatalf("SendToConnection failed: %v", err)
	}
	if len(conn.events) != 1 || conn.events[0] != network.EventError {
		t.Errorf("Expected one error event, got %v", conn.events)
	}

	// Unknown connections are dropped silently.
	if err := b.SendToConnection("ghost", network.EventError, nil); err != nil {
		t.Errorf("Send to an unknown connection should be a no-op, got %v", err)
	}
}
