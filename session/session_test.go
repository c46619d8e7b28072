package session

import (
	"net"
	"testing"
	"time"

	"github.com/Nithin0000007/Rock-paper-scissors/network"
)

// MockConnection is a test double for the network.Connection interface.
type MockConnection struct {
	sent []string
}

func (m *MockConnection) Send(event string, payload interface{}) error {
	m.sent = append(m.sent, event)
	return nil
}
func (m *MockConnection) ReadEvent() (*network.Envelope, error) { return nil, nil }
func (m *MockConnection) Close() error                          { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                  { return &net.TCPAddr{} }

func TestNewManager(t *testing.T) {
	manager := NewManager()
	if manager == nil {
		t.Fatal("NewManager should not return nil")
	}
	if manager.sessions == nil {
		t.Fatal("NewManager should initialize the sessions map")
	}
}

func TestManager_Add_Get_Remove(t *testing.T) {
	manager := NewManager()
	sessionID := "test_session_1"
	sess := NewSession(sessionID, &MockConnection{})

	manager.Add(sess)
	if manager.Count() != 1 {
		t.Fatalf("Expected session count to be 1, got %d", manager.Count())
	}

	retrievedSess, exists := manager.Get(sessionID)
	if !exists {
		t.Fatal("Get should find the added session")
	}
	if retrievedSess != sess {
		t.Fatal("Get should return the same session instance")
	}

	manager.Remove(sessionID)
	if manager.Count() != 0 {
		t.Fatalf("Expected session count to be 0 after removal, got %d", manager.Count())
	}

	_, exists = manager.Get(sessionID)
	if exists {
		t.Fatal("Get should not find the removed session")
	}
}

func TestSession_SendTouchesActivity(t *testing.T) {
	conn := &MockConnection{}
	sess := NewSession("test_session", conn)

	before := sess.LastActive
	time.Sleep(time.Millisecond)

	if err := sess.Send("ping", nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(conn.sent) != 1 || conn.sent[0] != "ping" {
		t.Errorf("Expected one sent event %q, got %v", "ping", conn.sent)
	}
	if !sess.LastActive.After(before) {
		t.Error("Send should advance LastActive")
	}
}
