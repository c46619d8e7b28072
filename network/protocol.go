package network

import "encoding/json"

// Inbound event names.
const (
	EventCreateRoom = "createRoom"
	EventJoinRoom   = "joinRoom"
	EventMakeChoice = "makeChoice"
	EventPing       = "ping"
)

// Outbound event names.
const (
	EventRoomCreated = "roomCreated"
	EventRoomUpdate  = "roomUpdate"
	EventRoundResult = "roundResult"
	EventGameOver    = "gameOver"
	EventPlayerLeft  = "playerLeft"
	EventError       = "error"
)

// Envelope is the wire frame: a JSON text message carrying an event name and
// an event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type MakeChoiceRequest struct {
	Choice string `json:"choice"`
}

type RoomCreatedMessage struct {
	RoomID string `json:"roomId"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}
