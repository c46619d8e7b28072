package network

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/gorilla/websocket"
)

type Connection interface {
	Send(event string, payload interface{}) error
	ReadEvent() (*Envelope, error)
	Close() error
	RemoteAddr() net.Addr
}

type WSConnection struct {
	conn      *websocket.Conn
	sendMutex sync.Mutex
}

func NewWSConnection(conn *websocket.Conn) *WSConnection {
	return &WSConnection{conn: conn}
}

// Send marshals payload into an event envelope and writes it as a single text
// frame. gorilla/websocket allows one concurrent writer, hence the mutex.
func (c *WSConnection) Send(event string, payload interface{}) error {
	var env Envelope
	env.Event = event
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		env.Data = data
	}

	frame, err := json.Marshal(&env)
	if err != nil {
		return err
	}

	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

// ReadEvent blocks until the next inbound frame and decodes its envelope.
func (c *WSConnection) ReadEvent() (*Envelope, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *WSConnection) Close() error {
	return c.conn.Close()
}

func (c *WSConnection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
