// Package roomid generates short join codes for rooms.
package roomid

import (
	"crypto/rand"
)

const (
	// Length of every generated identifier.
	Length = 6

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces collision-resistant room identifiers. Collisions against
// live rooms are still possible and are handled by the registry regenerating.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// New returns a fresh 6-character uppercase alphanumeric token.
func (g *Generator) New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		panic("roomid: random source unavailable: " + err.Error())
	}
	id := make([]byte, Length)
	for i, b := range buf {
		id[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(id)
}
