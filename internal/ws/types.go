package ws

import (
	"encoding/json"
)

// MessageType discriminates the websocket envelope.
type MessageType string

const (
	// MessageTypeMove carries a player move in move text ("e2e4", "O-O", ...).
	MessageTypeMove MessageType = "move"
	// MessageTypeGameState carries the full authoritative session state.
	MessageTypeGameState MessageType = "gameState"
	// MessageTypeError carries a human-readable error string.
	MessageTypeError MessageType = "error"
)

// Message is the websocket envelope exchanged with clients.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is the payload of a MessageTypeMove message.
type MovePayload struct {
	Move string `json:"move"`
}
