package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - client to server
const (
	TypeCreateRoom      = "create-room"
	TypeJoinRoom        = "join-room"
	TypeGetRoomInfo     = "get-room-info"
	TypeSelectGame      = "select-game"
	TypeStartGame       = "start-game"
	TypeKickPlayer      = "kick-player"
	TypeTransferOp      = "transfer-op"
	TypeControllerInput = "controller-input"
)

// Message types - server to client
const (
	TypeRoomCreated  = "room-created"
	TypeJoinResult   = "join-result"
	TypeRoomInfo     = "room-info"
	TypePlayerJoined = "player-joined"
	TypePlayerLeft   = "player-left"
	TypeGameSelected = "game-selected"
	TypeGameStarted  = "game-started"
	TypeKicked       = "kicked"
	TypeRoomClosed   = "room-closed"
	TypePlayerInput  = "player-input"
	TypeError        = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
