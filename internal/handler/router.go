package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/retropad/server/internal/room"
	"github.com/retropad/server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	lobby *LobbyHandler
	game  *GameHandler
}

// NewRouter creates a new message router.
func NewRouter(svc *room.Service) *Router {
	return &Router{
		lobby: NewLobbyHandler(svc),
		game:  NewGameHandler(svc),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Lobby messages
	case ws.TypeCreateRoom:
		r.lobby.HandleCreateRoom(cm.Client, msg)
	case ws.TypeJoinRoom:
		r.lobby.HandleJoinRoom(cm.Client, msg)
	case ws.TypeGetRoomInfo:
		r.lobby.HandleGetRoomInfo(cm.Client, msg)
	case ws.TypeKickPlayer:
		r.lobby.HandleKickPlayer(cm.Client, msg)
	case ws.TypeTransferOp:
		r.lobby.HandleTransferOp(cm.Client, msg)

	// Game messages
	case ws.TypeSelectGame:
		r.game.HandleSelectGame(cm.Client, msg)
	case ws.TypeStartGame:
		r.game.HandleStartGame(cm.Client, msg)
	case ws.TypeControllerInput:
		r.game.HandleControllerInput(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.lobby.HandleDisconnect(client)
}
