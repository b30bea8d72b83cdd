package handler

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/retropad/server/internal/room"
	"github.com/retropad/server/internal/ws"
)

// LobbyHandler handles room lifecycle messages.
type LobbyHandler struct {
	svc *room.Service
}

// NewLobbyHandler creates a new lobby handler.
func NewLobbyHandler(svc *room.Service) *LobbyHandler {
	return &LobbyHandler{svc: svc}
}

type createRoomResponse struct {
	Code    string        `json:"code"`
	Players []room.Player `json:"players"`
}

// HandleCreateRoom handles room creation by a host display.
func (h *LobbyHandler) HandleCreateRoom(client *ws.Client, _ ws.Message) {
	r := h.svc.CreateRoom(client.ID)

	resp, _ := ws.NewMessage(ws.TypeRoomCreated, createRoomResponse{
		Code:    r.Code,
		Players: []room.Player{},
	})
	client.SendMessage(resp)
}

type joinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type joinRoomResponse struct {
	Success bool          `json:"success"`
	Players []room.Player `json:"players,omitempty"`
	IsOp    bool          `json:"isOp"`
	Message string        `json:"message,omitempty"`
}

// HandleJoinRoom handles a controller joining an existing room.
func (h *LobbyHandler) HandleJoinRoom(client *ws.Client, msg ws.Message) {
	var req joinRoomRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("room code is required"))
		return
	}

	joined, players, err := h.svc.Join(req.Code, client.ID, req.Name)
	if err != nil {
		resp, _ := ws.NewMessage(ws.TypeJoinResult, joinRoomResponse{
			Success: false,
			Message: joinFailureMessage(err),
		})
		client.SendMessage(resp)
		return
	}

	resp, _ := ws.NewMessage(ws.TypeJoinResult, joinRoomResponse{
		Success: true,
		Players: players,
		IsOp:    joined.IsOp,
	})
	client.SendMessage(resp)
}

func joinFailureMessage(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomFull):
		return "Room full"
	case errors.Is(err, room.ErrRoomNotFound):
		return "Room not found"
	default:
		return "Unable to join room"
	}
}

type roomInfoRequest struct {
	Code string `json:"code"`
}

type roomInfoResponse struct {
	Success bool                 `json:"success"`
	Players []room.Player        `json:"players,omitempty"`
	Game    *room.GameDescriptor `json:"game,omitempty"`
	Message string               `json:"message,omitempty"`
}

// HandleGetRoomInfo lets a reconnecting viewer resynchronize room state.
func (h *LobbyHandler) HandleGetRoomInfo(client *ws.Client, msg ws.Message) {
	var req roomInfoRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("room code is required"))
		return
	}

	players, game, err := h.svc.RoomInfo(req.Code)
	if err != nil {
		resp, _ := ws.NewMessage(ws.TypeRoomInfo, roomInfoResponse{
			Success: false,
			Message: "Room not found",
		})
		client.SendMessage(resp)
		return
	}

	resp, _ := ws.NewMessage(ws.TypeRoomInfo, roomInfoResponse{
		Success: true,
		Players: players,
		Game:    game,
	})
	client.SendMessage(resp)
}

type targetPlayerRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// HandleKickPlayer handles a kick request. Denials are silent.
func (h *LobbyHandler) HandleKickPlayer(client *ws.Client, msg ws.Message) {
	var req targetPlayerRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" || req.PlayerID == "" {
		return
	}
	h.svc.Kick(req.Code, client.ID, req.PlayerID)
}

// HandleTransferOp handles an operator transfer request. Denials are silent.
func (h *LobbyHandler) HandleTransferOp(client *ws.Client, msg ws.Message) {
	var req targetPlayerRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" || req.PlayerID == "" {
		return
	}
	h.svc.TransferOp(req.Code, client.ID, req.PlayerID)
}

// HandleDisconnect handles client disconnection.
func (h *LobbyHandler) HandleDisconnect(client *ws.Client) {
	slog.Debug("connection closed", "client", client.ID)
	h.svc.Disconnect(client.ID)
}
