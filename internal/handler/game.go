package handler

import (
	"encoding/json"

	"github.com/retropad/server/internal/room"
	"github.com/retropad/server/internal/ws"
)

// GameHandler handles game selection, start, and controller input.
type GameHandler struct {
	svc *room.Service
}

// NewGameHandler creates a new game handler.
func NewGameHandler(svc *room.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

type selectGameRequest struct {
	Code string              `json:"code"`
	Game room.GameDescriptor `json:"game"`
}

// HandleSelectGame handles game selection. Denials are silent.
func (h *GameHandler) HandleSelectGame(client *ws.Client, msg ws.Message) {
	var req selectGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		return
	}
	h.svc.SelectGame(req.Code, client.ID, req.Game)
}

type startGameRequest struct {
	Code string `json:"code"`
}

// HandleStartGame handles a start request. Denials are silent.
func (h *GameHandler) HandleStartGame(client *ws.Client, msg ws.Message) {
	var req startGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		return
	}
	h.svc.StartGame(req.Code, client.ID)
}

type controllerInputRequest struct {
	Code  string `json:"code"`
	Input string `json:"input"`
	Edge  string `json:"edge"`
}

// HandleControllerInput forwards one input edge toward the host. This is the
// hot path: malformed or stale input is dropped without a reply.
func (h *GameHandler) HandleControllerInput(client *ws.Client, msg ws.Message) {
	var req controllerInputRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		return
	}
	h.svc.RelayInput(req.Code, client.ID, req.Input, req.Edge)
}
