package room

import (
	"log/slog"

	"github.com/retropad/server/internal/ws"
)

// Registry is the coordinator's view of the transport layer: liveness
// queries and outbound delivery addressed by connection ID. Sends must not
// block; delivery is best-effort.
type Registry interface {
	IsConnected(id string) bool
	Send(id string, msg ws.Message) bool
}

// Service implements the room session operations: lifecycle, game selection
// and start, and input relay. Each operation mutates at most one room, and
// that room's own mutex makes the mutation atomic.
type Service struct {
	store *Store
	conns Registry
}

// NewService creates a service over the given store and connection registry.
func NewService(store *Store, conns Registry) *Service {
	return &Service{store: store, conns: conns}
}

// Store exposes the underlying room store.
func (s *Service) Store() *Store {
	return s.store
}

type playersPayload struct {
	Players []Player `json:"players"`
}

type inputPayload struct {
	PlayerSlot int    `json:"playerSlot"`
	Input      string `json:"input"`
	Edge       string `json:"edge"`
}

// CreateRoom creates a room hosted by the given connection. The host is a
// display, not a controller: it takes no player slot.
func (s *Service) CreateRoom(hostID string) *Room {
	return s.store.Create(hostID)
}

// Join adds a controller to a room and announces the updated player list to
// everyone in it.
func (s *Service) Join(code, connID, name string) (Player, []Player, error) {
	r := s.store.Get(code)
	if r == nil {
		return Player{}, nil, ErrRoomNotFound
	}
	joined, players, err := r.AddPlayer(connID, name)
	if err != nil {
		return Player{}, nil, err
	}
	s.broadcast(r, ws.TypePlayerJoined, playersPayload{Players: players})
	slog.Info("player joined", "room", code, "player", joined.Name, "op", joined.IsOp)
	return joined, players, nil
}

// RoomInfo returns the current players and selected game, letting a
// late-joining viewer resynchronize without buffered events.
func (s *Service) RoomInfo(code string) ([]Player, *GameDescriptor, error) {
	r := s.store.Get(code)
	if r == nil {
		return nil, nil, ErrRoomNotFound
	}
	return r.Players(), r.SelectedGame(), nil
}

// Kick removes a player at the request of the host or operator. Unauthorized
// requests are silent no-ops. The target is notified directly, then the room
// sees the shrunken player list.
func (s *Service) Kick(code, requesterID, targetID string) {
	r := s.store.Get(code)
	if r == nil {
		return
	}
	kicked, players, ok := r.Kick(requesterID, targetID)
	if !ok {
		slog.Debug("kick denied", "room", code, "requester", requesterID)
		return
	}
	msg, _ := ws.NewMessage(ws.TypeKicked, struct{}{})
	s.conns.Send(targetID, msg)
	s.broadcast(r, ws.TypePlayerLeft, playersPayload{Players: players})
	slog.Info("player kicked", "room", code, "player", kicked.Name)
}

// TransferOp hands the operator privilege to the target. Unauthorized
// requests are silent no-ops.
func (s *Service) TransferOp(code, requesterID, targetID string) {
	r := s.store.Get(code)
	if r == nil {
		return
	}
	players, ok := r.TransferOp(requesterID, targetID)
	if !ok {
		slog.Debug("transfer-op denied", "room", code, "requester", requesterID)
		return
	}
	// Reuse player-joined so clients just refresh the roster.
	s.broadcast(r, ws.TypePlayerJoined, playersPayload{Players: players})
	slog.Info("op transferred", "room", code, "to", targetID)
}

// SelectGame records the room's game and announces it. Unauthorized requests
// are silent no-ops.
func (s *Service) SelectGame(code, requesterID string, game GameDescriptor) {
	r := s.store.Get(code)
	if r == nil {
		return
	}
	if !r.SelectGame(requesterID, game) {
		slog.Debug("select-game denied", "room", code, "requester", requesterID)
		return
	}
	s.broadcast(r, ws.TypeGameSelected, game)
	slog.Info("game selected", "room", code, "game", game.Slug)
}

// StartGame moves the room into the playing phase and announces the selected
// game. A no-op when unauthorized or when no game has been selected.
func (s *Service) StartGame(code, requesterID string) {
	r := s.store.Get(code)
	if r == nil {
		return
	}
	game, ok := r.StartGame(requesterID)
	if !ok {
		slog.Debug("start-game denied", "room", code, "requester", requesterID)
		return
	}
	s.broadcast(r, ws.TypeGameStarted, game)
	slog.Info("game started", "room", code, "game", game.Slug)
}

// RelayInput forwards one input edge from a controller to the host, tagged
// with the sender's player slot. Unknown rooms and senders are dropped
// silently. A dead host tears the room down instead of queueing input.
func (s *Service) RelayInput(code, senderID, input, edge string) {
	r := s.store.Get(code)
	if r == nil {
		return
	}
	if !s.conns.IsConnected(r.HostID) {
		slog.Info("host unreachable on input, closing room", "room", code)
		s.CloseRoom(r)
		return
	}
	slot := r.PlayerSlot(senderID)
	if slot == -1 {
		return
	}
	msg, _ := ws.NewMessage(ws.TypePlayerInput, inputPayload{
		PlayerSlot: slot,
		Input:      input,
		Edge:       edge,
	})
	s.conns.Send(r.HostID, msg)
}

// Disconnect handles a connection closure, delivered exactly once per
// connection by the transport. A departing host closes its room; a departing
// controller leaves it, with the operator privilege repaired.
func (s *Service) Disconnect(connID string) {
	r := s.store.FindByConn(connID)
	if r == nil {
		return
	}
	if r.HostID == connID {
		s.CloseRoom(r)
		return
	}
	left, players, ok := r.RemovePlayer(connID)
	if !ok {
		return
	}
	s.broadcast(r, ws.TypePlayerLeft, playersPayload{Players: players})
	slog.Info("player left", "room", r.Code, "player", left.Name)
}

// CloseRoom broadcasts room-closed and deletes the room. Used on host loss,
// whether detected lazily during relay or by the reaper's grace expiry.
// The room is marked closed before anything else so a join racing the
// teardown fails rather than landing in a room nobody can reach.
func (s *Service) CloseRoom(r *Room) {
	r.Close()
	s.broadcast(r, ws.TypeRoomClosed, struct{}{})
	s.store.Remove(r.Code)
}

// broadcast sends an event to the host and every controller in the room.
// Sends are non-blocking pushes; no lock is held while sending.
func (s *Service) broadcast(r *Room, msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to build broadcast", "type", msgType, "error", err)
		return
	}
	s.conns.Send(r.HostID, msg)
	for _, p := range r.Players() {
		s.conns.Send(p.ID, msg)
	}
}
