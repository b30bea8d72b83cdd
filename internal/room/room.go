package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// MaxPlayers is the number of controller slots per room.
const MaxPlayers = 4

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrNoGameSelected = errors.New("no game selected")
)

type Phase int

const (
	PhaseLobby Phase = iota
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	default:
		return "lobby"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON deserializes Phase from a string.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "playing":
		*p = PhasePlaying
	default:
		*p = PhaseLobby
	}
	return nil
}

// Player is a controller participant in a room. Identity is the connection ID.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IsOp bool   `json:"isOp"`
}

// GameDescriptor identifies a game in the host's library. The coordinator
// never inspects its fields beyond forwarding them.
type GameDescriptor struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Filename string `json:"filename"`
	Image    string `json:"image,omitempty"`
}

// Room is one session: a fixed host display plus up to four controllers in
// join order. All composite mutations, including their authorization checks,
// run under a single mutex so concurrent events never observe torn state.
type Room struct {
	Code   string
	HostID string

	mu       sync.Mutex
	phase    Phase
	players  []*Player
	selected *GameDescriptor
	closed   bool
}

// NewRoom creates a room in the lobby phase. The host holds no player slot.
func NewRoom(code, hostID string) *Room {
	return &Room{
		Code:   code,
		HostID: hostID,
		phase:  PhaseLobby,
	}
}

// Close marks the room terminal. Every later mutation fails, so a caller
// holding a stale pointer cannot admit players into a room that is being
// torn down concurrently.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Closed reports whether the room has been torn down.
func (r *Room) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// AddPlayer appends a controller to the room. The first controller to join
// becomes the operator. An empty name defaults to "Player N".
func (r *Room) AddPlayer(connID, name string) (Player, []Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Player{}, nil, ErrRoomNotFound
	}
	if len(r.players) >= MaxPlayers {
		return Player{}, nil, ErrRoomFull
	}

	if name == "" {
		name = fmt.Sprintf("Player %d", len(r.players)+1)
	}
	p := &Player{
		ID:   connID,
		Name: name,
		IsOp: len(r.players) == 0,
	}
	r.players = append(r.players, p)
	return *p, r.snapshot(), nil
}

// RemovePlayer removes a controller and repairs the operator privilege:
// if the removed player held it, the oldest remaining player inherits it.
// Returns false if the connection is not a player in this room.
func (r *Room) RemovePlayer(connID string) (Player, []Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Player{}, nil, false
	}
	removed, ok := r.remove(connID)
	if !ok {
		return Player{}, nil, false
	}
	return removed, r.snapshot(), true
}

// Kick removes the target if the requester is the host or the operator.
// Returns false on denial or when the target is not in the room.
func (r *Room) Kick(requesterID, targetID string) (Player, []Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.authorized(requesterID) {
		return Player{}, nil, false
	}
	removed, ok := r.remove(targetID)
	if !ok {
		return Player{}, nil, false
	}
	return removed, r.snapshot(), true
}

// TransferOp moves the operator privilege to the target if the requester is
// the host or the current operator. Exactly one player holds it afterwards.
func (r *Room) TransferOp(requesterID, targetID string) ([]Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.authorized(requesterID) {
		return nil, false
	}
	if r.find(targetID) == -1 {
		return nil, false
	}
	for _, p := range r.players {
		p.IsOp = p.ID == targetID
	}
	return r.snapshot(), true
}

// SelectGame records the game descriptor if the requester is authorized.
func (r *Room) SelectGame(requesterID string, game GameDescriptor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.authorized(requesterID) {
		return false
	}
	g := game
	r.selected = &g
	return true
}

// StartGame transitions the room to the playing phase. It requires an
// authorized requester and a previously selected game.
func (r *Room) StartGame(requesterID string) (GameDescriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.authorized(requesterID) || r.selected == nil {
		return GameDescriptor{}, false
	}
	r.phase = PhasePlaying
	return *r.selected, true
}

// PlayerSlot returns the 0-based join-order index of a connection,
// or -1 if it is not a player in this room.
func (r *Room) PlayerSlot(connID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(connID)
}

// HasPlayer reports whether a connection holds a controller slot.
func (r *Room) HasPlayer(connID string) bool {
	return r.PlayerSlot(connID) != -1
}

// Players returns a snapshot of the player list in join order.
func (r *Room) Players() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// PlayerCount returns the number of controllers in the room.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// IsEmpty returns true if the room has no controllers.
func (r *Room) IsEmpty() bool {
	return r.PlayerCount() == 0
}

// SelectedGame returns the selected game, or nil if none has been chosen.
func (r *Room) SelectedGame() *GameDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected == nil {
		return nil
	}
	g := *r.selected
	return &g
}

// Phase returns the current room phase.
func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// authorized reports whether a connection may kick, transfer the operator
// privilege, select a game, or start one. The host is always authorized;
// otherwise the connection must be the current operator.
// Caller must hold r.mu.
func (r *Room) authorized(connID string) bool {
	if connID == r.HostID {
		return true
	}
	if i := r.find(connID); i != -1 {
		return r.players[i].IsOp
	}
	return false
}

// remove takes a player out of the slice and repairs the operator invariant.
// Caller must hold r.mu.
func (r *Room) remove(connID string) (Player, bool) {
	i := r.find(connID)
	if i == -1 {
		return Player{}, false
	}
	removed := *r.players[i]
	r.players = append(r.players[:i], r.players[i+1:]...)
	if removed.IsOp && len(r.players) > 0 {
		r.players[0].IsOp = true
	}
	return removed, true
}

// find returns the join-order index of a connection. Caller must hold r.mu.
func (r *Room) find(connID string) int {
	for i, p := range r.players {
		if p.ID == connID {
			return i
		}
	}
	return -1
}

// snapshot copies the player list so callers never share mutable state.
// Caller must hold r.mu.
func (r *Room) snapshot() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		out[i] = *p
	}
	return out
}
