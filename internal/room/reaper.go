package room

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultReapInterval is how often the reaper sweeps live rooms.
	DefaultReapInterval = 30 * time.Second
	// DefaultHostGrace is how long a room with players survives an
	// unreachable host before being closed.
	DefaultHostGrace = 10 * time.Second
)

// Reaper periodically evicts abandoned rooms and closes rooms whose host has
// been unreachable past a grace window. The window exists because brief
// transport reconnects are common and should not evict a room of controllers.
type Reaper struct {
	svc      *Service
	conns    Registry
	interval time.Duration
	grace    time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer // room code -> pending grace timer
}

// NewReaper creates a reaper over the service's store. Non-positive
// durations fall back to the defaults.
func NewReaper(svc *Service, conns Registry, interval, grace time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	if grace <= 0 {
		grace = DefaultHostGrace
	}
	return &Reaper{
		svc:      svc,
		conns:    conns,
		interval: interval,
		grace:    grace,
		timers:   make(map[string]*time.Timer),
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (rp *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(rp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			rp.cancelAll()
			return
		case <-ticker.C:
			rp.Sweep()
		}
	}
}

// Sweep examines every live room once. Empty rooms with an unreachable host
// are deleted outright; occupied rooms with an unreachable host get a grace
// timer; a live host cancels any pending timer.
func (rp *Reaper) Sweep() {
	for _, r := range rp.svc.Store().All() {
		if rp.conns.IsConnected(r.HostID) {
			rp.cancelGrace(r.Code)
			continue
		}
		if r.IsEmpty() {
			slog.Info("reaping abandoned room", "room", r.Code)
			rp.cancelGrace(r.Code)
			rp.svc.Store().Remove(r.Code)
			continue
		}
		rp.armGrace(r.Code)
	}
}

// armGrace starts the grace timer for a room. Arming an already armed room
// is a no-op.
func (rp *Reaper) armGrace(code string) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	if _, ok := rp.timers[code]; ok {
		return
	}
	slog.Info("host unreachable, starting grace period", "room", code, "grace", rp.grace)
	rp.timers[code] = time.AfterFunc(rp.grace, func() {
		rp.expireGrace(code)
	})
}

// cancelGrace stops a pending grace timer, if any.
func (rp *Reaper) cancelGrace(code string) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	if t, ok := rp.timers[code]; ok {
		t.Stop()
		delete(rp.timers, code)
		slog.Info("host reachable again, grace period cleared", "room", code)
	}
}

// expireGrace fires when a grace timer elapses. The host gets one final
// liveness check before the room is closed, in case it reconnected between
// sweeps.
func (rp *Reaper) expireGrace(code string) {
	rp.mu.Lock()
	delete(rp.timers, code)
	rp.mu.Unlock()

	r := rp.svc.Store().Get(code)
	if r == nil {
		return
	}
	if rp.conns.IsConnected(r.HostID) {
		return
	}
	slog.Info("grace period expired, closing room", "room", code)
	rp.svc.CloseRoom(r)
}

// Armed reports whether a grace timer is pending for a room.
func (rp *Reaper) Armed(code string) bool {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	_, ok := rp.timers[code]
	return ok
}

func (rp *Reaper) cancelAll() {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	for code, t := range rp.timers {
		t.Stop()
		delete(rp.timers, code)
	}
}
