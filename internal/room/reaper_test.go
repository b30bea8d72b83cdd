package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retropad/server/internal/ws"
)

const testGrace = 50 * time.Millisecond

func setupReaper() (*Service, *fakeRegistry, *Reaper) {
	svc, reg := setupService()
	rp := NewReaper(svc, reg, time.Minute, testGrace)
	return svc, reg, rp
}

func TestReaper_RemovesEmptyAbandonedRoom(t *testing.T) {
	svc, reg, rp := setupReaper()
	r := svc.CreateRoom("host")

	reg.drop("host")
	rp.Sweep()

	assert.Nil(t, svc.Store().Get(r.Code))
}

func TestReaper_KeepsEmptyRoomWithLiveHost(t *testing.T) {
	svc, _, rp := setupReaper()
	r := svc.CreateRoom("host")

	rp.Sweep()

	assert.NotNil(t, svc.Store().Get(r.Code), "a live host keeps its lobby open")
}

func TestReaper_GraceExpiryClosesOccupiedRoom(t *testing.T) {
	svc, reg, rp := setupReaper()
	r := svc.CreateRoom("host")
	svc.Join(r.Code, "conn-c", "Carol")

	reg.drop("host")
	rp.Sweep()
	require.True(t, rp.Armed(r.Code), "occupied room gets a grace timer, not instant eviction")
	require.NotNil(t, svc.Store().Get(r.Code))

	assert.Eventually(t, func() bool {
		return svc.Store().Get(r.Code) == nil
	}, time.Second, 5*time.Millisecond)

	assert.NotNil(t, reg.findMessageByType("conn-c", ws.TypeRoomClosed))
	assert.False(t, rp.Armed(r.Code))
}

func TestReaper_HostReconnectCancelsGrace(t *testing.T) {
	svc, reg, rp := setupReaper()
	r := svc.CreateRoom("host")
	svc.Join(r.Code, "conn-c", "Carol")

	reg.drop("host")
	rp.Sweep()
	require.True(t, rp.Armed(r.Code))

	reg.revive("host")
	rp.Sweep()
	assert.False(t, rp.Armed(r.Code))

	// Wait past the original grace deadline: the room must survive.
	time.Sleep(2 * testGrace)
	assert.NotNil(t, svc.Store().Get(r.Code))
	assert.Nil(t, reg.findMessageByType("conn-c", ws.TypeRoomClosed))
}

func TestReaper_ArmIsIdempotent(t *testing.T) {
	svc, reg, rp := setupReaper()
	r := svc.CreateRoom("host")
	svc.Join(r.Code, "conn-c", "Carol")

	reg.drop("host")
	rp.Sweep()
	rp.Sweep()
	rp.Sweep()
	assert.True(t, rp.Armed(r.Code))

	assert.Eventually(t, func() bool {
		return svc.Store().Get(r.Code) == nil
	}, time.Second, 5*time.Millisecond)

	// Repeated arming must not produce repeated closes.
	time.Sleep(2 * testGrace)
	assert.Equal(t, 1, reg.countMessagesByType("conn-c", ws.TypeRoomClosed))
}

func TestReaper_ExpiryRechecksLiveness(t *testing.T) {
	svc, reg, rp := setupReaper()
	r := svc.CreateRoom("host")
	svc.Join(r.Code, "conn-c", "Carol")

	reg.drop("host")
	rp.Sweep()

	// Host comes back between sweeps; the timer fires but must not close.
	reg.revive("host")
	time.Sleep(2 * testGrace)

	assert.NotNil(t, svc.Store().Get(r.Code))
	assert.Nil(t, reg.findMessageByType("conn-c", ws.TypeRoomClosed))
}
