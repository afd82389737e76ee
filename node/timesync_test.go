package node

import (
	"testing"

	"github.com/kestrelrobotics/rosnode/msg"
)

// TestTimeSyncRoundTrip exercises scenario S5: a reply carrying sec=10,
// nsec=0 arriving 50ms after the request should leave now() reporting
// approximately sec=10, nsec=50ms in nanoseconds.
func TestTimeSyncRoundTrip(t *testing.T) {
	n, port := newTestNode()

	port.millis = 1000
	n.requestSyncTime()

	port.millis = 1050
	reply := msg.Time{Sec: 10, Nsec: 0}
	buf := make([]byte, reply.MaxSize())
	sz := reply.Serialize(buf)
	n.handleTimeSyncReply(buf[:sz])

	sec, nsec := n.Now()
	if sec != 10 {
		t.Errorf("Now().sec = %d, want 10", sec)
	}
	wantNsec := int64(50_000_000)
	diff := nsec - wantNsec
	if diff < -1_000_000 || diff > 1_000_000 {
		t.Errorf("Now().nsec = %d, want within 1ms of %d", nsec, wantNsec)
	}
}

// TestSetNowIdempotence exercises invariant 6: SetNow(Now()) must change
// the reported time by at most 1ms.
func TestSetNowIdempotence(t *testing.T) {
	n, port := newTestNode()
	port.millis = 12345

	n.SetNow(100, 250_000_000)
	sec1, nsec1 := n.Now()

	n.SetNow(sec1, nsec1)
	sec2, nsec2 := n.Now()

	deltaNs := (sec2-sec1)*nsecPerSec + (nsec2 - nsec1)
	if deltaNs < -1_000_000 || deltaNs > 1_000_000 {
		t.Errorf("SetNow(Now()) moved the clock by %dns, want at most 1ms", deltaNs)
	}
}

// TestLivenessTimeoutClearsConfigured exercises invariant 7: with no sync
// reply, configured becomes false at or before 11s after the last
// reception.
func TestLivenessTimeoutClearsConfigured(t *testing.T) {
	n, _ := newTestNode()
	n.configured = true
	n.lastSyncReceiveTime = 0
	n.lastSyncTime = 0

	n.runLivenessSchedule(syncSeconds*livenessMultiplier + 1)

	if n.configured {
		t.Error("configured = true after the liveness deadline elapsed, want false")
	}
}

// TestResyncScheduleRequestsFreshSync checks the 2.5s resync branch fires
// only while configured, and advances lastSyncTime.
func TestResyncScheduleRequestsFreshSync(t *testing.T) {
	n, port := newTestNode()
	n.configured = true
	n.lastSyncReceiveTime = 0
	n.lastSyncTime = 0
	port.millis = syncSeconds*resyncMultiplier + 1

	n.runLivenessSchedule(port.millis)

	if n.lastSyncTime != port.millis {
		t.Errorf("lastSyncTime = %d, want %d", n.lastSyncTime, port.millis)
	}
	if len(port.written) == 0 {
		t.Error("expected a fresh time-sync request to be written")
	}
}
