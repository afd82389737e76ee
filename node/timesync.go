package node

import (
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/msg"
	"github.com/kestrelrobotics/rosnode/wire"
)

const (
	timeSyncTopicID      = wire.TopicTime
	negotiationTopicID   = wire.TopicNegotiation
	paramResponseTopicID = wire.TopicParameterRequest

	nsecPerSec = int64(1_000_000_000)

	// syncSeconds is the nominal sync period in seconds.
	syncSeconds = 5

	// livenessMultiplier and resyncMultiplier are inherited magic
	// constants carried over verbatim from existing host bridges; no
	// derivation for them is on record.
	livenessMultiplier = 2200
	resyncMultiplier   = 500
)

// normalizeSecNsec carries nsec into [0, 1e9) by adjusting sec, matching
// the original's normalizeSecNSec helper.
func normalizeSecNsec(sec, nsec int64) (int64, int64) {
	for nsec >= nsecPerSec {
		nsec -= nsecPerSec
		sec++
	}
	for nsec < 0 {
		nsec += nsecPerSec
		sec--
	}
	return sec, nsec
}

// Now returns the synchronized wall-clock time as (sec, nsec), computed
// from the local millisecond clock plus the current offset.
func (n *Node) Now() (sec, nsec int64) {
	ms := n.port.Millis()
	sec = int64(ms/1000) + n.secOffset
	nsec = int64(ms%1000)*1_000_000 + n.nsecOffset
	return normalizeSecNsec(sec, nsec)
}

// SetNow adjusts the offset so that Now reports (sec, nsec) at the moment
// of the call. The -1 second / +1e9 ns adjustment is a borrow carried over
// from the host's unsigned-arithmetic implementation; with signed int64
// offsets it is not needed to prevent underflow, but it is kept anyway so
// the resulting offsets — and therefore every subsequent Now reading —
// match a host-visible rosserial node bit-for-bit.
func (n *Node) SetNow(sec, nsec int64) {
	sec, nsec = normalizeSecNsec(sec, nsec)
	ms := n.port.Millis()
	n.secOffset = sec - int64(ms/1000) - 1
	n.nsecOffset = nsec - int64(ms%1000)*1_000_000 + nsecPerSec
	n.secOffset, n.nsecOffset = normalizeSecNsec(n.secOffset, n.nsecOffset)
}

// requestSyncTime publishes an empty time message and records the local
// millisecond clock at the moment of sending, so the reply's round-trip
// elapsed time can be measured.
func (n *Node) requestSyncTime() {
	var empty msg.Time
	if _, err := n.enc.publish(timeSyncTopicID, &empty); err != nil {
		glog.V(2).Infof("node: requestSyncTime publish failed: %v", err)
	}
	n.remoteTimeAtRequest = n.port.Millis()
}

// handleTimeSyncReply completes the round trip: it measures elapsed local
// milliseconds since requestSyncTime and adjusts the host-reported time by
// that amount before committing it via SetNow.
func (n *Node) handleTimeSyncReply(payload []byte) {
	var t msg.Time
	t.Deserialize(payload)

	offsetMs := n.port.Millis() - n.remoteTimeAtRequest // wraparound-safe: unsigned
	sec := int64(t.Sec) + int64(offsetMs/1000)
	nsec := int64(t.Nsec) + int64(offsetMs%1000)*1_000_000

	n.SetNow(sec, nsec)
	n.lastSyncReceiveTime = n.port.Millis()
}

// runLivenessSchedule is consulted at the end of every SpinOnce.
func (n *Node) runLivenessSchedule(nowMillis uint32) {
	if nowMillis-n.lastSyncReceiveTime > syncSeconds*livenessMultiplier {
		if n.configured {
			glog.Warningf("node: liveness timeout, marking unconfigured")
		}
		n.configured = false
	} else if n.configured && nowMillis-n.lastSyncTime > syncSeconds*resyncMultiplier {
		n.requestSyncTime()
		n.lastSyncTime = nowMillis
	}
}
