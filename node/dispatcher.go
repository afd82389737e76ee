package node

import (
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/wire"
)

// dispatch is component F: it routes one completed, checksum-valid frame
// to negotiation, time-sync, parameter fetch, or a registered receiver. It
// is never invoked for a frame whose checksum failed to validate — the
// parser resets those without calling here at all.
func (n *Node) dispatch(topicID uint16, payload []byte) {
	switch {
	case topicID == negotiationTopicID:
		n.handleNegotiationTrigger()
	case topicID == timeSyncTopicID:
		n.handleTimeSyncReply(payload)
	case topicID == paramResponseTopicID:
		n.handleParamResponse(payload)
	case topicID == wire.TopicVersion:
		n.handleVersionAck(payload)
	default:
		rc := n.registry.lookupReceiver(topicID)
		if rc == nil {
			glog.V(4).Infof("node: dropping frame for unknown topic %d", topicID)
			return
		}
		n.inCallback = true
		rc.deliver(payload)
		n.inCallback = false
	}
}
