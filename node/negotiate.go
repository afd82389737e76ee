package node

import (
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/msg"
	"github.com/kestrelrobotics/rosnode/wire"
)

// handleNegotiationTrigger runs when a zero-topic frame arrives: it kicks
// off a time sync, re-announces every registered endpoint, and resets the
// liveness clock, mirroring the original's negotiation branch exactly
// (requestSyncTime before negotiateTopics, both timestamps stamped after).
func (n *Node) handleNegotiationTrigger() {
	n.requestSyncTime()
	n.negotiateTopics()
	now := n.port.Millis()
	n.lastSyncTime = now
	n.lastSyncReceiveTime = now
}

// negotiateTopics announces every populated publisher slot, then every
// populated receiver slot, then the node's protocol version string.
// Because slots are filled contiguously from index 0, iteration naturally
// stops at the first empty slot.
func (n *Node) negotiateTopics() {
	n.configured = true

	for _, p := range n.registry.publishers {
		info := msg.TopicInfo{TopicID: p.id(), TopicName: p.topicName(), MessageType: p.messageType()}
		if err := n.sendTopicInfo(negotiationTopicID, &info); err != nil {
			glog.Warningf("node: announcing publisher %q failed: %v", p.topicName(), err)
		}
	}
	for _, r := range n.registry.receivers {
		info := msg.TopicInfo{TopicID: r.id(), TopicName: r.topicName(), MessageType: r.messageType()}
		if err := n.sendTopicInfo(wire.TopicSubscribers, &info); err != nil {
			glog.Warningf("node: announcing receiver %q failed: %v", r.topicName(), err)
		}
	}

	version := msg.Version{Semver: n.protocolVersion}
	if _, err := n.enc.publish(wire.TopicVersion, &version); err != nil {
		glog.V(2).Infof("node: version announcement failed: %v", err)
	}
}

func (n *Node) sendTopicInfo(topicID uint16, info *msg.TopicInfo) error {
	_, err := n.enc.publish(topicID, info)
	return err
}
