package node

import "github.com/kestrelrobotics/rosnode/wire"

// receiver is the tagged-variant arm the registry actually stores: a
// subscriber and a service server both reduce to "decode this payload, then
// call a user callback", so the registry never needs to know which one it
// is holding. See Subscriber and ServiceServer for the typed wrappers users
// construct.
type receiver interface {
	topicName() string
	messageType() string
	deliver(payload []byte)
	setID(id uint16)
	id() uint16
}

// publisherRef is the non-owning back-reference the registry hands out to a
// registered publisher: a non-owning handle avoids a cyclic ownership
// arrangement, since the node outlives every endpoint by contract.
type publisherRef interface {
	topicName() string
	messageType() string
	setID(id uint16)
	id() uint16
	bind(enc *encoder)
}

// registry holds the two fixed-capacity, sequentially-filled slot tables
// for publishers and receivers. Slots are never reused and never
// compacted: once a slot beyond index n is empty, indices n..cap are
// guaranteed empty too.
type registry struct {
	publishers    []publisherRef
	receivers     []receiver
	maxPublishers int
	maxSubs       int
}

func newRegistry(maxPublishers, maxSubscribers int) *registry {
	return &registry{
		publishers:    make([]publisherRef, 0, maxPublishers),
		receivers:     make([]receiver, 0, maxSubscribers),
		maxPublishers: maxPublishers,
		maxSubs:       maxSubscribers,
	}
}

// advertise assigns the next publisher slot to p, wiring its id and encoder
// back-reference. Returns false when the table is full.
func (r *registry) advertise(p publisherRef, enc *encoder) bool {
	if len(r.publishers) >= r.maxPublishers {
		return false
	}
	id := wire.FirstPublisherID(r.maxSubs) + uint16(len(r.publishers))
	p.setID(id)
	p.bind(enc)
	r.publishers = append(r.publishers, p)
	return true
}

// subscribe assigns the next receiver slot to rc, uniform for subscribers
// and service servers. Returns false when the table is full.
func (r *registry) subscribe(rc receiver) bool {
	if len(r.receivers) >= r.maxSubs {
		return false
	}
	id := wire.FirstReceiverID + uint16(len(r.receivers))
	rc.setID(id)
	r.receivers = append(r.receivers, rc)
	return true
}

// lookupReceiver returns the receiver bound to topicID, or nil if topicID
// falls outside the populated slot range. Slot lookup is O(1): the index is
// derived directly from the reserved-range formula.
func (r *registry) lookupReceiver(topicID uint16) receiver {
	if topicID < wire.FirstReceiverID {
		return nil
	}
	idx := int(topicID - wire.FirstReceiverID)
	if idx < 0 || idx >= len(r.receivers) {
		return nil
	}
	return r.receivers[idx]
}
