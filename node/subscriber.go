package node

import "github.com/kestrelrobotics/rosnode/msg"

// Subscriber is a receiver arm carrying a typed decode-then-callback pair.
// Constructing one and passing it to Node.Subscribe is the whole of the
// "receiver" side of the endpoint model — a subscriber and a service
// server both reduce to the same receiver interface underneath.
type Subscriber[T msg.Msg] struct {
	topic      string
	msgType    string
	assignedID uint16
	callback   func(T)
	decodeBuf  T
}

// NewSubscriber constructs a Subscriber for topic, invoking cb with each
// decoded message. decodeBuf must be a non-nil pointer-shaped T that
// Deserialize can be called on repeatedly; the same value is reused across
// deliveries, matching the fixed-buffer, no-allocation steady state.
func NewSubscriber[T msg.Msg](topic string, decodeBuf T, cb func(T)) *Subscriber[T] {
	return &Subscriber[T]{topic: topic, msgType: decodeBuf.TypeName(), callback: cb, decodeBuf: decodeBuf}
}

func (s *Subscriber[T]) topicName() string   { return s.topic }
func (s *Subscriber[T]) messageType() string { return s.msgType }
func (s *Subscriber[T]) setID(id uint16)     { s.assignedID = id }
func (s *Subscriber[T]) id() uint16          { return s.assignedID }

func (s *Subscriber[T]) deliver(payload []byte) {
	s.decodeBuf.Deserialize(payload)
	s.callback(s.decodeBuf)
}
