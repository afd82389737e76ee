package node

import "github.com/kestrelrobotics/rosnode/msg"

// Publisher is the typed wrapper a caller constructs and registers via
// Node.Advertise. T carries its own codec, so the registry and encoder
// never need to know the concrete message type.
type Publisher[T msg.Msg] struct {
	topic      string
	msgType    string
	assignedID uint16
	enc        *encoder
}

// NewPublisher constructs a Publisher for topic carrying messages of type
// T. sample is used only to read T's wire type name; it is not retained.
func NewPublisher[T msg.Msg](topic string, sample T) *Publisher[T] {
	return &Publisher[T]{topic: topic, msgType: sample.TypeName()}
}

// Publish serializes m and emits a frame on this publisher's assigned id.
// It returns the number of payload bytes written, or a negative value and
// an error on failure, mirroring the original ros_lib Publisher's
// int-returning publish rather than a bare bool.
func (p *Publisher[T]) Publish(m T) (int, error) {
	return p.enc.publish(p.assignedID, m)
}

// ID reports the id assigned at registration, or 0 if not yet advertised.
func (p *Publisher[T]) ID() uint16 { return p.assignedID }

// The methods below satisfy the registry's publisherRef interface.
func (p *Publisher[T]) topicName() string   { return p.topic }
func (p *Publisher[T]) messageType() string { return p.msgType }
func (p *Publisher[T]) setID(id uint16)     { p.assignedID = id }
func (p *Publisher[T]) id() uint16          { return p.assignedID }
func (p *Publisher[T]) bind(e *encoder)     { p.enc = e }
