// Package msg defines the message-codec contract the node core depends on
// — codecs are assumed to exist and are invoked by, not designed by, the
// core — together with the small set of control messages the core itself
// must speak: Time, TopicInfo, Log and the parameter-request/response
// pair. User-defined message types implement the same Msg interface but
// live outside this module entirely.
package msg

// Msg is the contract every publishable/subscribable payload type must
// satisfy. It mirrors ros_lib's Msg base class: serialize into a
// caller-owned buffer, deserialize from one, and report a stable type
// name used only for host-side introspection during negotiation.
type Msg interface {
	// Serialize encodes the message into buf, returning the number of
	// bytes written. buf is always at least MaxSize() bytes long.
	Serialize(buf []byte) int
	// Deserialize decodes the message from buf, returning the number of
	// bytes consumed.
	Deserialize(buf []byte) int
	// TypeName reports the message's wire type name, e.g. "std_msgs/Time".
	TypeName() string
	// MaxSize reports the largest number of bytes Serialize can write.
	MaxSize() int
}
