package node

import (
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/hal"
	"github.com/kestrelrobotics/rosnode/msg"
	"github.com/kestrelrobotics/rosnode/wire"
)

// encoder is component C: it frames an outbound (topic-id, message) pair
// and emits it through the hardware port. It owns the only scratch buffer
// used on the outbound path, sized to hold a whole frame, and frames every
// message into it in place, so publishing never allocates in steady state.
type encoder struct {
	port       hal.SerialPort
	payloadCap int    // OUTPUT_SIZE: largest payload a single message may serialize to
	scratch    []byte // len == payloadCap + wire.PayloadOffset + wire.TrailerSize, a full frame
}

func newEncoder(port hal.SerialPort, outputSize int) *encoder {
	return &encoder{
		port:       port,
		payloadCap: outputSize,
		scratch:    make([]byte, outputSize+wire.PayloadOffset+wire.TrailerSize),
	}
}

// publish serializes m directly into the scratch buffer's payload region,
// frames it in place, and writes the result. It returns the number of
// payload bytes written, or a negative value and an error if the message
// did not fit or the port rejected the write — mirroring the original
// ros_lib Publisher's int-returning convention rather than a bare bool.
func (e *encoder) publish(topicID uint16, m msg.Msg) (int, error) {
	// Checked against MaxSize rather than the actual serialized length:
	// deliberately pessimistic, since the actual length isn't known until
	// after serializing, and a type whose MaxSize doesn't fit has no
	// business writing into this buffer even on the rare message that
	// would have.
	if m.MaxSize() > e.payloadCap {
		glog.Warningf("node: publish topic %d rejected, message max size %d exceeds output buffer %d", topicID, m.MaxSize(), e.payloadCap)
		return -1, wire.ErrPayloadTooLarge
	}
	n := m.Serialize(e.scratch[wire.PayloadOffset:])
	frameLen := wire.EncodeInto(e.scratch, topicID, n)
	written, err := e.port.Write(e.scratch[:frameLen])
	if err != nil {
		glog.Warningf("node: publish topic %d abandoned mid-frame: %v", topicID, err)
		return -1, err
	}
	if written != frameLen {
		return -1, wire.ErrWrite
	}
	return n, nil
}
