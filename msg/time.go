package msg

import "encoding/binary"

// Time mirrors std_msgs/Time: a wall-clock instant as (seconds since
// epoch, nanoseconds within the second), each a 32-bit little-endian
// unsigned integer on the wire.
type Time struct {
	Sec  uint32
	Nsec uint32
}

// TimeWireSize is the number of bytes Time occupies on the wire.
const TimeWireSize = 8

func (t *Time) Serialize(buf []byte) int {
	binary.LittleEndian.PutUint32(buf[0:4], t.Sec)
	binary.LittleEndian.PutUint32(buf[4:8], t.Nsec)
	return TimeWireSize
}

func (t *Time) Deserialize(buf []byte) int {
	t.Sec = binary.LittleEndian.Uint32(buf[0:4])
	t.Nsec = binary.LittleEndian.Uint32(buf[4:8])
	return TimeWireSize
}

func (t *Time) TypeName() string { return "std_msgs/Time" }

func (t *Time) MaxSize() int { return TimeWireSize }
