package msg

import "encoding/binary"

// topicInfoMaxNameLen bounds the two variable-length strings a TopicInfo
// carries so MaxSize can be computed statically, matching the fixed
// negotiation buffer the node's registry sizes itself against.
const topicInfoMaxNameLen = 40

// TopicInfo is what negotiateTopics sends for every advertised publisher
// and every registered subscriber, mirroring rosserial_msgs/TopicInfo.
type TopicInfo struct {
	TopicID     uint16
	TopicName   string
	MessageType string
}

func (ti *TopicInfo) Serialize(buf []byte) int {
	binary.LittleEndian.PutUint16(buf[0:2], ti.TopicID)
	off := 2
	off += putString(buf[off:], ti.TopicName)
	off += putString(buf[off:], ti.MessageType)
	return off
}

func (ti *TopicInfo) Deserialize(buf []byte) int {
	ti.TopicID = binary.LittleEndian.Uint16(buf[0:2])
	off := 2
	n, name := getString(buf[off:])
	ti.TopicName = name
	off += n
	n, mtype := getString(buf[off:])
	ti.MessageType = mtype
	off += n
	return off
}

func (ti *TopicInfo) TypeName() string { return "rosserial_msgs/TopicInfo" }

func (ti *TopicInfo) MaxSize() int {
	return 2 + 2*(4+topicInfoMaxNameLen)
}

// putString writes a length-prefixed (u32 LE, matching ROS's serialization
// convention for variable-length strings) string into buf.
func putString(buf []byte, s string) int {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(s)))
	copy(buf[4:], s)
	return 4 + len(s)
}

func getString(buf []byte) (consumed int, s string) {
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	return 4 + n, string(buf[4 : 4+n])
}
