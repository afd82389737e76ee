package msg

// versionMaxLen bounds the semver string, e.g. "1.4.2".
const versionMaxLen = 16

// Version is not part of the original rosserial wire protocol. It is sent
// once during negotiation (see node.negotiateTopics) so a host bridge can
// refuse to talk to a node whose protocol version it does not support,
// checked with a semver constraint rather than the original's bare
// PROTOCOL_VER1/VER2 byte pair.
type Version struct {
	Semver string
}

func (v *Version) Serialize(buf []byte) int {
	return putString(buf, v.Semver)
}

func (v *Version) Deserialize(buf []byte) int {
	n, s := getString(buf)
	v.Semver = s
	return n
}

func (v *Version) TypeName() string { return "rosnode_msgs/Version" }

func (v *Version) MaxSize() int { return 4 + versionMaxLen }
