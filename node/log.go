package node

import (
	"github.com/kestrelrobotics/rosnode/msg"
	"github.com/kestrelrobotics/rosnode/wire"
)

// logTopicID is the wire id log frames are published on.
const logTopicID = wire.TopicLog

// LogDebug, LogInfo, LogWarn, LogError and LogFatal are the five
// convenience logging levels. Each publishes a log frame carrying the
// level and message; the level constants are the ones msg.Log carries
// unchanged for wire compatibility with a host bridge.
func (n *Node) LogDebug(m string) { n.publishLog(msg.LogDebug, m) }
func (n *Node) LogInfo(m string)  { n.publishLog(msg.LogInfo, m) }
func (n *Node) LogWarn(m string)  { n.publishLog(msg.LogWarn, m) }
func (n *Node) LogError(m string) { n.publishLog(msg.LogError, m) }
func (n *Node) LogFatal(m string) { n.publishLog(msg.LogFatal, m) }

func (n *Node) publishLog(level uint8, m string) {
	entry := msg.Log{Level: level, Msg: m}
	// Errors from the log channel itself have nowhere further to go —
	// looping back through LogError here would recurse.
	_, _ = n.enc.publish(logTopicID, &entry)
}
