package node

import (
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/msg"
)

// getParamResult performs the synchronous fetch shared by GetParamInt,
// GetParamFloat and GetParamString. It is the only place the core
// re-enters its own poll loop; calling it from inside a receiver callback
// is forbidden and is caught defensively via n.inCallback.
func (n *Node) getParamResult(name string, timeoutMs uint32) (*msg.RequestParamResponse, bool) {
	if n.inCallback {
		glog.Errorf("node: getParam(%q) called re-entrantly from a receiver callback, refusing", name)
		return nil, false
	}

	n.paramReceived = false
	req := msg.RequestParamRequest{Name: name}
	if _, err := n.enc.publish(paramResponseTopicID, &req); err != nil {
		glog.Warningf("node: getParam(%q) request publish failed: %v", name, err)
		return nil, false
	}

	deadline := n.port.Millis() + timeoutMs
	for {
		n.SpinOnce()
		if n.paramReceived {
			break
		}
		if n.port.Millis()-deadline < 1<<31 {
			return nil, false
		}
	}
	return &n.pendingParamResponse, true
}

// GetParamInt fetches an integer-array parameter named name, blocking (by
// re-entering SpinOnce) until it arrives or timeoutMs elapses. It succeeds
// only if the host's response carries exactly len(out) ints.
func (n *Node) GetParamInt(name string, out []int32, timeoutMs uint32) bool {
	resp, ok := n.getParamResult(name, timeoutMs)
	if !ok || len(resp.Ints) != len(out) {
		return false
	}
	copy(out, resp.Ints)
	return true
}

// GetParamFloat fetches a float-array parameter, with the same contract as
// GetParamInt.
func (n *Node) GetParamFloat(name string, out []float32, timeoutMs uint32) bool {
	resp, ok := n.getParamResult(name, timeoutMs)
	if !ok || len(resp.Floats) != len(out) {
		return false
	}
	copy(out, resp.Floats)
	return true
}

// GetParamString fetches a string-array parameter, with the same contract
// as GetParamInt.
func (n *Node) GetParamString(name string, out []string, timeoutMs uint32) bool {
	resp, ok := n.getParamResult(name, timeoutMs)
	if !ok || len(resp.Strings) != len(out) {
		return false
	}
	copy(out, resp.Strings)
	return true
}

func (n *Node) handleParamResponse(payload []byte) {
	n.pendingParamResponse = msg.RequestParamResponse{}
	n.pendingParamResponse.Deserialize(payload)
	n.paramReceived = true
}
