//go:build !tinygo && !baremetal

// This file is built only for non-embedded targets (host-based testing and
// host-side experimentation).
package rosnode

import (
	"github.com/kestrelrobotics/rosnode/hal/stubport"
	"github.com/kestrelrobotics/rosnode/node"
)

// New constructs a Node backed by an in-memory stub port. It is meant for
// tests and host-side experimentation; wire it to a real serial device via
// node.New(port, cfg) with your own hal.SerialPort implementation instead
// if you need actual host<->device I/O.
func New(cfg Config) *Node {
	return node.New(stubport.New(), cfg)
}
