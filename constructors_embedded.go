//go:build tinygo || baremetal

// This file is built only for embedded targets (a real UART peripheral).
package rosnode

import (
	"github.com/kestrelrobotics/rosnode/hal/uartport"
	"github.com/kestrelrobotics/rosnode/node"
)

// New constructs a Node backed by the board's default UART.
func New(cfg Config) *Node {
	return node.New(uartport.New(), cfg)
}
