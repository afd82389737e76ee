//go:build tinygo || baremetal

// Package uartport implements hal.SerialPort over a real UART using
// TinyGo's machine package, for builds targeting an actual
// microcontroller.
package uartport

import (
	"machine"

	"github.com/kestrelrobotics/rosnode/hal"
)

// DefaultBaud is the baud rate New configures machine.Serial with. It
// matches the rate rosserial's default host-side bridge expects.
const DefaultBaud = 57600

// Port wraps a machine.UART as a hal.SerialPort.
type Port struct {
	uart   *machine.UART
	config machine.UARTConfig
}

// New wraps the board's default UART (machine.Serial), configured at
// DefaultBaud.
func New() hal.SerialPort {
	return &Port{uart: machine.Serial, config: machine.UARTConfig{BaudRate: DefaultBaud}}
}

func (p *Port) Init() error {
	return p.uart.Configure(p.config)
}

func (p *Port) Read() int {
	if !p.uart.Buffered() {
		return -1
	}
	b, err := p.uart.ReadByte()
	if err != nil {
		return -1
	}
	return int(b)
}

func (p *Port) Write(b []byte) (int, error) {
	return p.uart.Write(b)
}

func (p *Port) Millis() uint32 {
	return uint32(machine.GetSystemTimer() / 1_000_000)
}
