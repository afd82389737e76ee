//go:build !tinygo && !baremetal

// Package stubport implements hal.SerialPort over an in-memory byte stream,
// for host builds and tests that need a node without real hardware attached.
package stubport

import (
	"sync"
	"time"

	"github.com/kestrelrobotics/rosnode/hal"
	"github.com/kestrelrobotics/rosnode/wire"
)

// Port is a hal.SerialPort backed by two ring buffers: one fed by the test
// (or a real transport bridged in from elsewhere) representing inbound
// bytes, one capturing everything the node writes.
type Port struct {
	mu       sync.Mutex
	rx       ringBuffer
	tx       ringBuffer
	start    time.Time
	started  bool
}

func New() hal.SerialPort { return &Port{} }

func (p *Port) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start = time.Now()
	p.started = true
	return nil
}

func (p *Port) Read() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.rx.pop()
	if !ok {
		return -1
	}
	return int(b)
}

func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ringCapacity-p.tx.count < len(b) {
		return 0, wire.ErrWrite
	}
	for _, c := range b {
		p.tx.push(c)
	}
	return len(b), nil
}

func (p *Port) Millis() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return 0
	}
	return uint32(time.Since(p.start).Milliseconds())
}

// InjectRx makes b available to subsequent Read calls, one byte at a time,
// simulating bytes arriving from the host.
func (p *Port) InjectRx(b []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range b {
		p.rx.push(c)
	}
}

// TakeWritten drains and returns everything written so far.
func (p *Port) TakeWritten() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]byte, 0, p.tx.count)
	for {
		b, ok := p.tx.pop()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}

const ringCapacity = 4096

type ringBuffer struct {
	data       [ringCapacity]byte
	head, tail int
	count      int
}

func (rb *ringBuffer) push(b byte) bool {
	if rb.count == ringCapacity {
		return false
	}
	rb.data[rb.tail] = b
	rb.tail = (rb.tail + 1) % ringCapacity
	rb.count++
	return true
}

func (rb *ringBuffer) pop() (byte, bool) {
	if rb.count == 0 {
		return 0, false
	}
	b := rb.data[rb.head]
	rb.head = (rb.head + 1) % ringCapacity
	rb.count--
	return b, true
}
