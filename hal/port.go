// Package hal defines the hardware abstraction the node core is built
// against: a single non-blocking byte-stream port. It never blocks and
// never allocates on the hot path, so a single spinOnce call can poll it
// from a tight embedded loop without starving other cooperative work.
package hal

// SerialPort is the only hardware dependency the node core has. Concrete
// implementations live in hal/uartport (tinygo || baremetal, backed by a
// real UART) and hal/stubport (host builds, backed by an in-memory byte
// stream) — see rosnode's constructors_*.go for the build-tag switch that
// picks between them.
type SerialPort interface {
	// Init prepares the port for use. It is called exactly once, before
	// the first Read or Write.
	Init() error

	// Read returns the next available byte, or a negative value if none
	// is currently available. It never blocks.
	Read() int

	// Write sends b in full or not at all, returning the number of bytes
	// written and an error if the underlying transport rejected it.
	Write(b []byte) (int, error)

	// Millis returns a free-running millisecond counter. Callers compare
	// two readings with unsigned subtraction so a wraparound around
	// MaxUint32 still yields the correct elapsed duration.
	Millis() uint32
}
