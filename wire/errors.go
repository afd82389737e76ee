package wire

import "errors"

var (
	// ErrPayloadTooLarge is returned when a payload would not fit in the
	// caller-supplied buffer size.
	ErrPayloadTooLarge = errors.New("wire: payload too large for buffer")
	// ErrTimeout is returned by the hardware port when a read/write
	// deadline elapses.
	ErrTimeout = errors.New("wire: operation timed out")
	// ErrWrite is returned when the hardware port rejects a write.
	ErrWrite = errors.New("wire: hardware write failed")
)
