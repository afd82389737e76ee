package node

import "github.com/kestrelrobotics/rosnode/wire"

// parseState is the tagged value over the frame's phases.
type parseState int

const (
	stateAwaitSync1 parseState = iota
	stateAwaitSync2
	stateTopicLow
	stateTopicHigh
	stateLengthLow
	stateLengthHigh
	statePayload
	stateChecksum
)

// msgTimeoutMillis is the soft mid-frame deadline: a frame that stalls
// this long past its first sync byte is abandoned and the parser resyncs.
const msgTimeoutMillis uint32 = 20

// ParseResult is what Feed reports after consuming one byte.
type ParseResult struct {
	// Delivered is true exactly when this byte completed a frame whose
	// checksum validated; TopicID and Payload are only meaningful then.
	Delivered bool
	TopicID   uint16
	Payload   []byte
}

// Parser is component E: a bytewise state machine that reassembles an
// inbound frame from a non-blocking byte stream. It never blocks and never
// grows its buffer past the INPUT_SIZE it was constructed with.
type Parser struct {
	state parseState

	topicID    uint16
	remaining  int
	writeIndex int
	checksum   int

	buf []byte // len == INPUT_SIZE

	deadline    uint32
	hasDeadline bool
}

// NewParser builds a parser with a payload buffer of inputSize bytes.
func NewParser(inputSize int) *Parser {
	return &Parser{buf: make([]byte, inputSize)}
}

// CheckTimeout implements the "on entry to every poll cycle" rule: if a
// frame is in progress and its soft deadline has elapsed, the parser resets
// and the in-progress accumulators are discarded. Callers invoke this once
// at the start of each drain loop, before feeding any bytes.
func (p *Parser) CheckTimeout(nowMillis uint32) {
	if p.state == stateAwaitSync1 {
		return
	}
	if p.hasDeadline && nowMillis-p.deadline < 1<<31 {
		p.reset()
	}
}

func (p *Parser) reset() {
	p.state = stateAwaitSync1
	p.hasDeadline = false
}

// Feed consumes one byte, advancing the state machine. nowMillis is only
// consulted on the sync1→sync2 transition, where it seeds the frame's
// soft deadline.
func (p *Parser) Feed(b byte, nowMillis uint32) ParseResult {
	switch p.state {
	case stateAwaitSync1:
		if b == wire.Sync1 {
			p.state = stateAwaitSync2
			p.deadline = nowMillis + msgTimeoutMillis
			p.hasDeadline = true
		}
	case stateAwaitSync2:
		if b == wire.Sync2 {
			p.state = stateTopicLow
		} else {
			p.state = stateAwaitSync1
		}
	case stateTopicLow:
		p.topicID = uint16(b)
		p.checksum = int(b)
		p.state = stateTopicHigh
	case stateTopicHigh:
		p.topicID |= uint16(b) << 8
		p.checksum += int(b)
		p.state = stateLengthLow
	case stateLengthLow:
		p.remaining = int(b)
		p.checksum += int(b)
		p.writeIndex = 0
		p.state = stateLengthHigh
	case stateLengthHigh:
		p.remaining |= int(b) << 8
		p.checksum += int(b)
		if p.remaining > len(p.buf) {
			// Length field exceeds the payload buffer: drop and resync.
			p.reset()
			return ParseResult{}
		}
		if p.remaining == 0 {
			p.state = stateChecksum
		} else {
			p.state = statePayload
		}
	case statePayload:
		p.buf[p.writeIndex] = b
		p.writeIndex++
		p.checksum += int(b)
		p.remaining--
		if p.remaining == 0 {
			p.state = stateChecksum
		}
	case stateChecksum:
		p.checksum += int(b)
		delivered := wire.ValidChecksum(p.checksum)
		result := ParseResult{}
		if delivered {
			result.Delivered = true
			result.TopicID = p.topicID
			result.Payload = p.buf[:p.writeIndex]
		}
		p.reset()
		return result
	}
	return ParseResult{}
}
