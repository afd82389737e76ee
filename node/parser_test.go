package node

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelrobotics/rosnode/wire"
)

func feedAll(p *Parser, data []byte, nowMillis uint32) ParseResult {
	var last ParseResult
	for _, b := range data {
		last = p.Feed(b, nowMillis)
	}
	return last
}

func TestParserDeliversValidFrame(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(0x64, []byte{1, 2, 3})

	got := feedAll(p, frame, 0)

	require.True(t, got.Delivered)
	require.EqualValues(t, 0x64, got.TopicID)
	require.Equal(t, []byte{1, 2, 3}, got.Payload)
	require.Equal(t, stateAwaitSync1, p.state)
}

func TestParserRejectsBadChecksum(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(0x64, []byte{1, 2, 3})
	frame[len(frame)-1] ^= 0xFF

	got := feedAll(p, frame, 0)

	require.False(t, got.Delivered)
	require.Equal(t, stateAwaitSync1, p.state)
}

func TestParserResyncsOnStrayByte(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(0x64, []byte{1, 2, 3})

	// Prefix a stray non-sync byte and a lone 0xFF that never completes
	// the sync pair; the parser must still land on the real frame.
	noisy := append([]byte{0x11, 0xFF, 0x00}, frame...)

	got := feedAll(p, noisy, 0)

	require.True(t, got.Delivered)
	require.EqualValues(t, 0x64, got.TopicID)
}

func TestParserPayloadContainingSyncBytesIsNotMistakenForResync(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(200, []byte{0xFF, 0xFF, 0x00, 0xFF})

	got := feedAll(p, frame, 0)

	require.True(t, got.Delivered)
	require.Equal(t, []byte{0xFF, 0xFF, 0x00, 0xFF}, got.Payload)
}

func TestParserRejectsOversizedLength(t *testing.T) {
	p := NewParser(4)
	frame := wire.Encode(1, []byte{1, 2, 3, 4, 5})

	for _, b := range frame {
		p.Feed(b, 0)
	}

	require.Equal(t, stateAwaitSync1, p.state)
}

func TestParserMidFrameTimeout(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(0x64, []byte{1, 2, 3})

	// Feed the header, then let 25ms elapse before the rest arrives.
	for i := 0; i < 6; i++ {
		p.Feed(frame[i], 0)
	}
	p.CheckTimeout(25)

	require.Equal(t, stateAwaitSync1, p.state)

	got := feedAll(p, frame[6:], 25)
	require.False(t, got.Delivered)
}

func TestParserZeroLengthPayload(t *testing.T) {
	p := NewParser(64)
	frame := wire.Encode(42, nil)

	got := feedAll(p, frame, 0)

	require.True(t, got.Delivered)
	require.Empty(t, got.Payload)
}

func TestParserExactCapacityPayloadAccepted(t *testing.T) {
	p := NewParser(4)
	frame := wire.Encode(1, []byte{1, 2, 3, 4})

	got := feedAll(p, frame, 0)

	require.True(t, got.Delivered)
	require.Equal(t, []byte{1, 2, 3, 4}, got.Payload)
}
