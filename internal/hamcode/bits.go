package hamcode

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrPayloadTooLarge is returned by EncodeText when the input encodes to more
// than MaxPayload UTF-8 bytes.
var ErrPayloadTooLarge = errors.New("hamcode: payload exceeds 21 UTF-8 bytes")

// BitSource yields single bits. EncodeText draws its filler bits from one,
// so a fixed source makes encoding reproducible.
type BitSource interface {
	Bit() bool
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a BitSource backed by a math/rand generator with the
// given seed.
func NewRandSource(seed int64) BitSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Bit() bool {
	return s.r.Intn(2) == 1
}

// pack expands data to bits, most significant bit of each byte first.
func pack(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>i&1 == 1)
		}
	}
	return bits
}

// unpack is the inverse of pack. When len(bits) is not a multiple of 8 the
// final byte is zero-padded on the right.
func unpack(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

// buildMessage assembles the 176-bit message for text: the UTF-8 payload,
// one NUL terminator, then single bits from src until the message is full.
// The payload length is checked before anything else happens.
func buildMessage(text string, src BitSource) ([]bool, error) {
	if len(text) > MaxPayload {
		return nil, fmt.Errorf("%w (got %d)", ErrPayloadTooLarge, len(text))
	}
	bits := pack(append([]byte(text), 0))
	for len(bits) < messageBits {
		bits = append(bits, src.Bit())
	}
	return bits[:messageBits], nil
}
