package hamcode

import (
	"strings"
	"testing"
)

// gridFromMessage builds a grid straight from 22 message bytes, bypassing
// EncodeText's payload rules. Used to reach states the encoder never
// produces, like messages with no NUL byte at all.
func gridFromMessage(t *testing.T, buf []byte) Grid {
	t.Helper()
	if len(buf) != messageBits/8 {
		t.Fatalf("gridFromMessage: %d bytes, want %d", len(buf), messageBits/8)
	}
	msg := pack(buf)
	var cws [chunkCount]uint16
	for i := range cws {
		cws[i] = encodeChunk(msg[i*chunkDataBits : (i+1)*chunkDataBits])
	}
	return ApplyFinderOverlay(placeCodewords(Grid{}, cws))
}

func TestDecodeGridNoTerminator(t *testing.T) {
	// Without a NUL byte the whole 22-byte buffer is the payload.
	buf := []byte(strings.Repeat("a", 22))
	res, err := DecodeGrid(gridFromMessage(t, buf))
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if res.Text != string(buf) {
		t.Errorf("Text = %q, want %q", res.Text, buf)
	}
	if res.HexFallback {
		t.Error("HexFallback = true, want false")
	}
}

func TestDecodeGridHexFallback(t *testing.T) {
	buf := make([]byte, 22)
	buf[0] = 0xff
	buf[1] = 0x10
	res, err := DecodeGrid(gridFromMessage(t, buf))
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if !res.HexFallback {
		t.Fatal("HexFallback = false, want true")
	}
	if res.Text != "ff 10" {
		t.Errorf("Text = %q, want %q", res.Text, "ff 10")
	}
}

func TestDecodeGridCountsCorrectedChunks(t *testing.T) {
	g := gridFromMessage(t, []byte("corrected-count-test\x00!"))
	// Two flips in different chunks: each one is a correctable single-bit
	// error in its own codeword.
	g = g.Toggle(4, 4) // chunk 0, bit 0
	g = g.Toggle(9, 9) // chunk 5, bit 5
	res, err := DecodeGrid(g)
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if res.Corrected != 2 {
		t.Errorf("Corrected = %d, want 2", res.Corrected)
	}
	if res.Text != "corrected-count-test" {
		t.Errorf("Text = %q, want %q", res.Text, "corrected-count-test")
	}
}
