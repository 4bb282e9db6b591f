package hamcode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dfbb/hamcode/internal/hamcode"
)

type fixedBits struct{ bit bool }

func (f fixedBits) Bit() bool { return f.bit }

// cellFor returns the grid cell that carries the given bit of the given
// codeword: region = bit position (row-major 4×4 blocks from (4,4)), local
// offset = chunk index. Derived here independently of the codec so the tests
// cross-check its arithmetic.
func cellFor(chunk, bit int) (row, col int) {
	return 4 + bit/4*4 + chunk/4, 4 + bit%4*4 + chunk%4
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"A",
		"hello",
		"Hello, 世界",
		"안녕하세요",
		"~!@#$%^&*()_+-=",
		strings.Repeat("a", 21),
	}
	for _, text := range cases {
		g, err := hamcode.EncodeText(text, hamcode.NewRandSource(1))
		if err != nil {
			t.Fatalf("EncodeText(%q) error: %v", text, err)
		}
		res, err := hamcode.DecodeGrid(g)
		if err != nil {
			t.Fatalf("DecodeGrid(%q) error: %v", text, err)
		}
		if res.Text != text {
			t.Errorf("round trip = %q, want %q", res.Text, text)
		}
		if res.Corrected != 0 {
			t.Errorf("round trip of %q: Corrected = %d, want 0", text, res.Corrected)
		}
		if res.HexFallback {
			t.Errorf("round trip of %q: HexFallback = true", text)
		}
	}
}

func TestRoundTripFillerIndependent(t *testing.T) {
	// The random filler never reaches the decoded text.
	for _, src := range []hamcode.BitSource{fixedBits{false}, fixedBits{true}, hamcode.NewRandSource(42)} {
		g, err := hamcode.EncodeText("pad", src)
		if err != nil {
			t.Fatalf("EncodeText error: %v", err)
		}
		res, err := hamcode.DecodeGrid(g)
		if err != nil {
			t.Fatalf("DecodeGrid error: %v", err)
		}
		if res.Text != "pad" {
			t.Errorf("Text = %q, want %q", res.Text, "pad")
		}
	}
}

func TestEncodeTextTooLarge(t *testing.T) {
	cases := []string{
		strings.Repeat("A", 22),
		"안녕하세요안녕하",   // 8 Hangul syllables = 24 UTF-8 bytes
		strings.Repeat("x", 100),
	}
	for _, text := range cases {
		_, err := hamcode.EncodeText(text, hamcode.NewRandSource(1))
		if !errors.Is(err, hamcode.ErrPayloadTooLarge) {
			t.Errorf("EncodeText(%q) error = %v, want ErrPayloadTooLarge", text, err)
		}
	}
}

func TestEncodeTextEmbeddedNUL(t *testing.T) {
	// An embedded NUL truncates the decoded payload there. Documented
	// behavior of the terminator search, not a defect.
	g, err := hamcode.EncodeText("ab\x00cd", hamcode.NewRandSource(1))
	if err != nil {
		t.Fatalf("EncodeText error: %v", err)
	}
	res, err := hamcode.DecodeGrid(g)
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if res.Text != "ab" {
		t.Errorf("Text = %q, want %q", res.Text, "ab")
	}
}

func TestSingleFlipAlwaysCorrected(t *testing.T) {
	// Flipping any one of the 256 data cells flips exactly one bit of exactly
	// one codeword, so every such grid must decode to the original text.
	const text = "resilience"
	clean, err := hamcode.EncodeText(text, hamcode.NewRandSource(3))
	if err != nil {
		t.Fatalf("EncodeText error: %v", err)
	}
	for row := 4; row < hamcode.Size; row++ {
		for col := 4; col < hamcode.Size; col++ {
			res, err := hamcode.DecodeGrid(clean.Toggle(row, col))
			if err != nil {
				t.Fatalf("flip (%d,%d): DecodeGrid error: %v", row, col, err)
			}
			if res.Text != text {
				t.Fatalf("flip (%d,%d): Text = %q, want %q", row, col, res.Text, text)
			}
			if res.Corrected < 1 {
				t.Fatalf("flip (%d,%d): Corrected = 0, want ≥1", row, col)
			}
		}
	}
}

func TestDoubleFlipSameChunkAlwaysRejected(t *testing.T) {
	clean, err := hamcode.EncodeText("detect me", hamcode.NewRandSource(4))
	if err != nil {
		t.Fatalf("EncodeText error: %v", err)
	}
	for chunk := 0; chunk < 16; chunk++ {
		for j := 0; j < 16; j++ {
			for k := j + 1; k < 16; k++ {
				r1, c1 := cellFor(chunk, j)
				r2, c2 := cellFor(chunk, k)
				_, err := hamcode.DecodeGrid(clean.Toggle(r1, c1).Toggle(r2, c2))
				if !errors.Is(err, hamcode.ErrDoubleBitError) {
					t.Fatalf("chunk %d bits %d,%d: error = %v, want ErrDoubleBitError", chunk, j, k, err)
				}
			}
		}
	}
}

func TestDoubleFlipDifferentChunksCorrected(t *testing.T) {
	// One flipped bit per codeword stays within the correction budget even
	// when several codewords are hit.
	const text = "spread damage"
	clean, err := hamcode.EncodeText(text, hamcode.NewRandSource(5))
	if err != nil {
		t.Fatalf("EncodeText error: %v", err)
	}
	r1, c1 := cellFor(2, 9)
	r2, c2 := cellFor(11, 9)
	res, err := hamcode.DecodeGrid(clean.Toggle(r1, c1).Toggle(r2, c2))
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if res.Text != text {
		t.Errorf("Text = %q, want %q", res.Text, text)
	}
	if res.Corrected != 2 {
		t.Errorf("Corrected = %d, want 2", res.Corrected)
	}
}
