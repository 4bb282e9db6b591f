package hamcode

import "math/bits"

// A codeword is a uint16 whose bit i is codeword index i: data bits live at
// dataPositions, Hamming parity at indices 1, 2, 4 and 8, overall parity at
// index 0.

// parityChecks drives both encode and decode: parity position p covers every
// index i in 1..15 with i&p != 0 (the position itself included).
var parityChecks = [4]struct {
	pos  int
	mask uint16
}{
	{1, 0xaaaa}, // 1,3,5,7,9,11,13,15
	{2, 0xcccc}, // 2,3,6,7,10,11,14,15
	{4, 0xf0f0}, // 4,5,6,7,12,13,14,15
	{8, 0xff00}, // 8..15
}

func parity16(x uint16) int {
	return bits.OnesCount16(x) & 1
}

// encodeChunk expands 11 data bits into an Extended Hamming(16,11) SECDED
// codeword. Each Hamming parity bit makes its covered index set even; the
// overall parity bit then makes the parity of all 16 bits even.
func encodeChunk(data []bool) uint16 {
	var cw uint16
	for i, pos := range dataPositions {
		if data[i] {
			cw |= 1 << pos
		}
	}
	for _, pc := range parityChecks {
		if parity16(cw&pc.mask) == 1 {
			cw |= 1 << pc.pos
		}
	}
	if parity16(cw&^1) == 1 {
		cw |= 1
	}
	return cw
}

// decodeChunk recovers the 11 data bits of a received codeword. The syndrome
// ORs together every parity position whose check fails; combined with the
// overall parity of the received word it separates the four cases:
//
//	overall even, syndrome 0  → clean
//	overall odd,  syndrome 0  → overall-parity bit flipped; fix it
//	overall odd,  syndrome ≠0 → single-bit error at index syndrome; fix it
//	overall even, syndrome ≠0 → two bits flipped; uncorrectable
func decodeChunk(cw uint16) (data []bool, corrected, doubleError bool) {
	syndrome := 0
	for _, pc := range parityChecks {
		if parity16(cw&pc.mask) == 1 {
			syndrome |= pc.pos
		}
	}
	overall := parity16(cw)
	switch {
	case overall == 1 && syndrome == 0:
		cw ^= 1
		corrected = true
	case overall == 1 && syndrome != 0:
		cw ^= 1 << syndrome
		corrected = true
	case overall == 0 && syndrome != 0:
		doubleError = true
	}
	data = make([]bool, chunkDataBits)
	for i, pos := range dataPositions {
		data[i] = cw>>pos&1 == 1
	}
	return data, corrected, doubleError
}
