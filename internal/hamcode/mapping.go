package hamcode

// The data region is divided into sixteen 4×4 regions, numbered row-major.
// Region b holds bit b of all 16 codewords; inside a region, the cell at
// local (rr, cc) belongs to codeword rr*4+cc. The layout is bit-position-
// major, so one codeword is spread over all 16 regions rather than filling a
// contiguous block. placeCodewords and extractCodewords are exact inverses
// and are the only two functions that know this arithmetic.

// placeCodewords writes all 16 codewords into the data region of g.
func placeCodewords(g Grid, cws [chunkCount]uint16) Grid {
	for b := 0; b < codewordBits; b++ {
		baseRow := dataStart + b/4*4
		baseCol := dataStart + b%4*4
		for ch := 0; ch < chunkCount; ch++ {
			g[baseRow+ch/4][baseCol+ch%4] = cws[ch]>>b&1 == 1
		}
	}
	return g
}

// extractCodewords reads all 16 codewords back out of the data region of g.
func extractCodewords(g Grid) [chunkCount]uint16 {
	var cws [chunkCount]uint16
	for b := 0; b < codewordBits; b++ {
		baseRow := dataStart + b/4*4
		baseCol := dataStart + b%4*4
		for ch := 0; ch < chunkCount; ch++ {
			if g[baseRow+ch/4][baseCol+ch%4] {
				cws[ch] |= 1 << b
			}
		}
	}
	return cws
}
