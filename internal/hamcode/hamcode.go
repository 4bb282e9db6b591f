// Package hamcode encodes short UTF-8 strings into 20×20 black/white matrix
// codes and decodes such grids back to text.
//
// Format summary (black = 1, white = 0):
//
//   - The top 4 rows and left 4 columns form a fixed finder pattern; the
//     remaining 16×16 cells carry data.
//   - A payload of up to 21 UTF-8 bytes is followed by one NUL terminator and
//     random filler bits up to a 176-bit message.
//   - The message is split into sixteen 11-bit chunks; each chunk is expanded
//     to a 16-bit Extended Hamming(16,11) SECDED codeword (indices 1, 2, 4, 8
//     hold Hamming parity, index 0 holds overall parity). A single flipped bit
//     per codeword is corrected; two flipped bits are detected and the whole
//     decode is rejected.
//   - The data region is divided into sixteen 4×4 regions. Region b (row-major)
//     carries bit b of every codeword; within a region, the cell at local
//     (rr, cc) belongs to codeword rr·4+cc.
//
// Every operation is a pure function over Grid values; callers on separate
// goroutines never share state.
package hamcode

// Grid geometry.
const (
	// Size is the grid side length in cells.
	Size = 20
	// MaxPayload is the payload capacity in UTF-8 bytes.
	MaxPayload = 21

	dataStart = 4  // first data row/column past the finder border
	dataSize  = 16 // side length of the data region
)

// Message and codeword geometry.
const (
	messageBits   = 176 // 22 bytes: payload, NUL terminator, random filler
	chunkCount    = 16
	chunkDataBits = 11
	codewordBits  = 16
)

// dataPositions lists the codeword indices that carry data bits, in message
// order. The remaining indices hold parity: 1, 2, 4, 8 for the Hamming checks
// and 0 for overall parity.
var dataPositions = [chunkDataBits]int{3, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15}
