package hamcode

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrDoubleBitError is returned by DecodeGrid when any codeword shows an
// uncorrectable two-bit error.
var ErrDoubleBitError = errors.New("hamcode: double-bit error, decode rejected")

// Result is a successful decode.
type Result struct {
	// Text is the recovered payload, or a hex dump when HexFallback is set.
	Text string
	// Corrected counts the codewords that needed a single-bit correction.
	Corrected int
	// HexFallback is set when the recovered bytes were not valid UTF-8 and
	// Text holds their lowercase hex dump ("ff 10") instead.
	HexFallback bool
}

// DecodeGrid reads the data region of g, corrects up to one flipped bit per
// codeword and returns the recovered text. Any codeword with a two-bit error
// aborts the decode with an error wrapping ErrDoubleBitError; no partial text
// is ever returned. The payload ends at the first NUL byte; when no NUL
// survived, all 22 message bytes are the payload. A payload that is not valid
// UTF-8 does not fail the decode: Text degrades to a hex dump.
//
// The finder region is not inspected: a damaged finder pattern neither stops
// a decode nor affects the extracted data.
func DecodeGrid(g Grid) (Result, error) {
	cws := extractCodewords(g)
	msg := make([]bool, 0, messageBits)
	corrected := 0
	for i, cw := range cws {
		data, fixed, doubleErr := decodeChunk(cw)
		if doubleErr {
			return Result{}, fmt.Errorf("chunk %d: %w", i, ErrDoubleBitError)
		}
		if fixed {
			corrected++
		}
		msg = append(msg, data...)
	}
	buf := unpack(msg)
	payload := buf
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		payload = buf[:i]
	}
	res := Result{Corrected: corrected}
	if utf8.Valid(payload) {
		res.Text = string(payload)
	} else {
		res.Text = hexDump(payload)
		res.HexFallback = true
	}
	return res, nil
}

func hexDump(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}
