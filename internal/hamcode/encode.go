package hamcode

// EncodeText encodes text into a fresh grid. It returns ErrPayloadTooLarge
// (wrapped) when text encodes to more than MaxPayload UTF-8 bytes; the length
// check runs before any grid is built. src supplies the filler bits that pad
// the message after the NUL terminator.
func EncodeText(text string, src BitSource) (Grid, error) {
	msg, err := buildMessage(text, src)
	if err != nil {
		return Grid{}, err
	}
	var cws [chunkCount]uint16
	for i := range cws {
		cws[i] = encodeChunk(msg[i*chunkDataBits : (i+1)*chunkDataBits])
	}
	return ApplyFinderOverlay(placeCodewords(Grid{}, cws)), nil
}
