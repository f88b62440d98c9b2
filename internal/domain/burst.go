package domain

import "github.com/bft-labs/crcsim/pkg/bitstring"

// Burst is one fixed-size chunk of the message and the check code computed
// for it before transmission.
type Burst struct {
	// Index is the 0-based position of the burst in the message.
	Index int

	// Data is the chunk, including zero padding on the last burst.
	Data bitstring.BitString

	// Check is the check code of Data.
	Check bitstring.BitString
}

// Frame returns Data followed by Check, the bits handed to the channel.
func (b Burst) Frame() bitstring.BitString {
	return b.Data.Append(b.Check)
}

// SplitFrame separates a received frame into its data and check parts,
// using dataLen as the boundary.
func SplitFrame(frame bitstring.BitString, dataLen int) (data, check bitstring.BitString) {
	return frame.Slice(0, dataLen), frame.Slice(dataLen, frame.Len())
}
