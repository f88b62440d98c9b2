package ports

import "github.com/bft-labs/crcsim/pkg/bitstring"

// Channel carries a frame from sender to receiver. The returned frame has the
// same length as the input; the input is never modified.
// *channel.Simulator satisfies it. A real transport would plug in here.
type Channel interface {
	Transmit(frame bitstring.BitString) (bitstring.BitString, error)
}
