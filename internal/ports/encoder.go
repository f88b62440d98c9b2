package ports

import (
	"github.com/bft-labs/crcsim/pkg/bitstring"
	"github.com/bft-labs/crcsim/pkg/crc"
)

// CheckEncoder computes check codes. *crc.Divider and *crc.Table8 satisfy it.
type CheckEncoder interface {
	// Encode returns the check code of chunk. Sender and receiver call it
	// with the same encoder, so a frame verifies when the recomputed code
	// equals the received one.
	Encode(chunk bitstring.BitString) (bitstring.BitString, error)

	// Polynomial returns the generator the encoder divides by.
	Polynomial() crc.Polynomial
}
