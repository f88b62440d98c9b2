package crc

import (
	"fmt"

	"github.com/sigurn/crc8"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

// Table8 computes check codes for 8-bit-wide generators with a 256-entry
// lookup table. Init and XorOut are zero and no reflection is applied, so for
// byte-aligned chunks it agrees bit for bit with Divider.
type Table8 struct {
	poly  Polynomial
	table *crc8.Table
}

// NewTable8 builds the lookup table for p. The generator must have degree 8.
func NewTable8(p Polynomial) (*Table8, error) {
	if p.Width() != 8 {
		return nil, fmt.Errorf("%w: table engine needs a 9-bit polynomial, got %d bits", ErrInvalidPolynomial, p.Len())
	}
	low := p.bits.Slice(1, p.Len()).Bytes()[0]
	params := crc8.Params{
		Poly: low,
		Name: fmt.Sprintf("CRC-8/0x%02X", low),
	}
	return &Table8{poly: p, table: crc8.MakeTable(params)}, nil
}

// Polynomial returns the generator.
func (t *Table8) Polynomial() Polynomial { return t.poly }

// Encode returns the 8-bit check code of chunk.
func (t *Table8) Encode(chunk bitstring.BitString) (bitstring.BitString, error) {
	if chunk.Len()%8 != 0 {
		return bitstring.BitString{}, fmt.Errorf("%w: %d bits", ErrUnaligned, chunk.Len())
	}
	sum := crc8.Checksum(chunk.Bytes(), t.table)
	return bitstring.FromBytes([]byte{sum}), nil
}

// ValidateAligned checks that chunks of chunkSize bits can be fed to Table8.
func ValidateAligned(chunkSize int) error {
	if chunkSize%8 != 0 {
		return fmt.Errorf("%w: %d bits", ErrUnaligned, chunkSize)
	}
	return nil
}
