package crc

import (
	"fmt"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

// Divider computes check codes by bitwise modulo-2 long division.
type Divider struct {
	poly Polynomial
}

// NewDivider returns a Divider for generator p.
func NewDivider(p Polynomial) *Divider {
	return &Divider{poly: p}
}

// Polynomial returns the generator.
func (d *Divider) Polynomial() Polynomial { return d.poly }

// Encode returns the Width()-bit check code of chunk: the remainder of
// chunk followed by Width() zero bits, divided by the generator.
func (d *Divider) Encode(chunk bitstring.BitString) (bitstring.BitString, error) {
	return d.Remainder(chunk.Append(bitstring.New(d.poly.Width())))
}

// Remainder divides dividend by the generator and returns the Width()-bit
// remainder. The dividend must be at least as long as the generator.
func (d *Divider) Remainder(dividend bitstring.BitString) (bitstring.BitString, error) {
	k := d.poly.Len()
	if dividend.Len() < k {
		return bitstring.BitString{}, fmt.Errorf("%w: %d-bit polynomial, %d-bit dividend", ErrPolynomialTooLong, k, dividend.Len())
	}

	reg := make([]uint8, k)
	for i := range reg {
		reg[i] = dividend.Bit(i)
	}
	for pick := k; ; pick++ {
		if reg[0] == 1 {
			for i := range reg {
				reg[i] ^= d.poly.bits.Bit(i)
			}
		}
		if pick == dividend.Len() {
			break
		}
		copy(reg, reg[1:])
		reg[k-1] = dividend.Bit(pick)
	}
	return bitstring.FromBits(reg[1:]), nil
}

// Check reports whether codeword (data followed by its check code) leaves a
// zero remainder.
func (d *Divider) Check(codeword bitstring.BitString) (bool, error) {
	rem, err := d.Remainder(codeword)
	if err != nil {
		return false, err
	}
	return rem.IsZero(), nil
}
