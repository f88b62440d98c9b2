// Package crc computes cyclic redundancy check codes by modulo-2 polynomial
// division.
//
// Two engines are provided. Divider works on arbitrary bit lengths and any
// generator polynomial. Table8 is a byte-oriented lookup-table engine for
// 8-bit-wide generators and produces the same check codes for byte-aligned
// chunks.
package crc

import (
	"errors"
	"fmt"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

// DefaultPolynomial is x^8 + x^2 + x + 1, the CRC-8/SMBUS generator.
const DefaultPolynomial = "100000111"

var (
	// ErrInvalidPolynomial is returned for generators shorter than two bits,
	// with a leading zero, or containing symbols other than 0 and 1.
	ErrInvalidPolynomial = errors.New("crc: invalid polynomial")

	// ErrPolynomialTooLong is returned when the generator is longer than the
	// zero-extended chunk it has to divide.
	ErrPolynomialTooLong = errors.New("crc: polynomial longer than extended chunk")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("crc: chunk size must be positive")

	// ErrUnaligned is returned when a byte-oriented engine is given a chunk
	// size that is not a multiple of eight.
	ErrUnaligned = errors.New("crc: chunk size is not byte aligned")
)

// Polynomial is a generator polynomial written as its coefficients, highest
// degree first. The leading coefficient is always 1.
type Polynomial struct {
	bits bitstring.BitString
}

// ParsePolynomial parses a generator such as "100000111".
func ParsePolynomial(s string) (Polynomial, error) {
	b, err := bitstring.Parse(s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%w: %v", ErrInvalidPolynomial, err)
	}
	return NewPolynomial(b)
}

// NewPolynomial wraps b as a generator polynomial.
func NewPolynomial(b bitstring.BitString) (Polynomial, error) {
	if b.Len() < 2 {
		return Polynomial{}, fmt.Errorf("%w: need at least 2 bits, got %d", ErrInvalidPolynomial, b.Len())
	}
	if b.Bit(0) != 1 {
		return Polynomial{}, fmt.Errorf("%w: leading bit of %s must be 1", ErrInvalidPolynomial, b)
	}
	return Polynomial{bits: b}, nil
}

// MustParsePolynomial is like ParsePolynomial but panics on error.
func MustParsePolynomial(s string) Polynomial {
	p, err := ParsePolynomial(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns k, the number of coefficients.
func (p Polynomial) Len() int { return p.bits.Len() }

// Width returns k-1, the length of the check code.
func (p Polynomial) Width() int { return p.bits.Len() - 1 }

// Bits returns the coefficients.
func (p Polynomial) Bits() bitstring.BitString { return p.bits }

// DetectsSingleBitErrors reports whether the constant term is 1. Such a
// generator never divides x^i, so every single flipped bit changes the
// remainder.
func (p Polynomial) DetectsSingleBitErrors() bool {
	return p.bits.Len() > 0 && p.bits.Bit(p.bits.Len()-1) == 1
}

// String returns the coefficients as 0/1 text.
func (p Polynomial) String() string { return p.bits.String() }

// MarshalText implements encoding.TextMarshaler.
func (p Polynomial) MarshalText() ([]byte, error) { return p.bits.MarshalText() }

// ValidateChunkSize checks that chunks of chunkSize bits can be encoded with p.
func ValidateChunkSize(p Polynomial, chunkSize int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}
	if p.Len() > chunkSize+p.Width() {
		return fmt.Errorf("%w: %d-bit polynomial, %d-bit chunk", ErrPolynomialTooLong, p.Len(), chunkSize)
	}
	return nil
}
