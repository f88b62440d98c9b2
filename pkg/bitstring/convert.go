package bitstring

import (
	"errors"
	"fmt"
)

// ByteBits is the unit size used by ToBinary and FromBinary.
const ByteBits = 8

var (
	// ErrInvalidUnitBits is returned when the bits-per-unit parameter is outside [1, 8].
	ErrInvalidUnitBits = errors.New("bitstring: unit bits must be between 1 and 8")

	// ErrUnitOverflow is returned when a character does not fit in the unit size.
	ErrUnitOverflow = errors.New("bitstring: character does not fit in unit")

	// ErrTruncated marks a decode that dropped a trailing partial unit.
	ErrTruncated = errors.New("bitstring: trailing partial unit dropped")
)

// TruncationError reports how many trailing bits ToText could not decode.
// It matches ErrTruncated with errors.Is.
type TruncationError struct {
	UnitBits int
	Dropped  int
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("bitstring: dropped %d trailing bit(s), shorter than a %d-bit unit", e.Dropped, e.UnitBits)
}

// Is reports whether target is ErrTruncated.
func (e *TruncationError) Is(target error) bool { return target == ErrTruncated }

// FromText encodes every byte of text as unitBits bits, most significant bit
// first, concatenated in input order.
func FromText(text string, unitBits int) (BitString, error) {
	if unitBits < 1 || unitBits > 8 {
		return BitString{}, fmt.Errorf("%w: %d", ErrInvalidUnitBits, unitBits)
	}
	out := New(len(text) * unitBits)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if unitBits < 8 && c>>unitBits != 0 {
			return BitString{}, fmt.Errorf("%w: byte 0x%02x at offset %d needs more than %d bits", ErrUnitOverflow, c, i, unitBits)
		}
		for j := 0; j < unitBits; j++ {
			if (c>>(unitBits-1-j))&1 == 1 {
				pos := i*unitBits + j
				out.buf[pos/8] |= 0x80 >> (pos % 8)
			}
		}
	}
	return out, nil
}

// ToText decodes consecutive unitBits groups back into bytes.
// A trailing group shorter than unitBits is dropped: the decoded prefix is
// returned together with a *TruncationError.
func ToText(b BitString, unitBits int) (string, error) {
	if unitBits < 1 || unitBits > 8 {
		return "", fmt.Errorf("%w: %d", ErrInvalidUnitBits, unitBits)
	}
	units := b.Len() / unitBits
	out := make([]byte, units)
	for i := 0; i < units; i++ {
		var c byte
		for j := 0; j < unitBits; j++ {
			c = c<<1 | b.Bit(i*unitBits+j)
		}
		out[i] = c
	}
	if rest := b.Len() - units*unitBits; rest > 0 {
		return string(out), &TruncationError{UnitBits: unitBits, Dropped: rest}
	}
	return string(out), nil
}

// ToBinary is FromText with 8-bit units. It cannot fail.
func ToBinary(text string) BitString {
	b, _ := FromText(text, ByteBits)
	return b
}

// FromBinary is ToText with 8-bit units.
func FromBinary(b BitString) (string, error) {
	return ToText(b, ByteBits)
}
