package bitstring

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidSymbol is returned when parsing text that contains anything other
// than '0', '1' or the separators ' ' and '_'.
var ErrInvalidSymbol = errors.New("bitstring: invalid symbol")

// BitString is an immutable, ordered sequence of bits.
// Bits are packed most-significant-bit first; bits past Len in the last byte
// are always zero. The zero value is an empty BitString.
type BitString struct {
	buf []byte
	n   int
}

// New returns an all-zero BitString of length n.
func New(n int) BitString {
	if n < 0 {
		panic(fmt.Sprintf("bitstring: negative length %d", n))
	}
	return BitString{buf: make([]byte, byteLen(n)), n: n}
}

// Parse builds a BitString from its textual form, e.g. "0100 0001".
// Spaces and underscores are accepted as group separators.
func Parse(s string) (BitString, error) {
	b := New(countSymbols(s))
	i := 0
	for pos, r := range s {
		switch r {
		case '0':
			i++
		case '1':
			b.buf[i/8] |= 0x80 >> (i % 8)
			i++
		case ' ', '_':
		default:
			return BitString{}, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, r, pos)
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBytes returns the 8*len(data) bits of data, MSB first.
func FromBytes(data []byte) BitString {
	buf := make([]byte, len(data))
	copy(buf, data)
	return BitString{buf: buf, n: len(data) * 8}
}

// FromBits builds a BitString from one element per bit; any nonzero element is a 1.
func FromBits(values []uint8) BitString {
	b := New(len(values))
	for i, v := range values {
		if v != 0 {
			b.buf[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b
}

// Len returns the number of bits.
func (b BitString) Len() int { return b.n }

// Bit returns the bit at position i (0 is the first, most significant bit).
// It panics if i is out of range.
func (b BitString) Bit(i int) uint8 {
	b.checkIndex(i)
	return (b.buf[i/8] >> (7 - i%8)) & 1
}

// Flip returns a copy of b with bit i inverted.
func (b BitString) Flip(i int) BitString {
	b.checkIndex(i)
	c := b.clone()
	c.buf[i/8] ^= 0x80 >> (i % 8)
	return c
}

// Append returns b followed by o.
func (b BitString) Append(o BitString) BitString {
	c := BitString{buf: make([]byte, byteLen(b.n+o.n)), n: b.n + o.n}
	copy(c.buf, b.buf)
	if b.n%8 == 0 {
		copy(c.buf[b.n/8:], o.buf)
		return c
	}
	for i := 0; i < o.n; i++ {
		if o.Bit(i) == 1 {
			j := b.n + i
			c.buf[j/8] |= 0x80 >> (j % 8)
		}
	}
	return c
}

// Slice returns bits [from, to). It panics on invalid bounds, like slicing.
func (b BitString) Slice(from, to int) BitString {
	if from < 0 || to < from || to > b.n {
		panic(fmt.Sprintf("bitstring: slice bounds [%d:%d] out of range for length %d", from, to, b.n))
	}
	c := New(to - from)
	if from%8 == 0 {
		copy(c.buf, b.buf[from/8:])
		c.clearTail()
		return c
	}
	for i := from; i < to; i++ {
		if b.Bit(i) == 1 {
			j := i - from
			c.buf[j/8] |= 0x80 >> (j % 8)
		}
	}
	return c
}

// PadRight returns b extended with zero bits up to length n.
// If b is already at least n bits long, b is returned unchanged.
func (b BitString) PadRight(n int) BitString {
	if n <= b.n {
		return b
	}
	c := New(n)
	copy(c.buf, b.buf)
	return c
}

// Complement returns b with every bit inverted.
func (b BitString) Complement() BitString {
	c := b.clone()
	for i := range c.buf {
		c.buf[i] = ^c.buf[i]
	}
	c.clearTail()
	return c
}

// Equal reports whether b and o have the same length and bits.
func (b BitString) Equal(o BitString) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.buf {
		if b.buf[i] != o.buf[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every bit is 0. An empty BitString is zero.
func (b BitString) IsZero() bool {
	for _, v := range b.buf {
		if v != 0 {
			return false
		}
	}
	return true
}

// OnesCount returns the number of 1 bits.
func (b BitString) OnesCount() int {
	total := 0
	for _, v := range b.buf {
		total += bits.OnesCount8(v)
	}
	return total
}

// Diff returns the positions where b and o differ, in ascending order.
// It panics if the lengths differ.
func (b BitString) Diff(o BitString) []int {
	if b.n != o.n {
		panic(fmt.Sprintf("bitstring: diff of lengths %d and %d", b.n, o.n))
	}
	var positions []int
	for i := range b.buf {
		x := b.buf[i] ^ o.buf[i]
		for x != 0 {
			lead := bits.LeadingZeros8(x)
			positions = append(positions, i*8+lead)
			x &^= 0x80 >> lead
		}
	}
	return positions
}

// Bytes returns a copy of the packed representation. A partial last byte is
// padded with zero bits on the right.
func (b BitString) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// String returns the bits as a string of '0' and '1'.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.Bit(i))
	}
	return sb.String()
}

// Group returns the textual form with a space after every size bits,
// e.g. Group(8) renders bytes. size <= 0 behaves like String.
func (b BitString) Group(size int) string {
	if size <= 0 {
		return b.String()
	}
	var sb strings.Builder
	sb.Grow(b.n + b.n/size)
	for i := 0; i < b.n; i++ {
		if i > 0 && i%size == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + b.Bit(i))
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b BitString) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BitString) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b BitString) clone() BitString {
	buf := make([]byte, len(b.buf))
	copy(buf, b.buf)
	return BitString{buf: buf, n: b.n}
}

func (b BitString) clearTail() {
	if r := b.n % 8; r != 0 {
		b.buf[len(b.buf)-1] &= 0xFF << (8 - r)
	}
}

func (b BitString) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitstring: index %d out of range for length %d", i, b.n))
	}
}

func byteLen(n int) int { return (n + 7) / 8 }

func countSymbols(s string) int {
	n := 0
	for _, r := range s {
		if r == '0' || r == '1' {
			n++
		}
	}
	return n
}
