package crc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

func TestParsePolynomial(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantWidth int
		wantSEC   bool
		wantErr   bool
	}{
		{name: "default", input: DefaultPolynomial, wantWidth: 8, wantSEC: true},
		{name: "crc-1 parity", input: "11", wantWidth: 1, wantSEC: true},
		{name: "no constant term", input: "100000110", wantWidth: 8, wantSEC: false},
		{name: "leading zero", input: "0111", wantErr: true},
		{name: "too short", input: "1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bad symbol", input: "10x1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePolynomial(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolynomial() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPolynomial) {
					t.Errorf("error = %v, want ErrInvalidPolynomial", err)
				}
				return
			}
			if p.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", p.Width(), tt.wantWidth)
			}
			if p.DetectsSingleBitErrors() != tt.wantSEC {
				t.Errorf("DetectsSingleBitErrors() = %v, want %v", p.DetectsSingleBitErrors(), tt.wantSEC)
			}
		})
	}
}

func TestValidateChunkSize(t *testing.T) {
	p := MustParsePolynomial(DefaultPolynomial)

	if err := ValidateChunkSize(p, 64); err != nil {
		t.Errorf("ValidateChunkSize(64) error = %v", err)
	}
	if err := ValidateChunkSize(p, 1); err != nil {
		t.Errorf("ValidateChunkSize(1) error = %v", err)
	}
	if err := ValidateChunkSize(p, 0); !errors.Is(err, ErrInvalidChunkSize) {
		t.Errorf("ValidateChunkSize(0) error = %v, want ErrInvalidChunkSize", err)
	}
}

func TestDivider_KnownValues(t *testing.T) {
	d := NewDivider(MustParsePolynomial(DefaultPolynomial))

	tests := []struct {
		name  string
		chunk bitstring.BitString
		want  string
	}{
		{name: "A", chunk: bitstring.ToBinary("A"), want: "11000000"},
		{name: "check string", chunk: bitstring.ToBinary("123456789"), want: "11110100"},
		{name: "all zeros", chunk: bitstring.New(64), want: "00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Encode(tt.chunk)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDivider_CheckCodeLength(t *testing.T) {
	for _, s := range []string{"11", "1011", "10011", DefaultPolynomial} {
		p := MustParsePolynomial(s)
		d := NewDivider(p)
		got, err := d.Encode(bitstring.ToBinary("I love you"))
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if got.Len() != p.Width() {
			t.Errorf("poly %s: check code length = %d, want %d", s, got.Len(), p.Width())
		}
	}
}

func TestDivider_DivisionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	polys := []string{DefaultPolynomial, "1011", "11000000000000101", "110101"}

	for _, s := range polys {
		d := NewDivider(MustParsePolynomial(s))
		for i := 0; i < 200; i++ {
			bits := make([]uint8, 1+rng.Intn(96))
			for j := range bits {
				bits[j] = uint8(rng.Intn(2))
			}
			chunk := bitstring.FromBits(bits)

			check, err := d.Encode(chunk)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			ok, err := d.Check(chunk.Append(check))
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if !ok {
				t.Fatalf("poly %s: Check(%s || %s) = false", s, chunk, check)
			}
		}
	}
}

func TestDivider_DetectsEverySingleBitError(t *testing.T) {
	d := NewDivider(MustParsePolynomial(DefaultPolynomial))
	chunk := bitstring.ToBinary("I love y")
	check, err := d.Encode(chunk)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	frame := chunk.Append(check)
	if frame.Len() != 72 {
		t.Fatalf("frame length = %d, want 72", frame.Len())
	}

	for i := 0; i < frame.Len(); i++ {
		received := frame.Flip(i)
		data := received.Slice(0, 64)
		recomputed, err := d.Encode(data)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if recomputed.Equal(received.Slice(64, 72)) {
			t.Errorf("flip at position %d went undetected", i)
		}
	}
}

func TestDivider_UndetectedPattern(t *testing.T) {
	d := NewDivider(MustParsePolynomial(DefaultPolynomial))
	chunk := bitstring.ToBinary("I love y")
	check, _ := d.Encode(chunk)
	frame := chunk.Append(check)

	// XOR-ing the generator itself into the frame leaves the remainder intact.
	received := frame
	for i := 0; i < 9; i++ {
		if d.Polynomial().Bits().Bit(i) == 1 {
			received = received.Flip(10 + i)
		}
	}
	ok, err := d.Check(received)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !ok {
		t.Error("multiple of the generator was detected, want undetected")
	}
}

func TestDivider_RemainderTooShort(t *testing.T) {
	d := NewDivider(MustParsePolynomial(DefaultPolynomial))
	if _, err := d.Remainder(bitstring.MustParse("1010")); !errors.Is(err, ErrPolynomialTooLong) {
		t.Errorf("Remainder() error = %v, want ErrPolynomialTooLong", err)
	}
	if _, err := d.Encode(bitstring.BitString{}); !errors.Is(err, ErrPolynomialTooLong) {
		t.Errorf("Encode(empty) error = %v, want ErrPolynomialTooLong", err)
	}
}

func TestTable8_AgreesWithDivider(t *testing.T) {
	p := MustParsePolynomial(DefaultPolynomial)
	div := NewDivider(p)
	tab, err := NewTable8(p)
	if err != nil {
		t.Fatalf("NewTable8() error = %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		data := make([]byte, 1+rng.Intn(16))
		rng.Read(data)
		chunk := bitstring.FromBytes(data)

		want, err := div.Encode(chunk)
		if err != nil {
			t.Fatalf("Divider.Encode() error = %v", err)
		}
		got, err := tab.Encode(chunk)
		if err != nil {
			t.Fatalf("Table8.Encode() error = %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("Table8 = %s, Divider = %s for %x", got, want, data)
		}
	}
}

func TestTable8_Errors(t *testing.T) {
	if _, err := NewTable8(MustParsePolynomial("1011")); !errors.Is(err, ErrInvalidPolynomial) {
		t.Errorf("NewTable8(1011) error = %v, want ErrInvalidPolynomial", err)
	}

	tab, err := NewTable8(MustParsePolynomial(DefaultPolynomial))
	if err != nil {
		t.Fatalf("NewTable8() error = %v", err)
	}
	if _, err := tab.Encode(bitstring.MustParse("101")); !errors.Is(err, ErrUnaligned) {
		t.Errorf("Encode(3 bits) error = %v, want ErrUnaligned", err)
	}
	if err := ValidateAligned(60); !errors.Is(err, ErrUnaligned) {
		t.Errorf("ValidateAligned(60) error = %v, want ErrUnaligned", err)
	}
}

func BenchmarkDivider_Encode64(b *testing.B) {
	d := NewDivider(MustParsePolynomial(DefaultPolynomial))
	chunk := bitstring.ToBinary("I love y")
	for i := 0; i < b.N; i++ {
		_, _ = d.Encode(chunk)
	}
}

func BenchmarkTable8_Encode64(b *testing.B) {
	tab, _ := NewTable8(MustParsePolynomial(DefaultPolynomial))
	chunk := bitstring.ToBinary("I love y")
	for i := 0; i < b.N; i++ {
		_, _ = tab.Encode(chunk)
	}
}
