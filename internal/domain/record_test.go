package domain

import (
	"math"
	"reflect"
	"testing"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

func testBurst() Burst {
	return Burst{
		Index: 0,
		Data:  bitstring.MustParse("01000001"),
		Check: bitstring.MustParse("11000000"),
	}
}

func TestBurst_Frame(t *testing.T) {
	b := testBurst()
	if got := b.Frame().String(); got != "0100000111000000" {
		t.Errorf("Frame() = %s", got)
	}
	data, check := SplitFrame(b.Frame(), 8)
	if !data.Equal(b.Data) || !check.Equal(b.Check) {
		t.Errorf("SplitFrame() = %s, %s", data, check)
	}
}

func TestNewVerificationRecord(t *testing.T) {
	b := testBurst()

	tests := []struct {
		name        string
		received    bitstring.BitString
		recomputed  bitstring.BitString
		wantMatch   bool
		wantFlipped []int
		wantOutcome Outcome
	}{
		{
			name:        "clean",
			received:    b.Frame(),
			recomputed:  b.Check,
			wantMatch:   true,
			wantFlipped: []int{},
			wantOutcome: OutcomeClean,
		},
		{
			name:        "detected",
			received:    b.Frame().Flip(3),
			recomputed:  bitstring.MustParse("10101010"),
			wantMatch:   false,
			wantFlipped: []int{3},
			wantOutcome: OutcomeDetected,
		},
		{
			name:        "undetected",
			received:    b.Frame().Flip(1).Flip(12),
			recomputed:  b.Check.Flip(4),
			wantMatch:   true,
			wantFlipped: []int{1, 12},
			wantOutcome: OutcomeUndetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewVerificationRecord(b, tt.received, tt.recomputed)
			if r.Match != tt.wantMatch {
				t.Errorf("Match = %v, want %v", r.Match, tt.wantMatch)
			}
			if !reflect.DeepEqual(r.Flipped, tt.wantFlipped) {
				t.Errorf("Flipped = %v, want %v", r.Flipped, tt.wantFlipped)
			}
			if r.Outcome() != tt.wantOutcome {
				t.Errorf("Outcome() = %v, want %v", r.Outcome(), tt.wantOutcome)
			}
			if r.ReceivedData.Len() != 8 || r.ReceivedCheck.Len() != 8 {
				t.Errorf("received parts have lengths %d and %d, want 8 and 8", r.ReceivedData.Len(), r.ReceivedCheck.Len())
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeClean, "clean"},
		{OutcomeDetected, "detected"},
		{OutcomeUndetected, "undetected"},
		{Outcome(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %s, want %s", tt.o, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	b := testBurst()
	records := []VerificationRecord{
		NewVerificationRecord(b, b.Frame(), b.Check),
		NewVerificationRecord(b, b.Frame().Flip(0), b.Check.Flip(7)),
		NewVerificationRecord(b, b.Frame().Flip(2).Flip(9), b.Check.Flip(1)),
	}

	s := Summarize(records)
	want := Summary{
		Bursts:      3,
		Matched:     2,
		Mismatched:  1,
		Corrupted:   2,
		Undetected:  1,
		FlippedBits: 3,
		TotalBits:   48,
	}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
	if got := s.ObservedBER(); math.Abs(got-3.0/48.0) > 1e-12 {
		t.Errorf("ObservedBER() = %v, want %v", got, 3.0/48.0)
	}
	if got := s.DetectionRate(); got != 0.5 {
		t.Errorf("DetectionRate() = %v, want 0.5", got)
	}
}

func TestSummary_Empty(t *testing.T) {
	s := Summarize(nil)
	if !s.Empty() {
		t.Error("Empty() = false for no records")
	}
	if s.ObservedBER() != 0 {
		t.Errorf("ObservedBER() = %v, want 0", s.ObservedBER())
	}
	if s.DetectionRate() != 1 {
		t.Errorf("DetectionRate() = %v, want 1", s.DetectionRate())
	}
}
