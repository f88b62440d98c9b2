// Package channel simulates a noisy binary channel that flips each bit
// independently with a fixed probability.
package channel

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bft-labs/crcsim/pkg/bitstring"
)

// ErrInvalidProbability is returned for probabilities outside [0, 1].
var ErrInvalidProbability = errors.New("channel: probability must be within [0, 1]")

// Simulator corrupts frames with an explicit, caller-owned random source.
// A Simulator is not safe for concurrent use.
type Simulator struct {
	probability float64
	rng         *rand.Rand
}

// New returns a Simulator flipping bits with the given probability, seeded
// with seed.
func New(probability float64, seed int64) (*Simulator, error) {
	return NewWithRand(probability, rand.New(rand.NewSource(seed)))
}

// NewWithRand returns a Simulator drawing from rng.
func NewWithRand(probability float64, rng *rand.Rand) (*Simulator, error) {
	if err := ValidateProbability(probability); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("channel: nil random source")
	}
	return &Simulator{probability: probability, rng: rng}, nil
}

// ValidateProbability checks that p is a probability.
func ValidateProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return nil
}

// Probability returns the configured flip probability.
func (s *Simulator) Probability() float64 { return s.probability }

// Transmit passes frame through the channel with the configured probability.
func (s *Simulator) Transmit(frame bitstring.BitString) (bitstring.BitString, error) {
	return s.Corrupt(frame, s.probability)
}

// Corrupt returns a copy of frame in which each bit was flipped with
// probability p. One uniform draw in [0, 1) is made per bit, in order; a bit
// flips when its draw is below p. The input frame is left untouched.
func (s *Simulator) Corrupt(frame bitstring.BitString, p float64) (bitstring.BitString, error) {
	if err := ValidateProbability(p); err != nil {
		return bitstring.BitString{}, err
	}

	out := make([]uint8, frame.Len())
	for i := range out {
		out[i] = frame.Bit(i)
		if s.rng.Float64() < p {
			out[i] ^= 1
		}
	}
	return bitstring.FromBits(out), nil
}
