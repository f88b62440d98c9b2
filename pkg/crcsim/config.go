package crcsim

import (
	"fmt"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/pkg/bitstring"
	"github.com/bft-labs/crcsim/pkg/channel"
	"github.com/bft-labs/crcsim/pkg/crc"
)

// Check code engines.
const (
	// EngineDivision computes check codes by bitwise long division.
	// It accepts any polynomial and chunk size.
	EngineDivision = "division"

	// EngineTable uses a 256-entry lookup table. It requires a 9-bit
	// polynomial and a chunk size that is a multiple of 8.
	EngineTable = "table"
)

// Default values.
const (
	DefaultMessage          = "I love you"
	DefaultChunkSizeBits    = 64
	DefaultErrorProbability = 0.1
	DefaultSeed             = 1
	DefaultUnitBits         = bitstring.ByteBits
)

// Config holds the parameters of a simulation.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Message is the text to transmit. An empty message yields no bursts.
	Message string

	// Polynomial is the generator, highest degree first, e.g. "100000111".
	Polynomial string

	// ChunkSizeBits is the number of message bits per burst.
	ChunkSizeBits int

	// ErrorProbability is the per-bit flip probability of the channel, in [0, 1].
	ErrorProbability float64

	// Seed initialises the channel's random generator.
	Seed int64

	// UnitBits is the number of bits each message byte is encoded with, in [1, 8].
	UnitBits int

	// Engine selects the check code implementation: EngineDivision or EngineTable.
	Engine string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Message:          DefaultMessage,
		Polynomial:       crc.DefaultPolynomial,
		ChunkSizeBits:    DefaultChunkSizeBits,
		ErrorProbability: DefaultErrorProbability,
		Seed:             DefaultSeed,
		UnitBits:         DefaultUnitBits,
		Engine:           EngineDivision,
	}
}

// Validate checks the configuration. Every returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	poly, err := crc.ParsePolynomial(c.Polynomial)
	if err != nil {
		return invalid(err)
	}
	if err := crc.ValidateChunkSize(poly, c.ChunkSizeBits); err != nil {
		return invalid(err)
	}
	if err := channel.ValidateProbability(c.ErrorProbability); err != nil {
		return invalid(err)
	}
	if _, err := bitstring.FromText(c.Message, c.UnitBits); err != nil {
		return invalid(err)
	}

	switch c.Engine {
	case EngineDivision:
	case EngineTable:
		if poly.Width() != 8 {
			return invalid(fmt.Errorf("%w: table engine needs a 9-bit polynomial", crc.ErrInvalidPolynomial))
		}
		if err := crc.ValidateAligned(c.ChunkSizeBits); err != nil {
			return invalid(err)
		}
	default:
		return invalid(fmt.Errorf("%w: %q", domain.ErrUnknownEngine, c.Engine))
	}

	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
