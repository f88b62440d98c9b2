package crcsim

import (
	"math/rand"

	"github.com/bft-labs/crcsim/internal/ports"
	"github.com/bft-labs/crcsim/pkg/log"
)

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// Channel carries a frame from sender to receiver. The returned frame must
// have the same length as the input.
type Channel = ports.Channel

// Encoder computes the check code of a chunk.
type Encoder = ports.CheckEncoder

// Option configures optional behavior of a Simulation.
type Option func(*options)

// options holds the optional configuration for a Simulation.
type options struct {
	logger       Logger
	eventHandler EventHandler
	channel      Channel
	rng          *rand.Rand
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for simulation events.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithChannel replaces the simulated channel. ErrorProbability and Seed are
// then only echoed in the report.
func WithChannel(ch Channel) Option {
	return func(o *options) {
		o.channel = ch
	}
}

// WithRand sets the generator the simulated channel draws from, instead of
// one seeded with Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}
