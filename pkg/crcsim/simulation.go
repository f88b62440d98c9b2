package crcsim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bft-labs/crcsim/internal/app"
	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/internal/ports"
	"github.com/bft-labs/crcsim/pkg/channel"
	"github.com/bft-labs/crcsim/pkg/crc"
)

// Re-exported result types.
type (
	// Report is the complete outcome of a run.
	Report = domain.Report

	// RunInfo echoes the parameters of a run.
	RunInfo = domain.RunInfo

	// VerificationRecord is the result of one burst.
	VerificationRecord = domain.VerificationRecord

	// Summary aggregates the records of a run.
	Summary = domain.Summary

	// ScanResult is the outcome of a single-bit error scan.
	ScanResult = domain.ScanResult

	// ScanMiss is an undetected single-bit error found by a scan.
	ScanMiss = domain.ScanMiss
)

// Errors returned by the public API. Check them with errors.Is.
var (
	ErrInvalidConfig     = domain.ErrInvalidConfig
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrUnknownEngine     = domain.ErrUnknownEngine
)

// Simulation runs the CRC pipeline for one configuration.
type Simulation struct {
	config   Config
	pipeline *app.Pipeline
	logger   ports.Logger
}

// New validates cfg and wires the encoder, channel and pipeline.
// It returns an error wrapping ErrInvalidConfig before any burst is processed.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	poly, err := crc.ParsePolynomial(cfg.Polynomial)
	if err != nil {
		return nil, invalid(err)
	}

	encoder, err := NewEncoder(cfg.Engine, poly)
	if err != nil {
		return nil, invalid(err)
	}

	ch := o.channel
	if ch == nil {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(cfg.Seed))
		}
		sim, err := channel.NewWithRand(cfg.ErrorProbability, rng)
		if err != nil {
			return nil, invalid(err)
		}
		ch = sim
	}

	var emitter app.EventEmitter
	if o.eventHandler != nil {
		emitter = &eventEmitterWrapper{handler: o.eventHandler}
	}

	pipeline, err := app.NewPipeline(
		app.PipelineConfig{ChunkSizeBits: cfg.ChunkSizeBits, UnitBits: cfg.UnitBits},
		encoder,
		ch,
		o.logger,
		emitter,
	)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		config:   cfg,
		pipeline: pipeline,
		logger:   o.logger,
	}, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.config
}

// Run sends the configured message through the channel and returns the
// report. Mismatches are part of the report, not errors.
func (s *Simulation) Run(ctx context.Context) (Report, error) {
	s.logger.Info("using channel seed",
		ports.Int64("seed", s.config.Seed),
		ports.Float64("error_probability", s.config.ErrorProbability),
		ports.String("engine", s.config.Engine),
	)

	report, err := s.pipeline.Run(ctx, s.config.Message)
	report.Run.ErrorProbability = s.config.ErrorProbability
	report.Run.Seed = s.config.Seed
	report.Run.Engine = s.config.Engine
	return report, err
}

// Scan flips every frame bit of the configured message once and reports the
// positions the check code failed to catch. The channel is not used.
func (s *Simulation) Scan(ctx context.Context) (ScanResult, error) {
	return s.pipeline.Scan(ctx, s.config.Message)
}

// NewEncoder returns the check code engine named by engine for poly.
func NewEncoder(engine string, poly crc.Polynomial) (Encoder, error) {
	switch engine {
	case EngineDivision:
		return crc.NewDivider(poly), nil
	case EngineTable:
		return crc.NewTable8(poly)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
