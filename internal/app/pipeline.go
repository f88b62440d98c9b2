package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/internal/ports"
	"github.com/bft-labs/crcsim/pkg/bitstring"
	"github.com/bft-labs/crcsim/pkg/crc"
	"github.com/bft-labs/crcsim/pkg/framer"
)

// ResendNotice is the report-only verdict for a mismatched burst.
const ResendNotice = "burst needs to be resent (no retransmission performed)"

// PipelineConfig contains the parameters of a run.
type PipelineConfig struct {
	ChunkSizeBits int
	UnitBits      int
}

// Pipeline sends a message burst by burst through a channel and verifies
// every received frame.
type Pipeline struct {
	config  PipelineConfig
	encoder ports.CheckEncoder
	channel ports.Channel
	logger  ports.Logger
	emitter EventEmitter
}

// NewPipeline creates a pipeline with the given dependencies.
// It fails when chunks of the configured size cannot be encoded.
func NewPipeline(
	config PipelineConfig,
	encoder ports.CheckEncoder,
	channel ports.Channel,
	logger ports.Logger,
	emitter EventEmitter,
) (*Pipeline, error) {
	if err := crc.ValidateChunkSize(encoder.Polynomial(), config.ChunkSizeBits); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if config.UnitBits < 1 || config.UnitBits > 8 {
		return nil, fmt.Errorf("%w: %w: %d", domain.ErrInvalidConfig, bitstring.ErrInvalidUnitBits, config.UnitBits)
	}
	return &Pipeline{
		config:  config,
		encoder: encoder,
		channel: channel,
		logger:  logger,
		emitter: emitter,
	}, nil
}

// Run converts message to bits, sends every burst and returns the report.
// A mismatch is recorded and the run continues; errors are returned only for
// invalid input, a misbehaving channel or a canceled context.
func (p *Pipeline) Run(ctx context.Context, message string) (domain.Report, error) {
	bits, err := bitstring.FromText(message, p.config.UnitBits)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	chunks, err := framer.Split(bits, p.config.ChunkSizeBits)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	report := domain.Report{
		Run: domain.RunInfo{
			Message:       message,
			MessageBits:   bits,
			Polynomial:    p.encoder.Polynomial().String(),
			ChunkSizeBits: p.config.ChunkSizeBits,
			UnitBits:      p.config.UnitBits,
			PaddingBits:   framer.Padding(bits.Len(), p.config.ChunkSizeBits),
		},
		Records: make([]domain.VerificationRecord, 0, len(chunks)),
	}

	if len(chunks) == 0 {
		p.logger.Warn("empty message, nothing to send")
		return report, nil
	}

	p.logger.Info("simulation started",
		ports.Stringer("polynomial", p.encoder.Polynomial()),
		ports.Int("message_bits", bits.Len()),
		ports.Int("bursts", len(chunks)),
		ports.Int("padding_bits", report.Run.PaddingBits),
	)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rec, err := p.runBurst(i, chunk)
		if err != nil {
			return report, fmt.Errorf("burst %d: %w", i+1, err)
		}
		report.Records = append(report.Records, rec)
		report.Summary.Add(rec)
	}

	p.reassemble(&report, bits.Len())

	p.logger.Info("simulation finished",
		ports.Int("bursts", report.Summary.Bursts),
		ports.Int("matched", report.Summary.Matched),
		ports.Int("mismatched", report.Summary.Mismatched),
		ports.Int("undetected", report.Summary.Undetected),
		ports.Float64("observed_ber", report.Summary.ObservedBER()),
	)

	return report, nil
}

// runBurst drives one chunk through Encode, Frame, SimulateChannel and Verify.
func (p *Pipeline) runBurst(index int, chunk bitstring.BitString) (domain.VerificationRecord, error) {
	m := NewBurstMachine(index, p.logger, p.emitter)

	if err := m.TransitionTo(StageEncode); err != nil {
		return domain.VerificationRecord{}, err
	}
	check, err := p.encoder.Encode(chunk)
	if err != nil {
		return domain.VerificationRecord{}, err
	}
	burst := domain.Burst{Index: index, Data: chunk, Check: check}

	if err := m.TransitionTo(StageFrame); err != nil {
		return domain.VerificationRecord{}, err
	}
	frame := burst.Frame()

	if err := m.TransitionTo(StageSimulateChannel); err != nil {
		return domain.VerificationRecord{}, err
	}
	received, err := p.channel.Transmit(frame)
	if err != nil {
		return domain.VerificationRecord{}, fmt.Errorf("transmit: %w", err)
	}
	if received.Len() != frame.Len() {
		return domain.VerificationRecord{}, fmt.Errorf("channel returned %d bits for a %d-bit frame", received.Len(), frame.Len())
	}

	if err := m.TransitionTo(StageVerify); err != nil {
		return domain.VerificationRecord{}, err
	}
	data, _ := domain.SplitFrame(received, chunk.Len())
	recomputed, err := p.encoder.Encode(data)
	if err != nil {
		return domain.VerificationRecord{}, err
	}
	rec := domain.NewVerificationRecord(burst, received, recomputed)

	next := StageMatch
	if !rec.Match {
		next = StageMismatch
	}
	if err := m.TransitionTo(next); err != nil {
		return domain.VerificationRecord{}, err
	}

	p.logger.Debug("burst verified",
		ports.Int("burst", index+1),
		ports.Stringer("check", check),
		ports.Stringer("recomputed", recomputed),
		ports.Bool("match", rec.Match),
		ports.Ints("flipped", rec.Flipped),
	)
	if !rec.Match {
		p.logger.Warn(ResendNotice,
			ports.Int("burst", index+1),
			ports.Stringer("received_check", rec.ReceivedCheck),
			ports.Stringer("recomputed", recomputed),
		)
	}

	if p.emitter != nil {
		p.emitter.OnBurstVerified(rec)
	}
	return rec, nil
}

// reassemble decodes the received data parts, trimmed to the message length.
func (p *Pipeline) reassemble(report *domain.Report, messageBits int) {
	var joined bitstring.BitString
	for _, rec := range report.Records {
		joined = joined.Append(rec.ReceivedData)
	}
	joined = joined.Slice(0, messageBits)

	text, err := bitstring.ToText(joined, p.config.UnitBits)
	report.ReceivedText = text

	var te *bitstring.TruncationError
	if errors.As(err, &te) {
		report.DroppedBits = te.Dropped
		p.logger.Warn("received text truncated", ports.Int("dropped_bits", te.Dropped))
	}
}
