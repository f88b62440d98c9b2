package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/internal/ports"
	"github.com/bft-labs/crcsim/pkg/bitstring"
	"github.com/bft-labs/crcsim/pkg/framer"
)

// Scan flips every bit of every frame of message once and checks whether the
// recomputed check code catches it. The channel is not used.
func (p *Pipeline) Scan(ctx context.Context, message string) (domain.ScanResult, error) {
	bits, err := bitstring.FromText(message, p.config.UnitBits)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	chunks, err := framer.Split(bits, p.config.ChunkSizeBits)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	result := domain.ScanResult{
		Bursts:     len(chunks),
		FrameBits:  p.config.ChunkSizeBits + p.encoder.Polynomial().Width(),
		Undetected: []domain.ScanMiss{},
	}

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		check, err := p.encoder.Encode(chunk)
		if err != nil {
			return result, fmt.Errorf("burst %d: %w", i+1, err)
		}
		frame := domain.Burst{Index: i, Data: chunk, Check: check}.Frame()

		for pos := 0; pos < frame.Len(); pos++ {
			data, got := domain.SplitFrame(frame.Flip(pos), chunk.Len())
			recomputed, err := p.encoder.Encode(data)
			if err != nil {
				return result, fmt.Errorf("burst %d: %w", i+1, err)
			}
			result.Tested++
			if recomputed.Equal(got) {
				result.Undetected = append(result.Undetected, domain.ScanMiss{Burst: i, Position: pos})
			}
		}
	}

	p.logger.Info("scan finished",
		ports.Int("bursts", result.Bursts),
		ports.Int("tested", result.Tested),
		ports.Int("undetected", len(result.Undetected)),
	)
	return result, nil
}
