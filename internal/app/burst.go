package app

import (
	"fmt"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/internal/ports"
)

// Stage is the processing stage of a single burst.
type Stage int

const (
	StagePending Stage = iota
	StageEncode
	StageFrame
	StageSimulateChannel
	StageVerify
	StageMatch
	StageMismatch
)

// String returns a human-readable representation of the stage.
func (s Stage) String() string {
	switch s {
	case StagePending:
		return "Pending"
	case StageEncode:
		return "Encode"
	case StageFrame:
		return "Frame"
	case StageSimulateChannel:
		return "SimulateChannel"
	case StageVerify:
		return "Verify"
	case StageMatch:
		return "Match"
	case StageMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageMatch || s == StageMismatch
}

// EventEmitter receives burst progress. Calls are synchronous.
type EventEmitter interface {
	OnStageChange(burst int, previous, current Stage)
	OnBurstVerified(record domain.VerificationRecord)
}

// BurstMachine walks one burst forward through its stages. It is not safe for
// concurrent use.
type BurstMachine struct {
	burst   int
	stage   Stage
	logger  ports.Logger
	emitter EventEmitter
}

// NewBurstMachine creates a machine for the burst with the given 0-based index.
func NewBurstMachine(burst int, logger ports.Logger, emitter EventEmitter) *BurstMachine {
	return &BurstMachine{
		burst:   burst,
		stage:   StagePending,
		logger:  logger,
		emitter: emitter,
	}
}

// Stage returns the current stage.
func (m *BurstMachine) Stage() Stage {
	return m.stage
}

// TransitionTo moves to next. Only the immediate successor is accepted, and
// Verify may branch to either Match or Mismatch.
func (m *BurstMachine) TransitionTo(next Stage) error {
	prev := m.stage

	var ok bool
	switch prev {
	case StagePending:
		ok = next == StageEncode
	case StageEncode:
		ok = next == StageFrame
	case StageFrame:
		ok = next == StageSimulateChannel
	case StageSimulateChannel:
		ok = next == StageVerify
	case StageVerify:
		ok = next == StageMatch || next == StageMismatch
	}
	if !ok {
		return fmt.Errorf("%w: burst %d: %s -> %s", domain.ErrInvalidTransition, m.burst+1, prev, next)
	}

	m.stage = next

	if m.emitter != nil {
		m.emitter.OnStageChange(m.burst, prev, next)
	}

	m.logger.Debug("stage transition",
		ports.Int("burst", m.burst+1),
		ports.String("from", prev.String()),
		ports.String("to", next.String()),
	)

	return nil
}
