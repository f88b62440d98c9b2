package crcsim

import "github.com/bft-labs/crcsim/internal/app"

// Stage is the processing stage of a burst.
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
	return app.Stage(s).String()
}

// StageChangeEvent is delivered when a burst enters a new stage.
type StageChangeEvent struct {
	// Burst is the 0-based burst index.
	Burst    int
	Previous Stage
	Current  Stage
}

// BurstVerifiedEvent is delivered once per burst after verification.
type BurstVerifiedEvent struct {
	Record VerificationRecord
}

// EventHandler receives simulation events. Calls are synchronous.
type EventHandler interface {
	OnStageChange(event StageChangeEvent)
	OnBurstVerified(event BurstVerifiedEvent)
}

// BaseEventHandler implements EventHandler with no-op methods.
// Embed it to override only the callbacks you need.
type BaseEventHandler struct{}

// OnStageChange does nothing.
func (BaseEventHandler) OnStageChange(StageChangeEvent) {}

// OnBurstVerified does nothing.
func (BaseEventHandler) OnBurstVerified(BurstVerifiedEvent) {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interface.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStageChange(burst int, previous, current app.Stage) {
	if e.handler == nil {
		return
	}
	e.handler.OnStageChange(StageChangeEvent{
		Burst:    burst,
		Previous: Stage(previous),
		Current:  Stage(current),
	})
}

func (e *eventEmitterWrapper) OnBurstVerified(record VerificationRecord) {
	if e.handler == nil {
		return
	}
	e.handler.OnBurstVerified(BurstVerifiedEvent{Record: record})
}
