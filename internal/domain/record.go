package domain

import "github.com/bft-labs/crcsim/pkg/bitstring"

// Outcome classifies a verified burst.
type Outcome int

const (
	// OutcomeClean means the frame arrived unchanged and matched.
	OutcomeClean Outcome = iota
	// OutcomeDetected means the frame was corrupted and the mismatch was caught.
	OutcomeDetected
	// OutcomeUndetected means the frame was corrupted but still matched.
	OutcomeUndetected
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeDetected:
		return "detected"
	case OutcomeUndetected:
		return "undetected"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// VerificationRecord is the result of sending one burst through the channel.
type VerificationRecord struct {
	// Index is 0-based; reports render it 1-based.
	Index int `json:"index"`

	SentData      bitstring.BitString `json:"sent_data"`
	SentCheck     bitstring.BitString `json:"sent_check"`
	SentFrame     bitstring.BitString `json:"sent_frame"`
	ReceivedFrame bitstring.BitString `json:"received_frame"`
	ReceivedData  bitstring.BitString `json:"received_data"`
	ReceivedCheck bitstring.BitString `json:"received_check"`
	Recomputed    bitstring.BitString `json:"recomputed_check"`

	// Match is true when Recomputed equals ReceivedCheck.
	Match bool `json:"match"`

	// Flipped lists the frame positions the channel inverted.
	Flipped []int `json:"flipped"`
}

// NewVerificationRecord assembles a record for burst b, deriving the flipped
// positions and the match flag.
func NewVerificationRecord(b Burst, received, recomputed bitstring.BitString) VerificationRecord {
	sent := b.Frame()
	data, check := SplitFrame(received, b.Data.Len())
	flipped := sent.Diff(received)
	if flipped == nil {
		flipped = []int{}
	}
	return VerificationRecord{
		Index:         b.Index,
		SentData:      b.Data,
		SentCheck:     b.Check,
		SentFrame:     sent,
		ReceivedFrame: received,
		ReceivedData:  data,
		ReceivedCheck: check,
		Recomputed:    recomputed,
		Match:         recomputed.Equal(check),
		Flipped:       flipped,
	}
}

// Corrupted reports whether the channel flipped at least one bit.
func (r VerificationRecord) Corrupted() bool {
	return len(r.Flipped) > 0
}

// Outcome classifies the record.
func (r VerificationRecord) Outcome() Outcome {
	switch {
	case !r.Match:
		return OutcomeDetected
	case r.Corrupted():
		return OutcomeUndetected
	default:
		return OutcomeClean
	}
}
