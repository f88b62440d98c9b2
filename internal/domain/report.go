package domain

import "github.com/bft-labs/crcsim/pkg/bitstring"

// RunInfo echoes the parameters a run was executed with.
type RunInfo struct {
	Message          string              `json:"message"`
	MessageBits      bitstring.BitString `json:"message_bits"`
	Polynomial       string              `json:"polynomial"`
	ChunkSizeBits    int                 `json:"chunk_size_bits"`
	ErrorProbability float64             `json:"error_probability"`
	Seed             int64               `json:"rng_seed"`
	UnitBits         int                 `json:"unit_bits"`
	Engine           string              `json:"engine"`
	PaddingBits      int                 `json:"padding_bits"`
}

// Report is the complete outcome of a run.
type Report struct {
	Run     RunInfo              `json:"run"`
	Records []VerificationRecord `json:"records"`
	Summary Summary              `json:"summary"`

	// ReceivedText is the message decoded from the received data parts.
	ReceivedText string `json:"received_text"`

	// DroppedBits is the length of a trailing partial unit that could not be
	// decoded into ReceivedText.
	DroppedBits int `json:"dropped_bits,omitempty"`
}

// Intact reports whether the received text equals the original message.
func (r Report) Intact() bool {
	return r.ReceivedText == r.Run.Message && r.DroppedBits == 0
}
