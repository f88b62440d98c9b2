package domain

// ScanMiss is a single flipped frame bit that the check code did not catch.
type ScanMiss struct {
	Burst    int `json:"burst"`
	Position int `json:"position"`
}

// ScanResult is the outcome of flipping every frame bit once.
type ScanResult struct {
	Bursts    int `json:"bursts"`
	FrameBits int `json:"frame_bits"`

	// Tested is the number of single-bit corruptions verified.
	Tested int `json:"tested"`

	Undetected []ScanMiss `json:"undetected"`
}

// Complete reports whether every single-bit error was detected.
func (r ScanResult) Complete() bool {
	return len(r.Undetected) == 0
}
