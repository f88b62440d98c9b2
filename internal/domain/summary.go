package domain

// Summary aggregates the records of a run.
type Summary struct {
	Bursts     int `json:"bursts"`
	Matched    int `json:"matched"`
	Mismatched int `json:"mismatched"`

	// Corrupted counts bursts with at least one flipped bit.
	Corrupted int `json:"corrupted"`

	// Undetected counts corrupted bursts whose check code still matched.
	Undetected int `json:"undetected"`

	FlippedBits int `json:"flipped_bits"`
	TotalBits   int `json:"total_bits"`
}

// Summarize folds records into a Summary.
func Summarize(records []VerificationRecord) Summary {
	var s Summary
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// Add accounts for one record.
func (s *Summary) Add(r VerificationRecord) {
	s.Bursts++
	if r.Match {
		s.Matched++
	} else {
		s.Mismatched++
	}
	if r.Corrupted() {
		s.Corrupted++
		if r.Match {
			s.Undetected++
		}
	}
	s.FlippedBits += len(r.Flipped)
	s.TotalBits += r.SentFrame.Len()
}

// Empty returns true if no burst was recorded.
func (s Summary) Empty() bool {
	return s.Bursts == 0
}

// ObservedBER returns flipped bits over transmitted bits, or 0 for an empty run.
func (s Summary) ObservedBER() float64 {
	if s.TotalBits == 0 {
		return 0
	}
	return float64(s.FlippedBits) / float64(s.TotalBits)
}

// DetectionRate returns the share of corrupted bursts that were caught.
// It is 1 when nothing was corrupted.
func (s Summary) DetectionRate() float64 {
	if s.Corrupted == 0 {
		return 1
	}
	return float64(s.Corrupted-s.Undetected) / float64(s.Corrupted)
}
