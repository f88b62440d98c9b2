package report

import (
	"encoding/json"
	"io"

	"github.com/bft-labs/crcsim/internal/domain"
)

// JSONRenderer writes reports as indented JSON documents.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type jsonReport struct {
	domain.Report
	ObservedBER   float64 `json:"observed_ber"`
	DetectionRate float64 `json:"detection_rate"`
	Intact        bool    `json:"intact"`
}

// Render writes r followed by a newline.
func (JSONRenderer) Render(w io.Writer, r domain.Report) error {
	return encode(w, jsonReport{
		Report:        r,
		ObservedBER:   r.Summary.ObservedBER(),
		DetectionRate: r.Summary.DetectionRate(),
		Intact:        r.Intact(),
	})
}

// RenderScan writes r followed by a newline.
func (JSONRenderer) RenderScan(w io.Writer, r domain.ScanResult) error {
	return encode(w, r)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
