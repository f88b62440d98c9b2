// Package report renders simulation reports for people and for programs.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/crcsim/internal/domain"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for formats other than text and json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Renderer writes reports in one output format.
type Renderer interface {
	Render(w io.Writer, r domain.Report) error
	RenderScan(w io.Writer, r domain.ScanResult) error
}

// New returns the renderer for format. noColor only affects text output.
func New(format string, noColor bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewTextRenderer(noColor), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
