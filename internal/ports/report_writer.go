package ports

import (
	"context"
	"io"

	"github.com/bft-labs/crcsim/internal/domain"
)

// ReportWriter persists a finished report.
// Implementations should write atomically (temp file, then rename) so a
// reader never sees a partial report.
type ReportWriter interface {
	Write(ctx context.Context, report domain.Report) error
}

// ReportRenderer encodes a report in one output format.
type ReportRenderer interface {
	Render(w io.Writer, r domain.Report) error
}
