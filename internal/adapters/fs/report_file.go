package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/internal/ports"
)

var _ ports.ReportWriter = (*ReportFile)(nil)

// ReportFile implements ports.ReportWriter by rendering into a single file.
type ReportFile struct {
	path     string
	renderer ports.ReportRenderer
}

// NewReportFile creates a ReportFile that renders with renderer into path.
func NewReportFile(path string, renderer ports.ReportRenderer) *ReportFile {
	return &ReportFile{path: path, renderer: renderer}
}

// Write renders the report and replaces the file atomically.
// Uses atomic write (write to temp file, then rename) so watchers and readers
// never see a half-written report.
func (f *ReportFile) Write(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.renderer.Render(&buf, report); err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Path returns the full path to the report file.
func (f *ReportFile) Path() string {
	return f.path
}
