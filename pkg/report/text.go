package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bft-labs/crcsim/internal/domain"
	"github.com/bft-labs/crcsim/pkg/bitstring"
)

const (
	groupBits = 8
	rule      = "----------------------------------------"
)

// TextRenderer prints the burst-by-burst layout with colored verdicts.
type TextRenderer struct {
	title  *color.Color
	header *color.Color
	ok     *color.Color
	bad    *color.Color
	warn   *color.Color
	marker *color.Color
}

// NewTextRenderer creates a text renderer. With noColor set, no escape
// sequences are written regardless of the terminal.
func NewTextRenderer(noColor bool) *TextRenderer {
	t := &TextRenderer{
		title:  color.New(color.Bold, color.FgCyan),
		header: color.New(color.Bold),
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
		marker: color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{t.title, t.header, t.ok, t.bad, t.warn, t.marker} {
			c.DisableColor()
		}
	}
	return t
}

// Render writes the full report.
func (t *TextRenderer) Render(w io.Writer, r domain.Report) error {
	bw := bufio.NewWriter(w)
	run := r.Run

	t.title.Fprintln(bw, "=== CRC Error Detection Simulation ===")
	fmt.Fprintf(bw, "Polynomial: %s (CRC-%d)\n", run.Polynomial, len(run.Polynomial)-1)
	fmt.Fprintf(bw, "Engine: %s, error probability: %g, seed: %d\n\n", run.Engine, run.ErrorProbability, run.Seed)

	fmt.Fprintf(bw, "Original message: %q\n", run.Message)
	fmt.Fprintf(bw, "Full binary message (%d bits):\n%s\n\n", run.MessageBits.Len(), run.MessageBits.Group(groupBits))
	fmt.Fprintf(bw, "Message split into %d burst(s) of %d bits each", len(r.Records), run.ChunkSizeBits)
	if run.PaddingBits > 0 {
		fmt.Fprintf(bw, " (%d padding bits)", run.PaddingBits)
	}
	fmt.Fprint(bw, ".\n\n")

	for _, rec := range r.Records {
		t.renderRecord(bw, rec)
	}

	t.renderSummary(bw, r)
	return bw.Flush()
}

func (t *TextRenderer) renderRecord(w io.Writer, rec domain.VerificationRecord) {
	n := rec.Index + 1

	t.header.Fprintf(w, "--- Burst %d ---\n", n)
	fmt.Fprintf(w, "Data (%d bits):\n%s\n", rec.SentData.Len(), rec.SentData.Group(groupBits))
	fmt.Fprintf(w, "Check code (%d bits): %s\n", rec.SentCheck.Len(), rec.SentCheck)
	fmt.Fprintf(w, "Frame to send (%d bits):\n%s\n", rec.SentFrame.Len(), rec.SentFrame.Group(groupBits))

	fmt.Fprintf(w, "\nReceived frame (%d bits):\n%s\n", rec.ReceivedFrame.Len(), rec.ReceivedFrame.Group(groupBits))
	if rec.Corrupted() {
		t.marker.Fprintln(w, Markers(rec.ReceivedFrame.Len(), rec.Flipped, groupBits))
		fmt.Fprintf(w, "Flipped bits: %d\n", len(rec.Flipped))
	}
	fmt.Fprintf(w, "Received data (%d bits):\n%s\n", rec.ReceivedData.Len(), rec.ReceivedData.Group(groupBits))
	fmt.Fprintf(w, "Received check code (%d bits): %s\n", rec.ReceivedCheck.Len(), rec.ReceivedCheck)
	fmt.Fprintf(w, "Recomputed check code (%d bits): %s\n\n", rec.Recomputed.Len(), rec.Recomputed)

	t.header.Fprintf(w, "--- Verification, burst %d ---\n", n)
	switch rec.Outcome() {
	case domain.OutcomeDetected:
		t.bad.Fprintln(w, "MISMATCH: check code differs, burst needs to be resent (no retransmission performed).")
	case domain.OutcomeUndetected:
		t.ok.Fprint(w, "MATCH: no error detected.")
		t.warn.Fprintf(w, " %d flipped bit(s) went unnoticed.\n", len(rec.Flipped))
	default:
		t.ok.Fprintln(w, "MATCH: no error detected.")
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

func (t *TextRenderer) renderSummary(w io.Writer, r domain.Report) {
	s := r.Summary

	t.title.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "Bursts: %d, matched: %d, mismatched: %d\n", s.Bursts, s.Matched, s.Mismatched)
	fmt.Fprintf(w, "Corrupted: %d, undetected: %d\n", s.Corrupted, s.Undetected)
	fmt.Fprintf(w, "Flipped bits: %d of %d (observed BER %.4f)\n", s.FlippedBits, s.TotalBits, s.ObservedBER())
	fmt.Fprintf(w, "Received text: %q", r.ReceivedText)
	if r.DroppedBits > 0 {
		fmt.Fprintf(w, " (%d trailing bit(s) dropped)", r.DroppedBits)
	}
	fmt.Fprintln(w)
	if !s.Empty() && !r.Intact() {
		t.warn.Fprintln(w, "Received text differs from the original message.")
	}
}

// RenderScan writes the outcome of a single-bit scan.
func (t *TextRenderer) RenderScan(w io.Writer, r domain.ScanResult) error {
	bw := bufio.NewWriter(w)

	t.title.Fprintln(bw, "=== Single-bit Error Scan ===")
	fmt.Fprintf(bw, "Bursts: %d, frame size: %d bits, corruptions tested: %d\n", r.Bursts, r.FrameBits, r.Tested)
	if r.Complete() {
		t.ok.Fprintln(bw, "Every single-bit error was detected.")
		return bw.Flush()
	}

	t.bad.Fprintf(bw, "%d single-bit error(s) went undetected:\n", len(r.Undetected))
	for _, m := range r.Undetected {
		fmt.Fprintf(bw, "  burst %d, bit %d\n", m.Burst+1, m.Position)
	}
	return bw.Flush()
}

// Markers returns a line aligned with BitString.Group(group) output that has
// a '^' under every flipped position.
func Markers(n int, flipped []int, group int) string {
	marks := bitstring.New(n)
	for _, p := range flipped {
		if p >= 0 && p < n {
			marks = marks.Flip(p)
		}
	}
	line := strings.NewReplacer("0", " ", "1", "^").Replace(marks.Group(group))
	return strings.TrimRight(line, " ")
}
