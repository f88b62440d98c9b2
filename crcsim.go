// Package crcsim simulates CRC-based error detection over a noisy binary channel.
//
// Example usage:
//
//	cfg := crcsim.DefaultConfig()
//	cfg.Message = "I love you"
//	cfg.ErrorProbability = 0.05
//	report, err := crcsim.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Summary.Mismatched, "bursts need to be resent")
package crcsim

import (
	"context"

	"github.com/bft-labs/crcsim/pkg/crcsim"
)

// Config holds the parameters of a simulation.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = crcsim.Config

// Report is the complete outcome of a run.
type Report = crcsim.Report

// Option configures optional behavior of a run.
type Option = crcsim.Option

// Run validates cfg, sends the message through the simulated channel and
// returns the report. Detected errors are reported, not returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (Report, error) {
	sim, err := crcsim.New(cfg, opts...)
	if err != nil {
		return Report{}, err
	}
	return sim.Run(ctx)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return crcsim.DefaultConfig()
}

// DefaultPolynomial is the CRC-8 generator x^8 + x^2 + x + 1.
const DefaultPolynomial = "100000111"
