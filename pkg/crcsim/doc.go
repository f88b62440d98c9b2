// Package crcsim provides an embeddable CRC error-detection simulation.
//
// A message is converted to bits, split into fixed-size bursts, and every
// burst is protected with a check code computed by modulo-2 polynomial
// division. Each frame then passes through a simulated channel that flips
// bits at random, and the receiver recomputes the check code to decide
// whether the burst arrived intact.
//
// # Basic Usage
//
//	cfg := crcsim.DefaultConfig()
//	cfg.Message = "I love you"
//	cfg.ErrorProbability = 0.05
//
//	sim, err := crcsim.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := sim.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Summary.Mismatched, "burst(s) need to be resent")
//
// # Configuration
//
// Start from [DefaultConfig] and override fields. [Config.Validate] reports
// every problem as an error wrapping [ErrInvalidConfig]; [New] calls it, so
// no burst is processed with an invalid setup.
//
// # Reproducibility
//
// The channel draws from a math/rand generator seeded with [Config.Seed].
// Two simulations with the same configuration produce identical reports.
// Use [WithRand] to supply a generator, or [WithChannel] to replace the
// simulated channel entirely.
//
// # Event Handling
//
// To observe bursts as they are processed, implement [EventHandler] and pass
// it via [WithEventHandler]. Embed [BaseEventHandler] to implement only the
// callbacks you need. Events are called synchronously from Run.
//
// A Simulation is not safe for concurrent use; create one per goroutine.
package crcsim
