// Package domain contains the core entities and value objects of a CRC
// simulation run.
//
// It has no dependencies on infrastructure concerns (file system, logging,
// terminal output) and holds only the data produced by the pipeline and the
// rules that derive statistics from it.
//
// # Entities
//
//   - [Burst]: one chunk of message bits together with its check code
//   - [VerificationRecord]: what was sent, what arrived and whether the
//     recomputed check code matched
//   - [Summary]: counters aggregated over all records of a run
//   - [Report]: the complete outcome of a run
package domain
