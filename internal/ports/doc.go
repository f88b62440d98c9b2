// Package ports defines the interfaces that connect the simulation pipeline
// to its collaborators.
//
// The application layer (internal/app) depends only on these interfaces.
// Concrete implementations live in pkg/crc (check code engines), pkg/channel
// (the noisy channel), pkg/log (logging) and internal/adapters.
//
// # Port Interfaces
//
//   - [CheckEncoder]: computes the check code of a chunk
//   - [Channel]: carries a frame from sender to receiver
//   - [ReportWriter]: persists a finished report
//   - [Logger]: structured logging abstraction
package ports
