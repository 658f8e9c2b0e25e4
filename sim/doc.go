// Package sim provides the discrete-event process-scheduling kernel for the
// job-shop factory simulator.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - process.go: Process lifecycle (data → scheduled → current → ... → terminated)
//     and the Hold/Passivate/Activate/Cancel operations
//   - event.go: The event heap ordered by (due time, priority, insertion sequence)
//   - environment.go: The clock, the Advance step, and the Run loop
//
// # Architecture
//
// Each Process runs on its own goroutine, but exactly one is ever runnable:
// the scheduler and the current process hand control back and forth over
// unbuffered channels, so Hold and Passivate are the only suspension points
// and all kernel state is mutated from one logical thread at a time.
//
// Domain models live in sub-packages:
//   - sim/factory/: Machine, Part, PartGenerator and TelemetryPublisher
//     processes plus production plan loading and run reports
//   - sim/telemetry/: external sinks the publisher forwards snapshots to
//   - sim/trace/: optional per-event trace recording
//
// The Environment is an explicit context object; there is no global registry
// of processes or queues. Real-time pacing is opt-in via SetPacer and is the
// only place the kernel touches the wall clock.
package sim
