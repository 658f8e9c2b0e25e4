// Package telemetry defines the external sink the publisher forwards
// machine snapshots to, plus the bundled sink implementations. The sink
// models the factory's monitoring server abstractly: a backend receives
// periodic (machine, field, value) updates and exposes them however it
// likes. Sink failures are reported to the caller and must never corrupt
// simulation state.
package telemetry

// Machine snapshot field names, published once per tracked field per
// publish interval.
const (
	FieldPartCount     = "part_count"
	FieldCycleTime     = "cycle_time"
	FieldOperatingTime = "operating_time"
)

// Sink receives periodic field/value snapshots for tracked machines.
//
// Start is called once before the first Publish; Stop exactly once at
// simulation end or on cancellation. Publish errors are recoverable: the
// simulation proceeds and records the failure.
type Sink interface {
	Start() error
	Publish(machineID int, field string, value float64) error
	Stop() error
}

// NopSink discards every update. Used when telemetry is disabled.
type NopSink struct{}

func (NopSink) Start() error                       { return nil }
func (NopSink) Publish(int, string, float64) error { return nil }
func (NopSink) Stop() error                        { return nil }
