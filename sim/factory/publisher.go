package factory

import (
	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop-sim/sim"
	"github.com/jobshop-sim/jobshop-sim/sim/telemetry"
)

// Snapshot is the live state of one machine at a publish instant.
type Snapshot struct {
	MachineID     int
	PartCount     int
	CycleTime     float64
	OperatingTime float64
}

// TelemetryPublisher samples every machine each interval and forwards the
// snapshots to the sink. Publish failures are counted and logged, never
// fatal: the simulation proceeds regardless of the sink's health.
type TelemetryPublisher struct {
	Failures int // publish calls that returned an error

	factory  *Factory
	sink     telemetry.Sink
	interval float64
	proc     *sim.Process
}

// NewTelemetryPublisher creates the publisher process and starts it at the
// current simulation time.
func NewTelemetryPublisher(f *Factory, sink telemetry.Sink, interval float64) (*TelemetryPublisher, error) {
	pub := &TelemetryPublisher{
		factory:  f,
		sink:     sink,
		interval: interval,
	}
	pub.proc = f.env.NewProcess("telemetry_publisher", pub.run)
	if err := pub.proc.Activate(); err != nil {
		return nil, err
	}
	return pub, nil
}

// Proc returns the publisher's kernel process.
func (pub *TelemetryPublisher) Proc() *sim.Process { return pub.proc }

func (pub *TelemetryPublisher) run(p *sim.Process) error {
	for {
		now := pub.factory.env.Now()
		for _, m := range pub.factory.machines {
			snap := pub.snapshot(m, now)
			pub.publish(snap.MachineID, telemetry.FieldPartCount, float64(snap.PartCount))
			pub.publish(snap.MachineID, telemetry.FieldCycleTime, snap.CycleTime)
			pub.publish(snap.MachineID, telemetry.FieldOperatingTime, snap.OperatingTime)
		}
		if err := p.Hold(pub.interval); err != nil {
			return err
		}
	}
}

// snapshot reads one machine's counters. While a cycle is in progress the
// cycle time is recomputed as now - CycleStart, so the sink sees live
// elapsed time instead of the last settled value, and the shown operating
// time includes the running cycle. Only the machine's CycleTime display
// cache is written back; no other field is touched.
func (pub *TelemetryPublisher) snapshot(m *Machine, now float64) Snapshot {
	cycleTime := m.CycleTime
	operatingTime := m.OperatingTime
	if m.Status == MachineBusy {
		cycleTime = now - m.CycleStart
		m.CycleTime = cycleTime
		operatingTime += cycleTime
	}
	return Snapshot{
		MachineID:     m.ID,
		PartCount:     m.Parts,
		CycleTime:     cycleTime,
		OperatingTime: operatingTime,
	}
}

func (pub *TelemetryPublisher) publish(machineID int, field string, value float64) {
	if err := pub.sink.Publish(machineID, field, value); err != nil {
		pub.Failures++
		logrus.Warnf("publish machine=%d field=%s: %v", machineID, field, err)
	}
}
