// Package factory builds the job-shop domain model on the sim kernel:
// machines that work parts FCFS from their queues, parts that traverse
// routing sequences, a generator that instantiates the production plan,
// and a publisher that forwards machine state to a telemetry sink.
package factory

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop-sim/sim"
	"github.com/jobshop-sim/jobshop-sim/sim/telemetry"
)

// DefaultTurnaround is the load/unload delay held after each cycle, in
// simulated time units.
const DefaultTurnaround = 3.0

// DefaultPublishInterval is the telemetry sampling period, in simulated
// time units.
const DefaultPublishInterval = 1.0

// Config tunes a Factory beyond what the production plan specifies.
type Config struct {
	// Turnaround is the per-machine load/unload delay. Zero means
	// DefaultTurnaround; use a negative value for no delay.
	Turnaround float64
	// PublishInterval is the telemetry sampling period. Zero means
	// DefaultPublishInterval; a negative value disables the publisher.
	PublishInterval float64
	// GenInterval paces part creation. Nil creates all parts of the plan at
	// the same simulated instant.
	GenInterval IntervalFunc
}

// Factory is the assembled shop: the machine arena indexed by id, the part
// generator, the telemetry publisher, and the sink lifecycle. It is the
// explicit context parts resolve machines through.
type Factory struct {
	env       *sim.Environment
	machines  []*Machine
	generator *PartGenerator
	publisher *TelemetryPublisher
	sink      telemetry.Sink
}

// New assembles a factory from a validated production plan. Machine,
// generator and publisher processes are scheduled to start at the current
// simulation time; the sink is not started until Run.
func New(env *sim.Environment, plan *ProductionPlan, sink telemetry.Sink, cfg Config) (*Factory, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	turnaround := cfg.Turnaround
	switch {
	case turnaround == 0:
		turnaround = DefaultTurnaround
	case turnaround < 0:
		turnaround = 0
	}
	publishInterval := cfg.PublishInterval
	if publishInterval == 0 {
		publishInterval = DefaultPublishInterval
	}

	f := &Factory{env: env, sink: sink}
	for id := 0; id < plan.Machines; id++ {
		m, err := NewMachine(env, id, DefaultMachineName, turnaround)
		if err != nil {
			return nil, err
		}
		f.machines = append(f.machines, m)
	}
	generator, err := NewPartGenerator(f, plan.Parts, cfg.GenInterval)
	if err != nil {
		return nil, err
	}
	f.generator = generator
	if publishInterval > 0 {
		publisher, err := NewTelemetryPublisher(f, sink, publishInterval)
		if err != nil {
			return nil, err
		}
		f.publisher = publisher
	}
	return f, nil
}

// Env returns the factory's environment.
func (f *Factory) Env() *sim.Environment { return f.env }

// Machine returns the machine with the given id.
func (f *Factory) Machine(id int) (*Machine, error) {
	if id < 0 || id >= len(f.machines) {
		return nil, fmt.Errorf("machine %d: shop has %d machines", id, len(f.machines))
	}
	return f.machines[id], nil
}

// Machines returns the machine arena in id order.
func (f *Factory) Machines() []*Machine { return f.machines }

// Generator returns the part generator.
func (f *Factory) Generator() *PartGenerator { return f.generator }

// Publisher returns the telemetry publisher, nil when disabled.
func (f *Factory) Publisher() *TelemetryPublisher { return f.publisher }

// Run starts the sink, drives the simulation to the horizon (or to
// quiescence when until < 0), and stops the sink exactly once on the way
// out, cancellation included.
func (f *Factory) Run(ctx context.Context, until float64) error {
	if err := f.sink.Start(); err != nil {
		return fmt.Errorf("start telemetry sink: %w", err)
	}
	defer func() {
		if err := f.sink.Stop(); err != nil {
			logrus.Warnf("stop telemetry sink: %v", err)
		}
	}()
	if until < 0 {
		return f.env.Run(ctx)
	}
	return f.env.RunUntil(ctx, until)
}
