package factory

import (
	"fmt"

	"github.com/jobshop-sim/jobshop-sim/sim"
)

// MachineReport is the queryable post-run state of one machine.
type MachineReport struct {
	MachineID      int
	Name           string
	PartsCompleted int
	CycleTime      float64
	OperatingTime  float64
	QueueStats     sim.QueueStats
}

// Report aggregates per-machine counters and queue wait statistics for
// verification and printing after a run.
type Report struct {
	Time            float64 // simulation time the report was taken at
	PartsCreated    int
	Machines        []MachineReport
	PublishFailures int
}

// Report captures the factory's current counters.
func (f *Factory) Report() *Report {
	r := &Report{
		Time:         f.env.Now(),
		PartsCreated: f.generator.Created,
	}
	if f.publisher != nil {
		r.PublishFailures = f.publisher.Failures
	}
	for _, m := range f.machines {
		r.Machines = append(r.Machines, MachineReport{
			MachineID:      m.ID,
			Name:           m.Name,
			PartsCompleted: m.Parts,
			CycleTime:      m.CycleTime,
			OperatingTime:  m.OperatingTime,
			QueueStats:     m.Queue.Stats(),
		})
	}
	return r
}

// Print displays the report at the end of the simulation.
func (r *Report) Print() {
	fmt.Println("=== Factory Report ===")
	fmt.Printf("Simulation Time      : %.2f\n", r.Time)
	fmt.Printf("Parts Created        : %d\n", r.PartsCreated)
	if r.PublishFailures > 0 {
		fmt.Printf("Publish Failures     : %d\n", r.PublishFailures)
	}
	for _, m := range r.Machines {
		fmt.Printf("machine %d (%s): parts=%d operating_time=%.2f queue_wait mean=%.2f max=%.2f\n",
			m.MachineID, m.Name, m.PartsCompleted, m.OperatingTime,
			m.QueueStats.MeanWait(), m.QueueStats.MaxWait)
	}
}
