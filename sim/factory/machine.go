package factory

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop-sim/sim"
)

// MachineStatus is the machine's processing state.
type MachineStatus int

const (
	// MachineIdle means no part is being worked.
	MachineIdle MachineStatus = iota
	// MachineBusy means a cycle is in progress.
	MachineBusy
)

// DefaultMachineName matches the vertical machining centers of the original
// shop.
const DefaultMachineName = "VMC"

// Machine is a stateful resource that works one part at a time, FCFS from
// its queue. All fields are mutated only by the machine's own process loop,
// except CycleTime, which the publisher refreshes with the live value of an
// in-progress cycle.
type Machine struct {
	ID   int
	Name string

	Status        MachineStatus
	Current       *Part   // part in progress, nil when idle
	Parts         int     // cumulative parts completed
	CycleStart    float64 // start time of the current/last cycle
	CycleTime     float64 // duration of the last completed cycle (live-refreshed while busy)
	OperatingTime float64 // cumulative time spent cutting

	Queue *sim.Queue // waiting parts

	env        *sim.Environment
	proc       *sim.Process
	turnaround float64
}

// NewMachine creates a machine with its queue and starts its process at the
// current simulation time.
func NewMachine(env *sim.Environment, id int, name string, turnaround float64) (*Machine, error) {
	m := &Machine{
		ID:         id,
		Name:       name,
		Queue:      env.NewQueue(fmt.Sprintf("queue_%d", id)),
		env:        env,
		turnaround: turnaround,
	}
	m.proc = env.NewProcess(fmt.Sprintf("machine_%d", id), m.run)
	if err := m.proc.Activate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Proc returns the machine's kernel process.
func (m *Machine) Proc() *sim.Process { return m.proc }

// run is the machine's process loop: wait for work, pop FCFS, cut, count,
// wake the part, then hold the load/unload turnaround.
func (m *Machine) run(p *sim.Process) error {
	for {
		for m.Queue.IsEmpty() {
			if err := p.Passivate(); err != nil {
				return err
			}
		}
		// The loop guard above makes an empty pop impossible; failing here
		// is a programming error, not a condition to retry.
		occ, err := m.Queue.Pop()
		if err != nil {
			return err
		}
		part := occ.(*Part)

		m.Current = part
		m.Status = MachineBusy
		m.CycleStart = m.env.Now()
		m.CycleTime = 0

		if err := p.Hold(part.CurrentDuration()); err != nil {
			return err
		}

		m.Status = MachineIdle
		m.Parts++
		m.CycleTime = m.env.Now() - m.CycleStart
		m.OperatingTime += m.CycleTime
		logrus.Debugf("t=%.3f machine %d finished %s (cycle %.3f)",
			m.env.Now(), m.ID, part.Name, m.CycleTime)

		if err := part.Proc().Activate(); err != nil {
			return err
		}
		m.Current = nil

		if err := p.Hold(m.turnaround); err != nil {
			return err
		}
	}
}
