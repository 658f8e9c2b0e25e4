package factory

import (
	"fmt"

	"github.com/jobshop-sim/jobshop-sim/sim"
)

// Part is one unit of work traversing its routing sequence. At each step it
// queues at the target machine and passivates; the machine wakes it when
// the cycle completes. A part never holds time itself.
type Part struct {
	Name      string
	Family    int
	Number    int // index within the family
	Routing   []Step
	StepIndex int

	factory *Factory
	proc    *sim.Process
}

// NewPart creates a part process and starts it at the current simulation
// time.
func NewPart(f *Factory, familyName string, family, number int, routing []Step) (*Part, error) {
	pt := &Part{
		Name:    fmt.Sprintf("%s_%d", familyName, number),
		Family:  family,
		Number:  number,
		Routing: routing,
		factory: f,
	}
	pt.proc = f.env.NewProcess(fmt.Sprintf("part_%d_%d", family, number), pt.run)
	if err := pt.proc.Activate(); err != nil {
		return nil, err
	}
	return pt, nil
}

// Proc returns the part's kernel process, making Part a queue Occupant.
func (pt *Part) Proc() *sim.Process { return pt.proc }

// CurrentDuration returns the processing time of the routing step the part
// is currently queued for.
func (pt *Part) CurrentDuration() float64 {
	return pt.Routing[pt.StepIndex].Duration
}

// run walks the routing sequence. The process terminates when the last step
// completes.
func (pt *Part) run(p *sim.Process) error {
	for i, step := range pt.Routing {
		pt.StepIndex = i
		m, err := pt.factory.Machine(step.Machine)
		if err != nil {
			return err
		}
		if err := m.Queue.Enter(pt); err != nil {
			return err
		}
		if m.Proc().IsPassive() {
			if err := m.Proc().Activate(); err != nil {
				return err
			}
		}
		if err := p.Passivate(); err != nil {
			return err
		}
	}
	return nil
}
