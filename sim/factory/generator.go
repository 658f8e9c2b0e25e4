package factory

import (
	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop-sim/sim"
)

// IntervalFunc returns the pacing delay held between part creations. A nil
// IntervalFunc disables pacing: every part of the plan is created at the
// same simulated instant.
type IntervalFunc func() float64

// FixedInterval paces part creation at a constant delay.
func FixedInterval(d float64) IntervalFunc {
	return func() float64 { return d }
}

// UniformInterval paces part creation with delays sampled from the given
// distribution.
func UniformInterval(u sim.Uniform) IntervalFunc {
	return u.Sample
}

// PartGenerator instantiates the plan's parts. Each part gets a
// family-scoped number; identity is the family name plus that number.
type PartGenerator struct {
	Created int // parts created so far

	factory  *Factory
	families []PartFamily
	interval IntervalFunc
	proc     *sim.Process
}

// NewPartGenerator creates the generator process and starts it at the
// current simulation time.
func NewPartGenerator(f *Factory, families []PartFamily, interval IntervalFunc) (*PartGenerator, error) {
	g := &PartGenerator{
		factory:  f,
		families: families,
		interval: interval,
	}
	g.proc = f.env.NewProcess("part_generator", g.run)
	if err := g.proc.Activate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Proc returns the generator's kernel process.
func (g *PartGenerator) Proc() *sim.Process { return g.proc }

func (g *PartGenerator) run(p *sim.Process) error {
	for _, family := range g.families {
		logrus.Infof("t=%.3f generating %d x %q", g.factory.env.Now(), family.Quantity, family.Name)
		for number := 0; number < family.Quantity; number++ {
			if _, err := NewPart(g.factory, family.Name, family.Family, number, family.Routing); err != nil {
				return err
			}
			g.Created++
			if g.interval != nil {
				if err := p.Hold(g.interval()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
