package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHold_NegativeDuration_Fails(t *testing.T) {
	env := NewEnvironment()
	var holdErr error
	p := env.NewProcess("p", func(p *Process) error {
		holdErr = p.Hold(-1)
		return nil
	})
	require.NoError(t, p.Activate())

	require.NoError(t, env.Run(context.Background()))

	assert.ErrorIs(t, holdErr, ErrNegativeDuration)
	assert.Equal(t, StatusTerminated, p.Status())
}

func TestHold_ResumesAtExactTime(t *testing.T) {
	// GIVEN a process holding 2.5 units twice
	env := NewEnvironment()
	var resumes []float64
	p := env.NewProcess("p", func(p *Process) error {
		for i := 0; i < 2; i++ {
			if err := p.Hold(2.5); err != nil {
				return err
			}
			resumes = append(resumes, env.Now())
		}
		return nil
	})
	require.NoError(t, p.Activate())

	// WHEN running
	require.NoError(t, env.Run(context.Background()))

	// THEN the control flow resumed at the scheduled instants
	assert.Equal(t, []float64{2.5, 5.0}, resumes)
	assert.Equal(t, StatusTerminated, p.Status())
}

func TestPassivateActivate_Rendezvous(t *testing.T) {
	// GIVEN a waiter that passivates and a waker that activates it at t=3
	env := NewEnvironment()
	var wokenAt float64
	waiter := env.NewProcess("waiter", func(p *Process) error {
		if err := p.Passivate(); err != nil {
			return err
		}
		wokenAt = env.Now()
		return nil
	})
	waker := env.NewProcess("waker", func(p *Process) error {
		if err := p.Hold(3); err != nil {
			return err
		}
		return waiter.Activate()
	})
	require.NoError(t, waiter.Activate())
	require.NoError(t, waker.Activate())

	// WHEN running
	require.NoError(t, env.Run(context.Background()))

	// THEN the waiter resumed at the waker's activation time
	assert.Equal(t, 3.0, wokenAt)
	assert.Equal(t, StatusTerminated, waiter.Status())
}

func TestActivate_Scheduled_Reschedules(t *testing.T) {
	// GIVEN a process scheduled for t=10
	env := NewEnvironment()
	var resumed float64
	p := env.NewProcess("p", func(p *Process) error {
		resumed = env.Now()
		return nil
	})
	require.NoError(t, p.ActivateAt(10))

	// WHEN activating again for t=4 (cancel-then-schedule)
	require.NoError(t, p.ActivateAt(4))
	assert.Equal(t, 4.0, p.ResumeTime())

	// THEN only the rescheduled event fires
	require.NoError(t, env.Run(context.Background()))
	assert.Equal(t, 4.0, resumed)
	assert.Equal(t, 4.0, env.Now())
}

func TestActivate_Terminated_Fails(t *testing.T) {
	env := NewEnvironment()
	p := env.NewProcess("p", func(p *Process) error { return nil })
	require.NoError(t, p.Activate())
	require.NoError(t, env.Run(context.Background()))
	require.Equal(t, StatusTerminated, p.Status())

	err := p.Activate()
	assert.ErrorIs(t, err, ErrTerminated)
}

func TestStandby_YieldsToEventsAtSameTime(t *testing.T) {
	// GIVEN A standing by at t=0 and B activated at t=0 after A
	env := NewEnvironment()
	var order []string
	a := env.NewProcess("A", func(p *Process) error {
		if err := p.Standby(); err != nil {
			return err
		}
		order = append(order, "A")
		return nil
	})
	b := env.NewProcess("B", func(p *Process) error {
		order = append(order, "B")
		return nil
	})
	require.NoError(t, a.Activate())
	require.NoError(t, b.Activate())

	// WHEN running
	require.NoError(t, env.Run(context.Background()))

	// THEN A's standby wake-up fired after B despite A's earlier insertion
	assert.Equal(t, []string{"B", "A"}, order)
}

func TestStatus_LifecycleTransitions(t *testing.T) {
	env := NewEnvironment()
	p := env.NewProcess("p", func(p *Process) error {
		return p.Passivate()
	})
	assert.Equal(t, StatusData, p.Status())

	require.NoError(t, p.ActivateAt(1))
	assert.Equal(t, StatusScheduled, p.Status())
	assert.Equal(t, 1.0, p.ResumeTime())

	require.NoError(t, env.Run(context.Background()))
	// Run drained with the process passive; shutdown then unwound it.
	assert.Equal(t, StatusTerminated, p.Status())
}

func TestStatus_Strings(t *testing.T) {
	for status, want := range map[Status]string{
		StatusData:        "data",
		StatusScheduled:   "scheduled",
		StatusCurrent:     "current",
		StatusStandby:     "standby",
		StatusPassive:     "passive",
		StatusInterrupted: "interrupted",
		StatusTerminated:  "terminated",
	} {
		assert.Equal(t, want, status.String())
	}
}
