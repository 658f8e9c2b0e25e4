package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_EmptySchedule_Fails(t *testing.T) {
	env := NewEnvironment()
	err := env.Advance()
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

func TestActivateAt_BeforeNow_Fails(t *testing.T) {
	env := NewEnvironment()
	p := env.NewProcess("p", func(p *Process) error { return nil })

	err := p.ActivateAt(-1)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestRun_TimeIsNonDecreasing(t *testing.T) {
	// GIVEN processes scheduled out of insertion order
	env := NewEnvironment()
	var times []float64
	body := func(p *Process) error {
		times = append(times, env.Now())
		return nil
	}
	require.NoError(t, env.NewProcess("late", body).ActivateAt(7))
	require.NoError(t, env.NewProcess("early", body).ActivateAt(2))
	require.NoError(t, env.NewProcess("mid", body).ActivateAt(5))

	// WHEN running to quiescence
	require.NoError(t, env.Run(context.Background()))

	// THEN events fire in time order and the clock never moves backwards
	assert.Equal(t, []float64{2, 5, 7}, times)
	assert.Equal(t, 7.0, env.Now())
}

func TestRun_EqualTimes_FIFOTieBreak(t *testing.T) {
	// GIVEN three processes all scheduled at t=1, inserted A, B, C
	env := NewEnvironment()
	var order []string
	body := func(p *Process) error {
		order = append(order, p.Name())
		return nil
	}
	require.NoError(t, env.NewProcess("A", body).ActivateAt(1))
	require.NoError(t, env.NewProcess("B", body).ActivateAt(1))
	require.NoError(t, env.NewProcess("C", body).ActivateAt(1))

	// WHEN running
	require.NoError(t, env.Run(context.Background()))

	// THEN the one inserted earlier fires first
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestRun_ExplicitPriority_BeatsInsertionOrder(t *testing.T) {
	env := NewEnvironment()
	var order []string
	body := func(p *Process) error {
		order = append(order, p.Name())
		return nil
	}
	a := env.NewProcess("A", body)
	b := env.NewProcess("B", body)
	require.NoError(t, env.scheduleProcess(a, 1, 5, KindActivate))
	require.NoError(t, env.scheduleProcess(b, 1, 1, KindActivate))

	require.NoError(t, env.Run(context.Background()))

	assert.Equal(t, []string{"B", "A"}, order)
}

func TestRunUntil_StopsAtHorizon(t *testing.T) {
	// GIVEN a process holding past the horizon
	env := NewEnvironment()
	fired := 0
	p := env.NewProcess("p", func(p *Process) error {
		for {
			fired++
			if err := p.Hold(10); err != nil {
				return err
			}
		}
	})
	require.NoError(t, p.Activate())

	// WHEN running until t=25
	require.NoError(t, env.RunUntil(context.Background(), 25))

	// THEN events at 0, 10, 20 fired, the t=30 event did not, and the clock
	// rests at the horizon
	assert.Equal(t, 3, fired)
	assert.Equal(t, 25.0, env.Now())
}

func TestRun_CancelledContext_ReturnsInterrupted(t *testing.T) {
	env := NewEnvironment()
	p := env.NewProcess("p", func(p *Process) error {
		for {
			if err := p.Hold(1); err != nil {
				return err
			}
		}
	})
	require.NoError(t, p.Activate())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := env.Run(ctx)

	assert.ErrorIs(t, err, ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Quiescence_LeavesPassiveProcesses(t *testing.T) {
	// GIVEN a process that passivates and is never activated again
	env := NewEnvironment()
	p := env.NewProcess("waiter", func(p *Process) error {
		return p.Passivate()
	})
	require.NoError(t, p.Activate())

	// WHEN running to quiescence
	// THEN the run stops gracefully rather than erroring
	require.NoError(t, env.Run(context.Background()))
}

func TestCancel_Unscheduled_IsNoOp(t *testing.T) {
	// GIVEN a process with no pending event
	env := NewEnvironment()
	p := env.NewProcess("p", func(p *Process) error { return nil })
	require.Equal(t, StatusData, p.Status())

	// WHEN cancelling twice
	p.Cancel()
	p.Cancel()

	// THEN nothing changes
	assert.Equal(t, StatusData, p.Status())
}

func TestCancel_Scheduled_InterruptsAndIsReactivatable(t *testing.T) {
	// GIVEN a scheduled process
	env := NewEnvironment()
	ran := false
	p := env.NewProcess("p", func(p *Process) error {
		ran = true
		return nil
	})
	require.NoError(t, p.ActivateAt(5))

	// WHEN cancelling its pending event
	p.Cancel()
	assert.Equal(t, StatusInterrupted, p.Status())

	// THEN running fires nothing
	require.NoError(t, env.Run(context.Background()))
	assert.False(t, ran)

	// AND the process can be reactivated afterwards on a fresh environment run
	env2 := NewEnvironment()
	p2 := env2.NewProcess("p2", func(p *Process) error {
		ran = true
		return nil
	})
	require.NoError(t, p2.ActivateAt(5))
	p2.Cancel()
	require.NoError(t, p2.ActivateAt(6))
	require.NoError(t, env2.Run(context.Background()))
	assert.True(t, ran)
	assert.Equal(t, 6.0, env2.Now())
}
