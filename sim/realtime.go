package sim

import (
	"context"
	"time"
)

// DefaultGranularity is the shortest stall the pacer bothers sleeping.
// Gaps below it are absorbed by processing time.
const DefaultGranularity = 10 * time.Millisecond

// Pacer stalls event firing so that simulated time tracks the wall clock at
// a configurable rate. It only ever sleeps forward: when event processing
// falls behind the wall clock the tick slips silently instead of
// accumulating backlog.
type Pacer struct {
	rate        float64 // simulated time units per wall-clock second
	granularity time.Duration

	started   bool
	wallStart time.Time
	simStart  float64

	// now and sleep are swappable for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a pacer. rate is simulated time units per wall-clock
// second (1.0 = real time); granularity <= 0 uses DefaultGranularity.
func NewPacer(rate float64, granularity time.Duration) *Pacer {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	return &Pacer{
		rate:        rate,
		granularity: granularity,
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

// Rate returns the configured simulated-per-wall rate factor.
func (rt *Pacer) Rate() float64 { return rt.rate }

// Pace blocks until the wall clock catches up with the given simulated
// time. The first call anchors simulated time to the wall clock. Returns
// the context error if cancelled mid-sleep.
func (rt *Pacer) Pace(ctx context.Context, simTime float64) error {
	if !rt.started {
		rt.started = true
		rt.wallStart = rt.now()
		rt.simStart = simTime
		return nil
	}
	elapsed := (simTime - rt.simStart) / rt.rate
	target := rt.wallStart.Add(time.Duration(elapsed * float64(time.Second)))
	gap := target.Sub(rt.now())
	if gap < rt.granularity {
		return nil
	}
	return rt.sleep(ctx, gap)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
