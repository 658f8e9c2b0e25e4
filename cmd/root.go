package cmd

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jobshop-sim/jobshop-sim/sim"
	"github.com/jobshop-sim/jobshop-sim/sim/factory"
	"github.com/jobshop-sim/jobshop-sim/sim/telemetry"
	"github.com/jobshop-sim/jobshop-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	logLevel        string  // Log verbosity level
	horizon         float64 // Simulation horizon; negative runs to quiescence
	planPath        string  // Production plan YAML file; empty uses the default plan
	turnaround      float64 // Per-machine load/unload delay
	publishInterval float64 // Telemetry sampling period; negative disables the publisher
	traceEvents     bool    // Record and summarize every fired event

	// CLI flags for real-time pacing
	realTime    bool          // Pace event firing against the wall clock
	rate        float64       // Simulated time units per wall-clock second
	granularity time.Duration // Shortest stall worth sleeping

	// CLI flags for generator pacing
	seed        int64   // Master seed for the partitioned RNG
	genInterval float64 // Fixed delay between part creations; 0 creates all parts at once
	genJitter   float64 // Upper bound for uniform pacing; 0 keeps the fixed delay

	// CLI flags for telemetry
	telemetryBackend string // Sink backend: none, log, or prometheus
	listenAddr       string // Prometheus /metrics listen address
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "jobshop-sim",
	Short: "Discrete-event simulator for a job-shop factory",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the factory simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		plan := DefaultPlan()
		if planPath != "" {
			plan, err = factory.LoadPlan(planPath)
			if err != nil {
				return err
			}
		}

		sink, err := buildSink()
		if err != nil {
			return err
		}

		env := sim.NewEnvironment()
		if realTime {
			env.SetPacer(sim.NewPacer(rate, granularity))
		}
		var recorder *trace.Recorder
		if traceEvents {
			recorder = trace.NewRecorder()
			env.SetTracer(recorder)
		}

		f, err := factory.New(env, plan, sink, factory.Config{
			Turnaround:      turnaround,
			PublishInterval: publishInterval,
			GenInterval:     buildGenInterval(),
		})
		if err != nil {
			return err
		}

		logrus.Infof("Starting simulation: %d machines, %d part families, horizon=%v",
			plan.Machines, len(plan.Parts), horizon)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runErr := f.Run(ctx, horizon)
		switch {
		case runErr == nil:
			logrus.Info("Simulation successfully over")
		case errors.Is(runErr, sim.ErrInterrupted):
			logrus.Warn("Simulation interrupted")
		default:
			return runErr
		}

		f.Report().Print()
		if recorder != nil {
			printTraceSummary(trace.Summarize(recorder))
		}
		return nil
	},
}

// buildSink selects the telemetry backend from CLI flags.
func buildSink() (telemetry.Sink, error) {
	switch telemetryBackend {
	case "none":
		return telemetry.NopSink{}, nil
	case "log":
		return telemetry.NewLogSink(nil), nil
	case "prometheus":
		return telemetry.NewPromSink(listenAddr), nil
	}
	return nil, errors.New("unknown telemetry backend: " + telemetryBackend)
}

// buildGenInterval selects the generator pacing from CLI flags.
func buildGenInterval() factory.IntervalFunc {
	if genInterval <= 0 {
		return nil
	}
	if genJitter > genInterval {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		return factory.UniformInterval(sim.NewUniform(genInterval, genJitter,
			rng.ForSubsystem(sim.SubsystemGenerator)))
	}
	return factory.FixedInterval(genInterval)
}

func printTraceSummary(s *trace.Summary) {
	logrus.Infof("trace: %d events from t=%.2f to t=%.2f", s.Events, s.Start, s.End)
	for kind, count := range s.KindCounts {
		logrus.Infof("trace: %-8s %d", kind, count)
	}
}

func init() {
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 300, "Simulation horizon in time units; negative runs to quiescence")
	runCmd.Flags().StringVar(&planPath, "plan", "", "Production plan YAML file (default: built-in 4-machine plan)")
	runCmd.Flags().Float64Var(&turnaround, "turnaround", factory.DefaultTurnaround, "Load/unload delay per machine cycle")
	runCmd.Flags().Float64Var(&publishInterval, "publish-interval", factory.DefaultPublishInterval, "Telemetry sampling period; negative disables the publisher")
	runCmd.Flags().BoolVar(&traceEvents, "trace", false, "Record every fired event and print a summary")

	runCmd.Flags().BoolVar(&realTime, "real-time", false, "Pace simulated time against the wall clock")
	runCmd.Flags().Float64Var(&rate, "rate", 1.0, "Simulated time units per wall-clock second")
	runCmd.Flags().DurationVar(&granularity, "granularity", sim.DefaultGranularity, "Shortest real-time stall worth sleeping")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for generator pacing")
	runCmd.Flags().Float64Var(&genInterval, "gen-interval", 0, "Delay between part creations; 0 creates all parts at once")
	runCmd.Flags().Float64Var(&genJitter, "gen-jitter", 0, "Uniform pacing upper bound; must exceed --gen-interval to take effect")

	runCmd.Flags().StringVar(&telemetryBackend, "telemetry", "log", "Telemetry backend: none, log, prometheus")
	runCmd.Flags().StringVar(&listenAddr, "listen", ":9090", "Prometheus /metrics listen address")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
