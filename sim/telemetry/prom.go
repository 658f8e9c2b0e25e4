package telemetry

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds how long Stop waits for in-flight scrapes.
const shutdownTimeout = 5 * time.Second

// PromSink exposes machine snapshots as Prometheus gauges, one GaugeVec per
// field labeled by machine id, served on /metrics by an embedded HTTP
// server.
type PromSink struct {
	addr     string
	registry *prometheus.Registry
	gauges   map[string]*prometheus.GaugeVec
	server   *http.Server
	listener net.Listener
}

// NewPromSink creates a sink serving on addr (e.g. ":9090"). The server is
// not started until Start.
func NewPromSink(addr string) *PromSink {
	registry := prometheus.NewRegistry()
	gauges := map[string]*prometheus.GaugeVec{
		FieldPartCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "factory_machine_part_count",
			Help: "Cumulative parts completed by the machine",
		}, []string{"machine_id"}),
		FieldCycleTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "factory_machine_cycle_time",
			Help: "Cycle time of the machine's current or last cycle, in simulated time units",
		}, []string{"machine_id"}),
		FieldOperatingTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "factory_machine_operating_time",
			Help: "Cumulative operating time of the machine, in simulated time units",
		}, []string{"machine_id"}),
	}
	for _, g := range gauges {
		registry.MustRegister(g)
	}
	return &PromSink{
		addr:     addr,
		registry: registry,
		gauges:   gauges,
	}
}

// Start binds the listen address and begins serving /metrics. The bind
// error is returned synchronously; serve errors after a clean Stop are
// ignored.
func (s *PromSink) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("telemetry: listen %s: %w", s.addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.listener = listener
	s.server = &http.Server{Handler: mux}
	go func() {
		_ = s.server.Serve(listener)
	}()
	return nil
}

// Addr returns the bound listen address, useful when addr was ":0".
func (s *PromSink) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Publish sets the gauge for one machine field.
func (s *PromSink) Publish(machineID int, field string, value float64) error {
	g, ok := s.gauges[field]
	if !ok {
		return fmt.Errorf("telemetry: unknown field %q", field)
	}
	g.WithLabelValues(strconv.Itoa(machineID)).Set(value)
	return nil
}

// Stop shuts the HTTP server down, waiting briefly for in-flight scrapes.
func (s *PromSink) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
