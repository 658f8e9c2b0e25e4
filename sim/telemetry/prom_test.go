package telemetry

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromSink_ServesPublishedGauges(t *testing.T) {
	// GIVEN a started sink on an ephemeral port
	sink := NewPromSink("127.0.0.1:0")
	require.NoError(t, sink.Start())
	defer func() { require.NoError(t, sink.Stop()) }()

	// WHEN publishing one snapshot for machine 0
	require.NoError(t, sink.Publish(0, FieldPartCount, 3))
	require.NoError(t, sink.Publish(0, FieldCycleTime, 1.5))
	require.NoError(t, sink.Publish(0, FieldOperatingTime, 12.25))

	// THEN /metrics exposes all three gauges labeled by machine id
	resp, err := http.Get("http://" + sink.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `factory_machine_part_count{machine_id="0"} 3`)
	assert.Contains(t, string(body), `factory_machine_cycle_time{machine_id="0"} 1.5`)
	assert.Contains(t, string(body), `factory_machine_operating_time{machine_id="0"} 12.25`)
}

func TestPromSink_UnknownField_Fails(t *testing.T) {
	sink := NewPromSink("127.0.0.1:0")
	err := sink.Publish(0, "temperature", 1)
	assert.Error(t, err)
}

func TestPromSink_StopWithoutStart_IsNoOp(t *testing.T) {
	sink := NewPromSink("127.0.0.1:0")
	assert.NoError(t, sink.Stop())
}

func TestNopSink_DiscardsEverything(t *testing.T) {
	var s Sink = NopSink{}
	assert.NoError(t, s.Start())
	assert.NoError(t, s.Publish(1, FieldPartCount, 1))
	assert.NoError(t, s.Stop())
}
