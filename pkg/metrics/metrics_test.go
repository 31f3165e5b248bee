package metrics_test

import (
	"context"
	"handi/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestNoop(t *testing.T) {
	m := metrics.Noop()
	require.NotNil(t, m)
	require.NotPanics(t, func() {
		m.FramesReceived.Add(context.Background(), 1)
		m.FrameDuration.Record(context.Background(), 0.001)
	})
}

func TestPrometheusProviderExportsInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewPrometheusProvider(reg)
	require.NoError(t, err)
	defer func() { require.NoError(t, metrics.Shutdown(context.Background(), mp)) }()

	m, err := metrics.New(mp)
	require.NoError(t, err)

	m.MIDIMessages.Add(context.Background(), 3, metric.WithAttributes(attribute.String("type", "control_change")))

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "handi_midi_messages") {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0.0001)
		}
	}
	require.True(t, found, "midi messages counter should be exported")
}
