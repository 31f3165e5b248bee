// Package metrics defines the OpenTelemetry instruments recorded by the
// frame pipeline and the MIDI transport, and the Prometheus-backed meter
// provider that exposes them.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds for
// latency metrics. Frame processing is expected in the sub-millisecond range.
var DefaultBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25} //nolint: gochecknoglobals

const meterName = "handi"

// Metrics groups the instruments used across the application.
type Metrics struct {
	// FramesReceived counts decoded frames per ingest source.
	FramesReceived metric.Int64Counter
	// FramesDropped counts frames discarded before classification, by reason.
	FramesDropped metric.Int64Counter
	// FrameDuration measures the time spent classifying one frame.
	FrameDuration metric.Float64Histogram
	// GestureEvents counts gesture triggers and value updates, by gesture.
	GestureEvents metric.Int64Counter
	// MIDIMessages counts messages written to the output port, by type.
	MIDIMessages metric.Int64Counter
	// MIDIDropped counts control changes suppressed by the rate limiter.
	MIDIDropped metric.Int64Counter
}

// New creates all instruments from the given provider.
func New(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)

	var (
		m   Metrics
		err error
	)
	if m.FramesReceived, err = meter.Int64Counter("handi_frames_received",
		metric.WithDescription("Hand landmark frames decoded by ingest sources")); err != nil {
		return nil, fmt.Errorf("could not create frames received counter: %w", err)
	}
	if m.FramesDropped, err = meter.Int64Counter("handi_frames_dropped",
		metric.WithDescription("Frames discarded before gesture classification")); err != nil {
		return nil, fmt.Errorf("could not create frames dropped counter: %w", err)
	}
	if m.FrameDuration, err = meter.Float64Histogram("handi_frame_duration",
		metric.WithDescription("Time spent classifying a frame"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create frame duration histogram: %w", err)
	}
	if m.GestureEvents, err = meter.Int64Counter("handi_gesture_events",
		metric.WithDescription("Gesture triggers and continuous value updates")); err != nil {
		return nil, fmt.Errorf("could not create gesture events counter: %w", err)
	}
	if m.MIDIMessages, err = meter.Int64Counter("handi_midi_messages",
		metric.WithDescription("MIDI messages written to the output port")); err != nil {
		return nil, fmt.Errorf("could not create midi messages counter: %w", err)
	}
	if m.MIDIDropped, err = meter.Int64Counter("handi_midi_dropped",
		metric.WithDescription("Control changes suppressed by the output rate limiter")); err != nil {
		return nil, fmt.Errorf("could not create midi dropped counter: %w", err)
	}

	return &m, nil
}

// Noop returns instruments that record nothing. It is used by tests and
// commands that do not expose metrics.
func Noop() *Metrics {
	m, _ := New(noop.NewMeterProvider())

	return m
}

// NewPrometheusProvider returns a meter provider whose instruments are
// exported through the given Prometheus registerer.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Shutdown flushes and stops a provider created by NewPrometheusProvider.
func Shutdown(ctx context.Context, mp *sdkmetric.MeterProvider) error {
	if mp == nil {
		return nil
	}
	if err := mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
