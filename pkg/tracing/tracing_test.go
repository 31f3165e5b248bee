package tracing_test

import (
	"context"
	"handi/pkg/logger"
	"handi/pkg/tracing"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestNewProvider_LogsSlowSpans(t *testing.T) {
	ctx, logs := observed()
	tp := tracing.NewProvider(ctx, tracing.Options{SampleRatio: 1, SlowThreshold: 10 * time.Millisecond})
	defer func() { require.NoError(t, tp.Shutdown(context.Background())) }()

	tracer := tp.Tracer("test")
	start := time.Now()

	_, fast := tracer.Start(ctx, "fast", trace.WithTimestamp(start))
	fast.End(trace.WithTimestamp(start.Add(time.Millisecond)))

	_, slow := tracer.Start(ctx, "slow", trace.WithTimestamp(start),
		trace.WithAttributes(attribute.Int("camera", 1)))
	slow.End(trace.WithTimestamp(start.Add(30 * time.Millisecond)))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "slow span", entries[0].Message)
	require.Equal(t, "trace", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	require.Equal(t, "slow", fields["span"])
	require.Equal(t, 30*time.Millisecond, fields["took"])
	require.Equal(t, "1", fields["camera"])
	require.NotEmpty(t, fields["trace_id"])
}

func TestNewProvider_Disabled(t *testing.T) {
	tests := map[string]tracing.Options{
		"no threshold": {SampleRatio: 1},
		"not sampled":  {SampleRatio: 0, SlowThreshold: time.Nanosecond},
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, logs := observed()
			tp := tracing.NewProvider(ctx, opts)

			start := time.Now()
			_, span := tp.Tracer("test").Start(ctx, "span", trace.WithTimestamp(start))
			span.End(trace.WithTimestamp(start.Add(time.Second)))

			require.NoError(t, tp.Shutdown(context.Background()))
			require.Zero(t, logs.Len())
		})
	}
}
