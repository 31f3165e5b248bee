// Package tracing builds the OpenTelemetry tracer provider. There is no
// collector; ended spans slower than a threshold are logged instead.
package tracing

import (
	"context"
	"handi/pkg/logger"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Options configure the tracer provider.
type Options struct {
	// SampleRatio is the fraction of root spans recorded, in [0, 1].
	SampleRatio float64
	// SlowThreshold is the span duration from which a span is logged. Zero
	// disables logging.
	SlowThreshold time.Duration
}

// NewProvider returns a provider sampling root spans by ratio and logging slow
// spans to the logger carried by ctx. Callers own Shutdown.
func NewProvider(ctx context.Context, opts Options) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithSpanProcessor(NewSlowSpanLogger(logger.Named(ctx, "trace"), opts.SlowThreshold)),
	)
}

// SlowSpanLogger is a span processor warning about spans that took at least
// its threshold.
type SlowSpanLogger struct {
	ctx       context.Context //nolint: containedctx
	threshold time.Duration
}

var _ sdktrace.SpanProcessor = (*SlowSpanLogger)(nil)

// NewSlowSpanLogger logs to the logger carried by ctx.
func NewSlowSpanLogger(ctx context.Context, threshold time.Duration) *SlowSpanLogger {
	return &SlowSpanLogger{ctx: ctx, threshold: threshold}
}

func (l *SlowSpanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (l *SlowSpanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if l.threshold <= 0 {
		return
	}
	took := s.EndTime().Sub(s.StartTime())
	if took < l.threshold {
		return
	}

	fields := []zap.Field{
		zap.String("span", s.Name()),
		zap.Duration("took", took),
		zap.Stringer("trace_id", s.SpanContext().TraceID()),
	}
	for _, kv := range s.Attributes() {
		fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
	}
	logger.Warn(l.ctx, "slow span", fields...)
}

func (l *SlowSpanLogger) Shutdown(context.Context) error { return nil }

func (l *SlowSpanLogger) ForceFlush(context.Context) error { return nil }
