package ingest

import (
	"bufio"
	"context"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"io"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Sink consumes decoded frames. It must not block.
//
//go:generate mockgen -package mockingest -source=sink.go -destination=mock/mockingest.go Sink
type Sink interface {
	Submit(ctx context.Context, frame domain.Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, frame domain.Frame)

// Submit implements Sink.
func (f SinkFunc) Submit(ctx context.Context, frame domain.Frame) { f(ctx, frame) }

// Tee submits every frame to each sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, frame domain.Frame) {
		for _, s := range sinks {
			s.Submit(ctx, frame)
		}
	})
}

// receiver decodes raw documents for one transport and accounts for them.
type receiver struct {
	source  string
	sink    Sink
	metrics *metrics.Metrics
}

func newReceiver(source string, sink Sink, m *metrics.Metrics) receiver {
	if m == nil {
		m = metrics.Noop()
	}

	return receiver{source: source, sink: sink, metrics: m}
}

// receive decodes data and submits the frame. Decode errors are logged at
// debug level and counted, so a misbehaving tracker cannot flood the log.
func (r receiver) receive(ctx context.Context, data []byte) bool {
	frame, err := DecodeFrame(data)
	if err != nil {
		r.reject(ctx, err)

		return false
	}
	r.submit(ctx, frame)

	return true
}

func (r receiver) reject(ctx context.Context, err error) {
	r.metrics.FramesDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", "decode"),
		attribute.String("source", r.source),
	))
	logger.Debug(ctx, "could not decode frame", zap.String("source", r.source), zap.Error(err))
}

func (r receiver) submit(ctx context.Context, frame domain.Frame) {
	r.metrics.FramesReceived.Add(ctx, 1, metric.WithAttributes(attribute.String("source", r.source)))
	r.sink.Submit(ctx, frame)
}

// FrameWriter appends frames to w as JSON lines, in the format read by
// Replay. It is a Sink, so it can be teed next to the engine to record a
// session.
type FrameWriter struct {
	mu  sync.Mutex
	w   *bufio.Writer
	err error
}

// NewFrameWriter returns a writer buffering into w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: bufio.NewWriter(w)}
}

// Submit implements Sink. Write errors are kept and returned by Flush.
func (fw *FrameWriter) Submit(ctx context.Context, frame domain.Frame) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.err != nil {
		return
	}
	if _, err := fw.w.Write(EncodeFrame(frame)); err != nil {
		fw.err = err
	} else if err := fw.w.WriteByte('\n'); err != nil {
		fw.err = err
	}
	if fw.err != nil {
		logger.Warn(ctx, "could not record frame", zap.Error(fw.err))
	}
}

// Flush writes buffered frames and returns the first write error.
func (fw *FrameWriter) Flush() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.err != nil {
		return fw.err
	}

	return fw.w.Flush()
}
