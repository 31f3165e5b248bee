// Package engine turns hand landmark frames into MIDI. Frames are queued by
// ingest sources, filtered, reduced to one selected hand and evaluated by the
// gesture collection compiled from the active mapping profile.
package engine

import (
	"context"
	"handi/internal/config"
	"handi/pkg/domain"
	"handi/pkg/gesture"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"handi/pkg/serrors"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// fpsSmoothing weights the previous estimate of the frame rate.
const fpsSmoothing = 0.9

// Transmitter is the MIDI surface driven by gestures.
type Transmitter interface {
	SendCC(ctx context.Context, value float64, controller, channel uint8) error
	ControlChange(ctx context.Context, channel, controller, value uint8) error
	CCValue(channel, controller uint8) (uint8, bool)
	CCWrites(channel, controller uint8) uint64
	NoteOn(ctx context.Context, channel, note, velocity uint8) error
	NoteOff(ctx context.Context, channel, note uint8) error
	Playing(channel, note uint8) bool
	PlayingCount() int
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Running() bool
	Panic(ctx context.Context) error
	PortName() string
}

// HandSelector restricts which hand drives the gestures.
type HandSelector string

const (
	HandAny   HandSelector = "any"
	HandLeft  HandSelector = "left"
	HandRight HandSelector = "right"
)

// Valid reports whether s is a known selector.
func (s HandSelector) Valid() bool {
	return s == HandAny || s == HandLeft || s == HandRight
}

func (s HandSelector) accepts(h domain.Handedness) bool {
	switch s {
	case HandLeft:
		return h == domain.HandLeft
	case HandRight:
		return h == domain.HandRight
	}

	return true
}

// TrackerSettings choose which frames and hands are classified.
type TrackerSettings struct {
	// Camera accepts frames of one camera; AnyCamera accepts all.
	Camera int `json:"camera"`
	// MinConfidence is the minimum hand score in [0, 1].
	MinConfidence float64      `json:"minConfidence"`
	Hand          HandSelector `json:"hand"`
}

// AnyCamera disables camera filtering.
const AnyCamera = -1

// Validate checks the settings.
func (s TrackerSettings) Validate() error {
	if s.Camera < AnyCamera {
		return serrors.With(serrors.ErrBadRequest, "camera %d must be %d or more", s.Camera, AnyCamera)
	}
	if s.MinConfidence < 0 || s.MinConfidence > 1 {
		return serrors.With(serrors.ErrBadRequest, "min confidence %v out of [0, 1]", s.MinConfidence)
	}
	if !s.Hand.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown hand selector %q", s.Hand)
	}

	return nil
}

// Options configure an Engine.
type Options struct {
	Tracker TrackerSettings
	// QueueSize is the number of frames buffered before the oldest is dropped.
	QueueSize int
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Tracker: TrackerSettings{
			Camera:        cfg.Tracker.Camera,
			MinConfidence: cfg.Tracker.MinConfidence,
			Hand:          HandSelector(cfg.Tracker.Hand),
		},
		QueueSize: cfg.Tracker.QueueSize,
	}
}

// Engine classifies frames and drives the transmitter. Submit, Apply,
// SetTracker, Panic and Status may be called from any goroutine while Run is
// processing.
type Engine struct {
	tx      Transmitter
	metrics *metrics.Metrics
	tracer  trace.Tracer
	queue   *frameQueue

	// mu guards the fields below and serializes gesture evaluation.
	mu         sync.Mutex
	tracker    TrackerSettings
	collection *gesture.Collection
	bindings   []*binding
	fps        float64
	lastFrame  time.Time
	lastHand   *HandStatus

	processed atomic.Uint64
	dropped   atomic.Uint64
}

// New returns an engine with an empty mapping set.
func New(opts Options, tx Transmitter, m *metrics.Metrics) (*Engine, error) {
	if opts.Tracker.Hand == "" {
		opts.Tracker.Hand = HandAny
	}
	if err := opts.Tracker.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.Noop()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	return &Engine{
		tx:         tx,
		metrics:    m,
		tracer:     opts.TracerProvider.Tracer("handi/engine"),
		queue:      newFrameQueue(opts.QueueSize),
		tracker:    opts.Tracker,
		collection: gesture.NewCollection(),
	}, nil
}

// Submit queues a frame without blocking. When the queue is full the oldest
// frame is dropped.
func (e *Engine) Submit(ctx context.Context, frame domain.Frame) {
	if e.queue.push(frame) {
		e.drop(ctx, "queue_full")
	}
}

// Run processes queued frames until ctx is done. On return every held gesture
// is released.
func (e *Engine) Run(ctx context.Context) error {
	ctx = logger.Named(ctx, "engine")
	logger.Info(ctx, "engine started")

	defer func() {
		e.mu.Lock()
		e.setContext(context.WithoutCancel(ctx))
		e.collection.Reset()
		e.mu.Unlock()
		logger.Info(ctx, "engine stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.queue.ready:
		}

		for {
			frame, ok := e.queue.pop()
			if !ok {
				break
			}
			e.Process(ctx, frame)
		}
	}
}

// Process classifies one frame synchronously.
func (e *Engine) Process(ctx context.Context, frame domain.Frame) {
	ctx, span := e.tracer.Start(ctx, "engine.Process", trace.WithAttributes(
		attribute.Int("camera", frame.Camera),
		attribute.Int64("seq", int64(frame.Seq)), //nolint: gosec
		attribute.Int("hands", len(frame.Hands)),
	))
	defer span.End()

	start := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	if frame.Width <= 0 || frame.Height <= 0 {
		e.drop(ctx, "invalid_size")

		return
	}
	if e.tracker.Camera != AnyCamera && frame.Camera != e.tracker.Camera {
		e.drop(ctx, "camera")

		return
	}

	if !e.lastFrame.IsZero() {
		if dt := start.Sub(e.lastFrame).Seconds(); dt > 0 {
			if e.fps == 0 {
				e.fps = 1 / dt
			} else {
				e.fps = fpsSmoothing*e.fps + (1-fpsSmoothing)/dt
			}
		}
	}
	e.lastFrame = start

	var points []gesture.Point
	hand, ok := selectHand(frame.Hands, e.tracker)
	if ok {
		points = gesture.PixelLandmarks(hand, frame.Width, frame.Height)
		e.lastHand = &HandStatus{
			Camera:     frame.Camera,
			Handedness: hand.Handedness,
			Score:      hand.Score,
			SeenAt:     start,
		}
		span.SetAttributes(attribute.String("hand", string(hand.Handedness)))
	}

	e.setContext(ctx)
	e.collection.Update(points)
	e.processed.Add(1)

	e.metrics.FrameDuration.Record(ctx, time.Since(start).Seconds())
}

// selectHand returns the complete, most confident hand accepted by settings.
func selectHand(hands []domain.Hand, settings TrackerSettings) (domain.Hand, bool) {
	var (
		best  domain.Hand
		found bool
	)
	for _, h := range hands {
		if !h.Complete() || h.Score < settings.MinConfidence || !settings.Hand.accepts(h.Handedness) {
			continue
		}
		if !found || h.Score > best.Score {
			best, found = h, true
		}
	}

	return best, found
}

func (e *Engine) drop(ctx context.Context, reason string) {
	e.dropped.Add(1)
	e.metrics.FramesDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// setContext hands ctx to the gesture callbacks. Must be called with mu held.
func (e *Engine) setContext(ctx context.Context) {
	for _, b := range e.bindings {
		b.ctx = ctx
	}
}

// Apply compiles mappings and replaces the running collection. The previous
// collection is reset first so held notes are released.
func (e *Engine) Apply(ctx context.Context, mappings []domain.Mapping) error {
	collection, bindings, err := compile(mappings, e.tx, e.metrics)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.setContext(context.WithoutCancel(ctx))
	e.collection.Reset()

	e.collection, e.bindings = collection, bindings
	e.setContext(context.WithoutCancel(ctx))

	logger.Info(ctx, "applied mappings", zap.Int("gestures", collection.Len()))

	return nil
}

// Panic releases held gestures and silences the output.
func (e *Engine) Panic(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.setContext(context.WithoutCancel(ctx))
	e.collection.Reset()

	return e.tx.Panic(ctx) //nolint: wrapcheck
}

// SetTracker replaces the frame and hand filters.
func (e *Engine) SetTracker(settings TrackerSettings) error {
	if settings.Hand == "" {
		settings.Hand = HandAny
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.tracker = settings

	return nil
}

// Tracker returns the current frame and hand filters.
func (e *Engine) Tracker() TrackerSettings {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.tracker
}
