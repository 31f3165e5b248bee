package midiout

import (
	"context"
	"handi/pkg/metrics"
	"handi/pkg/serrors"
	"sort"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const (
	// MaxChannel is the highest zero based MIDI channel.
	MaxChannel = 15
	// MaxData is the highest value of a MIDI data byte.
	MaxData = 127
	// AllNotesOff is the channel mode controller silencing a channel.
	AllNotesOff = 123

	realtimeStart = 0xFA
	realtimeStop  = 0xFC
)

// Options configure a Transmitter.
type Options struct {
	// CCRate limits scaled control changes per second. Zero disables the limit.
	CCRate float64
	// CCBurst is the number of control changes allowed in a burst.
	CCBurst int
}

type ccKey struct{ channel, controller uint8 }

type noteKey struct{ channel, note uint8 }

// Transmitter writes channel and realtime messages to an Output, keeping the
// state needed to silence it: sounding notes, last control values and the
// transport state. It is safe for concurrent use.
type Transmitter struct {
	out     Output
	metrics *metrics.Metrics
	limiter *rate.Limiter

	// mu serializes writes to out and guards every field below.
	mu       sync.Mutex
	lastCC   map[ccKey]uint8
	ccWrites map[ccKey]uint64
	playing  map[noteKey]struct{}
	channels [MaxChannel + 1]bool
	running  bool
	recorder Recorder
}

// NewTransmitter returns a Transmitter writing to out.
func NewTransmitter(out Output, m *metrics.Metrics, opts Options) *Transmitter {
	if m == nil {
		m = metrics.Noop()
	}

	t := &Transmitter{
		out:     out,
		metrics: m,
		lastCC:   make(map[ccKey]uint8),
		ccWrites: make(map[ccKey]uint64),
		playing: make(map[noteKey]struct{}),
	}
	if opts.CCRate > 0 {
		burst := opts.CCBurst
		if burst <= 0 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(opts.CCRate), burst)
	}

	return t
}

// PortName returns the name of the underlying output.
func (t *Transmitter) PortName() string { return t.out.Name() }

// SetRecorder attaches r to the transmitter; nil detaches the current one.
func (t *Transmitter) SetRecorder(r Recorder) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.recorder = r
}

func validate(channel uint8, data ...uint8) error {
	if channel > MaxChannel {
		return serrors.With(serrors.ErrBadRequest, "midi channel %d out of range", channel)
	}
	for _, d := range data {
		if d > MaxData {
			return serrors.With(serrors.ErrBadRequest, "midi data byte %d out of range", d)
		}
	}

	return nil
}

// ScaleCC converts a [0, 1] value to a control value.
func ScaleCC(value float64) uint8 {
	v := int(value * MaxData)
	if v < 0 {
		return 0
	}
	if v > MaxData {
		return MaxData
	}

	return uint8(v) //nolint: gosec
}

// SendCC sends value in [0, 1] as a control change. Repeated values are not
// resent, and values arriving faster than the configured rate are dropped so
// the next update carries the latest position.
func (t *Transmitter) SendCC(ctx context.Context, value float64, controller, channel uint8) error {
	if err := validate(channel, controller); err != nil {
		return err
	}
	v := ScaleCC(value)

	t.mu.Lock()
	defer t.mu.Unlock()

	k := ccKey{channel: channel, controller: controller}
	if last, ok := t.lastCC[k]; ok && last == v {
		return nil
	}
	if t.limiter != nil && !t.limiter.Allow() {
		t.metrics.MIDIDropped.Add(ctx, 1)

		return nil
	}

	return t.controlChange(ctx, k, v)
}

// ControlChange sends a raw control change, bypassing rate limiting and
// duplicate suppression.
func (t *Transmitter) ControlChange(ctx context.Context, channel, controller, value uint8) error {
	if err := validate(channel, controller, value); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.controlChange(ctx, ccKey{channel: channel, controller: controller}, value)
}

func (t *Transmitter) controlChange(ctx context.Context, k ccKey, value uint8) error {
	if err := t.send(ctx, "control_change", midi.ControlChange(k.channel, k.controller, value)); err != nil {
		return err
	}
	t.lastCC[k] = value
	t.ccWrites[k]++
	t.channels[k.channel] = true

	return nil
}

// CCValue returns the last control value sent for controller on channel.
func (t *Transmitter) CCValue(channel, controller uint8) (uint8, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.lastCC[ccKey{channel: channel, controller: controller}]

	return v, ok
}

// CCWrites returns how many control changes were sent for controller on
// channel. Comparing two readings tells whether anything wrote in between.
func (t *Transmitter) CCWrites(channel, controller uint8) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ccWrites[ccKey{channel: channel, controller: controller}]
}

// NoteOn starts note on channel. A note that is already sounding is
// retriggered.
func (t *Transmitter) NoteOn(ctx context.Context, channel, note, velocity uint8) error {
	if err := validate(channel, note, velocity); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.send(ctx, "note_on", midi.NoteOn(channel, note, velocity)); err != nil {
		return err
	}
	t.playing[noteKey{channel: channel, note: note}] = struct{}{}
	t.channels[channel] = true

	return nil
}

// NoteOff stops note on channel. Notes that are not sounding are ignored.
func (t *Transmitter) NoteOff(ctx context.Context, channel, note uint8) error {
	if err := validate(channel, note); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.noteOff(ctx, noteKey{channel: channel, note: note})
}

func (t *Transmitter) noteOff(ctx context.Context, k noteKey) error {
	if _, ok := t.playing[k]; !ok {
		return nil
	}
	if err := t.send(ctx, "note_off", midi.NoteOff(k.channel, k.note)); err != nil {
		return err
	}
	delete(t.playing, k)

	return nil
}

// Playing reports whether note is sounding on channel.
func (t *Transmitter) Playing(channel, note uint8) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.playing[noteKey{channel: channel, note: note}]

	return ok
}

// PlayingCount returns the number of sounding notes.
func (t *Transmitter) PlayingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.playing)
}

// Start sends a realtime Start message.
func (t *Transmitter) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.send(ctx, "start", midi.Message{realtimeStart}); err != nil {
		return err
	}
	t.running = true

	return nil
}

// Stop sends a realtime Stop message.
func (t *Transmitter) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.send(ctx, "stop", midi.Message{realtimeStop}); err != nil {
		return err
	}
	t.running = false

	return nil
}

// Running reports whether the last transport message was Start.
func (t *Transmitter) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// Panic silences the output: a note off for every sounding note, then All
// Notes Off on every channel that was used. Channel 0 always receives All
// Notes Off. The first send error is returned after every message was tried.
func (t *Transmitter) Panic(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	notes := make([]noteKey, 0, len(t.playing))
	for k := range t.playing {
		notes = append(notes, k)
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].channel != notes[j].channel {
			return notes[i].channel < notes[j].channel
		}

		return notes[i].note < notes[j].note
	})
	for _, k := range notes {
		keep(t.send(ctx, "note_off", midi.NoteOff(k.channel, k.note)))
	}
	clear(t.playing)

	t.channels[0] = true
	for ch, used := range t.channels {
		if used {
			keep(t.send(ctx, "control_change", midi.ControlChange(uint8(ch), AllNotesOff, 0))) //nolint: gosec
		}
	}

	return firstErr
}

// Close silences the output and closes it.
func (t *Transmitter) Close(ctx context.Context) error {
	panicErr := t.Panic(ctx)
	if err := t.out.Close(); err != nil {
		return err //nolint: wrapcheck
	}

	return panicErr
}

func (t *Transmitter) send(ctx context.Context, kind string, msg midi.Message) error {
	if err := t.out.Send(msg); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send %s", kind)
	}

	t.metrics.MIDIMessages.Add(ctx, 1, metric.WithAttributes(attribute.String("type", kind)))
	if t.recorder != nil {
		t.recorder.Record(msg)
	}

	return nil
}
