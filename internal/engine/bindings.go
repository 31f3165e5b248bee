package engine

import (
	"context"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/gesture"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"handi/pkg/serrors"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	volumeController = 7
	defaultVelocity  = 100
)

var gestureNames = map[domain.GestureKind]string{ //nolint: gochecknoglobals
	domain.GesturePinch:       "Pinch",
	domain.GestureBoundingBox: "Bounding box",
	domain.GestureFist:        "Fist",
	domain.GestureOpenPalm:    "Open palm",
}

// binding connects one mapping to the transmitter and keeps the state shown
// as feedback. Every field is guarded by Engine.mu.
type binding struct {
	mapping    domain.Mapping
	controller uint8
	tx         Transmitter
	metrics    *metrics.Metrics
	ctx        context.Context //nolint: containedctx

	value    float64
	hasValue bool
	held     bool
	// muted, restore and mutedAt implement the mute action. mutedAt is the
	// volume write count right after muting.
	muted   bool
	restore uint8
	mutedAt uint64
}

// compile validates mappings and builds the gesture collection driving tx.
// Inactive mappings are skipped.
func compile(mappings []domain.Mapping, tx Transmitter, m *metrics.Metrics) (*gesture.Collection, []*binding, error) {
	var (
		gestures []gesture.Gesture
		bindings []*binding
	)
	for i, mp := range mappings {
		if !mp.Active {
			continue
		}
		if err := mp.Validate(); err != nil {
			return nil, nil, serrors.Wrap(serrors.ErrBadRequest, err, "mapping %d", i)
		}

		b := &binding{mapping: mp, tx: tx, metrics: m, ctx: context.Background()}
		if mp.Gesture.Continuous() {
			value, _ := gesture.ValueFor(mp.Gesture)
			b.controller, _ = mp.Param.Controller(mp.Controller)
			gestures = append(gestures, &gesture.Continuous{Value: value, OnValue: b.onValue})
		} else {
			detect, _ := gesture.DetectorFor(mp.Gesture)
			gestures = append(gestures, &gesture.Binary{Detect: detect, OnTrigger: b.onTrigger, OnRelease: b.onRelease})
		}
		bindings = append(bindings, b)
	}

	return gesture.NewCollection(gestures...), bindings, nil
}

func (b *binding) onValue(v float64) {
	if b.mapping.Smoothing > 0 {
		v = gesture.Quantize(v, b.mapping.Smoothing)
	}
	b.value, b.hasValue = v, true

	b.count("value")
	b.check("send control change", b.tx.SendCC(b.ctx, v, b.controller, b.mapping.Channel))
}

func (b *binding) onTrigger() {
	b.held = true
	b.count("trigger")

	m := b.mapping
	switch m.Action {
	case domain.ActionNote:
		b.check("note on", b.tx.NoteOn(b.ctx, m.Channel, m.Note, b.velocity()))
	case domain.ActionToggleNote:
		if b.tx.Playing(m.Channel, m.Note) {
			b.check("note off", b.tx.NoteOff(b.ctx, m.Channel, m.Note))
		} else {
			b.check("note on", b.tx.NoteOn(b.ctx, m.Channel, m.Note, b.velocity()))
		}
	case domain.ActionMute:
		if !b.muted {
			restore, ok := b.tx.CCValue(m.Channel, volumeController)
			if !ok {
				restore = 127
			}
			if err := b.tx.ControlChange(b.ctx, m.Channel, volumeController, 0); err != nil {
				b.check("mute", err)

				return
			}
			b.muted, b.restore = true, restore
			b.mutedAt = b.tx.CCWrites(m.Channel, volumeController)

			return
		}
		b.muted = false
		// a volume written while muted wins over the pre-mute value
		if b.tx.CCWrites(m.Channel, volumeController) != b.mutedAt {
			return
		}
		b.check("unmute", b.tx.ControlChange(b.ctx, m.Channel, volumeController, b.restore))
	case domain.ActionPlayPause:
		if b.tx.Running() {
			b.check("transport stop", b.tx.Stop(b.ctx))
		} else {
			b.check("transport start", b.tx.Start(b.ctx))
		}
	case domain.ActionStop:
		b.check("panic", b.tx.Panic(b.ctx))
	}
}

func (b *binding) onRelease() {
	b.held = false

	if b.mapping.Action == domain.ActionNote {
		b.check("note off", b.tx.NoteOff(b.ctx, b.mapping.Channel, b.mapping.Note))
	}
}

func (b *binding) velocity() uint8 {
	if b.mapping.Velocity == 0 {
		return defaultVelocity
	}

	return b.mapping.Velocity
}

func (b *binding) count(event string) {
	b.metrics.GestureEvents.Add(b.ctx, 1, metric.WithAttributes(
		attribute.String("gesture", string(b.mapping.Gesture)),
		attribute.String("event", event),
	))
}

func (b *binding) check(action string, err error) {
	if err != nil {
		logger.Warn(b.ctx, "could not "+action,
			zap.String("gesture", string(b.mapping.Gesture)),
			zap.Error(err))
	}
}

// Feedback describes the live state of one mapping.
type Feedback struct {
	Gesture domain.GestureKind `json:"gesture"`
	Label   string             `json:"label"`
	// Value is the last continuous value in [0, 1].
	Value *float64 `json:"value,omitempty"`
	Held  bool     `json:"held"`
}

func (b *binding) feedback() Feedback {
	m := b.mapping
	name := gestureNames[m.Gesture]
	ch := int(m.Channel) + 1

	fb := Feedback{Gesture: m.Gesture, Held: b.held}
	if m.Gesture.Continuous() {
		target := string(m.Param)
		if m.Param == domain.ParamCC {
			target = fmt.Sprintf("cc%d", b.controller)
		}
		if !b.hasValue {
			fb.Label = fmt.Sprintf("%s %s ch%d: -", name, target, ch)

			return fb
		}
		v := b.value
		fb.Value = &v
		fb.Label = fmt.Sprintf("%s %s ch%d: %d%%", name, target, ch, int(math.Round(v*100)))

		return fb
	}

	state := "off"
	switch m.Action {
	case domain.ActionNote, domain.ActionToggleNote:
		if b.tx.Playing(m.Channel, m.Note) {
			state = "on"
		}
		fb.Label = fmt.Sprintf("%s %s %d ch%d: %s", name, m.Action, m.Note, ch, state)

		return fb
	case domain.ActionMute:
		if b.muted {
			state = "muted"
		} else {
			state = "live"
		}
	case domain.ActionPlayPause:
		if b.tx.Running() {
			state = "playing"
		} else {
			state = "paused"
		}
	case domain.ActionStop:
		if b.held {
			state = "stopping"
		} else {
			state = "idle"
		}
	}
	fb.Label = fmt.Sprintf("%s %s ch%d: %s", name, m.Action, ch, state)

	return fb
}
