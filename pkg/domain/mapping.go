package domain

import (
	"fmt"
	"math"
)

// GestureKind names a gesture the classifier can recognize.
type GestureKind string

const (
	// GestureBoundingBox produces a continuous value from the area of the hand's bounding box.
	GestureBoundingBox GestureKind = "bounding_box"
	// GesturePinch produces a continuous value from the thumb to index fingertip distance.
	GesturePinch GestureKind = "pinch"
	// GestureFist triggers when every finger except the thumb is folded.
	GestureFist GestureKind = "fist"
	// GestureOpenPalm triggers when all five fingers are extended.
	GestureOpenPalm GestureKind = "open_palm"
)

// Continuous reports whether the gesture yields a value rather than a trigger.
func (g GestureKind) Continuous() bool {
	return g == GestureBoundingBox || g == GesturePinch
}

// Valid reports whether g is a known gesture.
func (g GestureKind) Valid() bool {
	switch g {
	case GestureBoundingBox, GesturePinch, GestureFist, GestureOpenPalm:
		return true
	}

	return false
}

// MIDIParam is the target of a continuous gesture.
type MIDIParam string

const (
	ParamVolume     MIDIParam = "volume"
	ParamOctave     MIDIParam = "octave"
	ParamModulation MIDIParam = "modulation"
	// ParamCC targets the controller number given in Mapping.Controller.
	ParamCC MIDIParam = "cc"
)

// Controller returns the MIDI control change number for the param. For
// ParamCC the explicit controller is returned.
func (p MIDIParam) Controller(explicit uint8) (uint8, bool) {
	switch p {
	case ParamVolume:
		return 7, true
	case ParamOctave:
		return 15, true
	case ParamModulation:
		return 1, true
	case ParamCC:
		return explicit, explicit <= 127
	}

	return 0, false
}

// BinaryAction is what a binary gesture does when it triggers.
type BinaryAction string

const (
	// ActionNote holds a note while the gesture is held.
	ActionNote BinaryAction = "note"
	// ActionToggleNote flips a note on and off on every trigger.
	ActionToggleNote BinaryAction = "toggle_note"
	// ActionMute sets channel volume to zero, and restores it on the next trigger.
	ActionMute BinaryAction = "mute"
	// ActionPlayPause alternates MIDI realtime Start and Stop messages.
	ActionPlayPause BinaryAction = "play_pause"
	// ActionStop silences every sounding note.
	ActionStop BinaryAction = "stop"
)

// Valid reports whether a is a known action.
func (a BinaryAction) Valid() bool {
	switch a {
	case ActionNote, ActionToggleNote, ActionMute, ActionPlayPause, ActionStop:
		return true
	}

	return false
}

// Mapping binds one gesture to one MIDI command.
type Mapping struct {
	Gesture GestureKind `json:"gesture" yaml:"gesture"`
	Active  bool        `json:"active"  yaml:"active"`
	// Channel is zero based (0..15).
	Channel uint8 `json:"channel" yaml:"channel"`

	// Param and Controller apply to continuous gestures.
	Param      MIDIParam `json:"param,omitempty"      yaml:"param,omitempty"`
	Controller uint8     `json:"controller,omitempty" yaml:"controller,omitempty"`
	// Smoothing quantizes continuous values to multiples of this many percent.
	Smoothing float64 `json:"smoothing,omitempty" yaml:"smoothing,omitempty"`

	// Action, Note and Velocity apply to binary gestures.
	Action   BinaryAction `json:"action,omitempty"   yaml:"action,omitempty"`
	Note     uint8        `json:"note,omitempty"     yaml:"note,omitempty"`
	Velocity uint8        `json:"velocity,omitempty" yaml:"velocity,omitempty"`
}

// Validate checks that the mapping can drive the MIDI output.
func (m Mapping) Validate() error {
	if !m.Gesture.Valid() {
		return fmt.Errorf("unknown gesture %q", m.Gesture)
	}
	if m.Channel > 15 {
		return fmt.Errorf("channel %d out of range 0-15", m.Channel)
	}

	if m.Gesture.Continuous() {
		if _, ok := m.Param.Controller(m.Controller); !ok {
			return fmt.Errorf("gesture %s needs a param, got %q", m.Gesture, m.Param)
		}
		if m.Smoothing < 0 || m.Smoothing > 100 || math.IsNaN(m.Smoothing) {
			return fmt.Errorf("smoothing %v out of range 0-100", m.Smoothing)
		}

		return nil
	}

	if !m.Action.Valid() {
		return fmt.Errorf("gesture %s needs an action, got %q", m.Gesture, m.Action)
	}
	if m.Note > 127 || m.Velocity > 127 {
		return fmt.Errorf("note %d or velocity %d out of range 0-127", m.Note, m.Velocity)
	}

	return nil
}
