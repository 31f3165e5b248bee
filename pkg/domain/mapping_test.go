package domain_test

import (
	"handi/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMIDIParam_Controller(t *testing.T) {
	tests := []struct {
		param    domain.MIDIParam
		explicit uint8
		want     uint8
		ok       bool
	}{
		{domain.ParamVolume, 0, 7, true},
		{domain.ParamOctave, 0, 15, true},
		{domain.ParamModulation, 99, 1, true},
		{domain.ParamCC, 74, 74, true},
		{domain.ParamCC, 128, 128, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.param.Controller(tt.explicit)
		require.Equal(t, tt.ok, ok, tt.param)
		require.Equal(t, tt.want, got, tt.param)
	}
}

func TestMapping_Validate(t *testing.T) {
	valid := []domain.Mapping{
		{Gesture: domain.GesturePinch, Param: domain.ParamVolume},
		{Gesture: domain.GestureBoundingBox, Param: domain.ParamCC, Controller: 74, Smoothing: 2, Channel: 15},
		{Gesture: domain.GestureFist, Action: domain.ActionStop},
		{Gesture: domain.GestureOpenPalm, Action: domain.ActionNote, Note: 127, Velocity: 127},
	}
	for _, m := range valid {
		require.NoError(t, m.Validate(), m)
	}

	invalid := []domain.Mapping{
		{Gesture: "wave"},
		{Gesture: domain.GesturePinch},
		{Gesture: domain.GesturePinch, Param: domain.ParamVolume, Channel: 16},
		{Gesture: domain.GesturePinch, Param: domain.ParamVolume, Smoothing: -1},
		{Gesture: domain.GestureFist, Action: "explode"},
		{Gesture: domain.GestureFist, Action: domain.ActionNote, Velocity: 200},
	}
	for _, m := range invalid {
		require.Error(t, m.Validate(), m)
	}
}

func TestProfile_ActiveMappings(t *testing.T) {
	p := domain.Profile{Mappings: []domain.Mapping{
		{Gesture: domain.GesturePinch, Active: true},
		{Gesture: domain.GestureFist},
	}}

	require.Equal(t, []domain.Mapping{{Gesture: domain.GesturePinch, Active: true}}, p.ActiveMappings())
}
