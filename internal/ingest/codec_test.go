package ingest_test

import (
	"handi/internal/ingest"
	"handi/pkg/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleFrame() domain.Frame {
	lms := make([]domain.Landmark, domain.LandmarkCount)
	for i := range lms {
		lms[i] = domain.Landmark{X: float64(i) / 32, Y: 0.5, Z: -0.25}
	}

	return domain.Frame{
		Camera:    1,
		Seq:       42,
		Width:     640,
		Height:    480,
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC),
		Hands: []domain.Hand{{
			Handedness: domain.HandRight,
			Score:      0.875,
			Landmarks:  lms,
		}},
	}
}

func TestEncodeDecodeFrame(t *testing.T) {
	want := sampleFrame()

	got, err := ingest.DecodeFrame(ingest.EncodeFrame(want))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFrame_NoHands(t *testing.T) {
	got, err := ingest.DecodeFrame([]byte(`{"camera":0,"seq":1,"width":640,"height":480,"hands":[]}`))
	require.NoError(t, err)
	require.Equal(t, domain.Frame{Seq: 1, Width: 640, Height: 480}, got)
}

func TestDecodeFrame_Forms(t *testing.T) {
	data := []byte(`{
		"camera": 0, "width": 640, "height": 480, "ts": 1714557600.5,
		"tracker": {"model": "mediapipe"},
		"hands": [{"handedness": "Left", "score": 0.9, "landmarks": [{"x": 0.1, "y": 0.2}, [0.3, 0.4]]}]
	}`)

	got, err := ingest.DecodeFrame(data)
	require.NoError(t, err)
	require.Equal(t, time.Unix(1714557600, 500000000).UTC(), got.Timestamp)
	require.Equal(t, []domain.Landmark{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}}, got.Hands[0].Landmarks)
	require.Equal(t, domain.HandLeft, got.Hands[0].Handedness)
}

func TestDecodeFrame_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":            ``,
		"array":            `[]`,
		"missing size":     `{"hands": []}`,
		"bad ts":           `{"width": 1, "height": 1, "ts": "yesterday"}`,
		"bad landmark":     `{"width": 1, "height": 1, "hands": [{"landmarks": ["x"]}]}`,
		"short landmark":   `{"width": 1, "height": 1, "hands": [{"landmarks": [[0.1]]}]}`,
		"long landmark":    `{"width": 1, "height": 1, "hands": [{"landmarks": [[0.1, 0.2, 0.3, 0.4]]}]}`,
		"truncated":        `{"width": 1, "height": 1, "hands": [`,
		"string in number": `{"width": "640", "height": 480}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.DecodeFrame([]byte(data))
			require.ErrorIs(t, err, ingest.ErrInvalidFrame)
		})
	}
}
