package gesture_test

import (
	"handi/pkg/gesture"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContinuous(t *testing.T) {
	var got []float64
	c := &gesture.Continuous{
		Value:   gesture.Pinch,
		OnValue: func(v float64) { got = append(got, v) },
	}

	c.Update(pinchPose(120))
	c.Update(pinchPose(300))
	c.Update(nil)
	c.Update(pinchPose(220))

	require.Len(t, got, 2)
	require.InDelta(t, 0.5, got[0], 1e-9)
	require.InDelta(t, 1, got[1], 1e-9)
}

func TestBinaryEdges(t *testing.T) {
	var triggers, releases int
	b := &gesture.Binary{
		Detect:    gesture.Fist,
		OnTrigger: func() { triggers++ },
		OnRelease: func() { releases++ },
	}
	fist := pose([5]bool{})
	open := pose([5]bool{true, true, true, true, true})

	b.Update(fist)
	b.Update(fist)
	b.Update(fist)
	require.Equal(t, 1, triggers, "held pose triggers once")
	require.True(t, b.Held())

	b.Update(open)
	require.Equal(t, 1, releases)

	b.Update(fist)
	b.Update(nil)
	require.Equal(t, 2, triggers)
	require.Equal(t, 2, releases, "a lost hand releases")

	b.Update(fist)
	b.Reset()
	require.Equal(t, 3, releases, "reset releases held gestures")
	require.False(t, b.Held())

	b.Reset()
	require.Equal(t, 3, releases, "reset of idle gesture is a no-op")
}

func TestCollectionUpdatesInOrder(t *testing.T) {
	var order []string
	c := gesture.NewCollection(
		&gesture.Continuous{Value: gesture.Pinch, OnValue: func(float64) { order = append(order, "pinch") }},
		&gesture.Binary{Detect: func([]gesture.Point) bool { return true }, OnTrigger: func() { order = append(order, "always") }},
	)
	require.Equal(t, 2, c.Len())

	c.Update(pinchPose(100))
	require.Equal(t, []string{"pinch", "always"}, order)

	c.Reset()
	require.NotPanics(t, func() { gesture.NewCollection().Update(nil) })
}
