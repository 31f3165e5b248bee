package gesture

import (
	"handi/pkg/domain"
)

// Pixel ranges mapped to the [0, 1] output of continuous gestures.
const (
	PinchMin = 20.0
	PinchMax = 220.0

	// Bounding box areas are compared in hundreds of square pixels.
	BoxAreaMin = 250.0
	BoxAreaMax = 1000.0
)

// ValueFunc derives a continuous value from pixel landmarks. ok is false when
// the pose does not produce a value, in which case the target is left as is.
type ValueFunc func(points []Point) (value float64, ok bool)

// DetectFunc reports whether a binary pose is present.
type DetectFunc func(points []Point) bool

// Pinch maps the thumb to index fingertip distance to [0, 1]. Distances
// outside [PinchMin, PinchMax] produce no value so that a hand entering or
// leaving the frame does not snap the target to an extreme.
func Pinch(points []Point) (float64, bool) {
	if len(points) < domain.LandmarkCount {
		return 0, false
	}

	dist, _ := Distance(points, domain.ThumbTip, domain.IndexTip)
	if dist < PinchMin || dist > PinchMax {
		return 0, false
	}

	return Interp(dist, PinchMin, PinchMax, 0, 1), true
}

// BoundingBoxSize maps the hand's bounding box area to [0, 1]. Hands too far
// from or too close to the camera produce no value.
func BoundingBoxSize(points []Point) (float64, bool) {
	if len(points) < domain.LandmarkCount {
		return 0, false
	}

	area := float64(BoundingBox(points).Area()) / 100
	if area <= BoxAreaMin || area >= BoxAreaMax {
		return 0, false
	}

	return Interp(area, BoxAreaMin, BoxAreaMax, 0, 1), true
}

// Fist reports whether the index, middle, ring and pinky fingers are folded.
// The thumb is ignored because its test depends on handedness.
func Fist(points []Point) bool {
	if len(points) < domain.LandmarkCount {
		return false
	}

	up := FingersUp(points)

	return !up[1] && !up[2] && !up[3] && !up[4]
}

// OpenPalm reports whether all five fingers are extended.
func OpenPalm(points []Point) bool {
	if len(points) < domain.LandmarkCount {
		return false
	}

	for _, u := range FingersUp(points) {
		if !u {
			return false
		}
	}

	return true
}

// ValueFor returns the value function of a continuous gesture.
func ValueFor(kind domain.GestureKind) (ValueFunc, bool) {
	switch kind {
	case domain.GesturePinch:
		return Pinch, true
	case domain.GestureBoundingBox:
		return BoundingBoxSize, true
	}

	return nil, false
}

// DetectorFor returns the detector of a binary gesture.
func DetectorFor(kind domain.GestureKind) (DetectFunc, bool) {
	switch kind {
	case domain.GestureFist:
		return Fist, true
	case domain.GestureOpenPalm:
		return OpenPalm, true
	}

	return nil, false
}
