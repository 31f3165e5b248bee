// Package gesture classifies hand poses from tracker landmarks. It converts
// normalized landmarks to pixel space, derives geometric features (fingertip
// distances, bounding boxes, extended fingers) and turns them into continuous
// values or binary triggers.
package gesture

import (
	"handi/pkg/domain"
	"math"
)

// Point is a landmark in pixel coordinates.
type Point struct {
	X, Y int
}

// Box is an axis aligned bounding box in pixel coordinates.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.MaxY - b.MinY }

// Area returns the box area in square pixels.
func (b Box) Area() int { return b.Width() * b.Height() }

// PixelLandmarks converts the hand's normalized landmarks to pixel coordinates
// for a frame of the given size, truncating toward zero.
func PixelLandmarks(hand domain.Hand, width, height int) []Point {
	out := make([]Point, len(hand.Landmarks))
	for i, lm := range hand.Landmarks {
		out[i] = Point{X: int(lm.X * float64(width)), Y: int(lm.Y * float64(height))}
	}

	return out
}

// BoundingBox returns the tightest box around points. It returns the zero Box
// for an empty slice.
func BoundingBox(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}

	b := Box{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxX = max(b.MaxX, p.X)
		b.MaxY = max(b.MaxY, p.Y)
	}

	return b
}

// Distance returns the euclidean distance between landmarks a and b and the
// integer midpoint of the segment joining them.
func Distance(points []Point, a, b int) (float64, Point) {
	p1, p2 := points[a], points[b]
	mid := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}

	return math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y)), mid
}

// FingersUp reports which fingers are extended, from thumb to pinky.
//
// The thumb is extended when its tip lies left of the joint below it (image x
// grows to the right on a mirrored frame). Other fingers are extended when the
// tip lies above the second joint below it.
func FingersUp(points []Point) [5]bool {
	var up [5]bool
	if len(points) < domain.LandmarkCount {
		return up
	}

	thumb := domain.TipIDs[0]
	up[0] = points[thumb].X < points[thumb-1].X

	for i := 1; i < len(domain.TipIDs); i++ {
		tip := domain.TipIDs[i]
		up[i] = points[tip].Y < points[tip-2].Y
	}

	return up
}

// Interp linearly maps x from [x0, x1] to [y0, y1], clamping to the output
// range outside the input range.
func Interp(x, x0, x1, y0, y1 float64) float64 {
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Quantize rounds a [0, 1] value to the nearest multiple of step percent.
// A step <= 0 returns value unchanged.
func Quantize(value, stepPercent float64) float64 {
	if stepPercent <= 0 {
		return value
	}

	pct := stepPercent * math.Round(value*100/stepPercent)

	return math.Min(1, math.Max(0, pct/100))
}
