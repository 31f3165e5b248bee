package domain

import "time"

// LandmarkCount is the number of keypoints in a complete hand produced by the
// tracker's hand model.
const LandmarkCount = 21

// Landmark indices of the hand model used by the classifier.
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexTip  = 8
	MiddleTip = 12
	RingTip   = 16
	PinkyTip  = 20
)

// TipIDs lists the fingertip landmark indices from thumb to pinky.
var TipIDs = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip} //nolint: gochecknoglobals

// Handedness is the side reported by the tracker for a detected hand.
type Handedness string

const (
	HandLeft  Handedness = "Left"
	HandRight Handedness = "Right"
)

// Landmark is a single hand keypoint in normalized image coordinates, where
// X and Y are fractions of the frame width and height.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand is one detected hand within a frame.
type Hand struct {
	// Handedness is the side as classified by the tracker.
	Handedness Handedness `json:"handedness"`
	// Score is the tracker's detection confidence in the range [0, 1].
	Score float64 `json:"score"`
	// Landmarks holds the hand keypoints. A complete hand has LandmarkCount entries.
	Landmarks []Landmark `json:"landmarks"`
}

// Complete reports whether the hand carries every landmark of the hand model.
func (h Hand) Complete() bool {
	return len(h.Landmarks) >= LandmarkCount
}

// Frame is the result of running the hand tracker on one camera image.
type Frame struct {
	// Camera is the index of the camera that captured the image.
	Camera int `json:"camera"`
	// Seq is a per-camera sequence number assigned by the tracker.
	Seq uint64 `json:"seq"`
	// Width and Height are the image dimensions in pixels, used to convert
	// normalized landmarks to pixel coordinates.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Timestamp is the capture time of the image.
	Timestamp time.Time `json:"ts"`
	// Hands contains every hand detected in the image.
	Hands []Hand `json:"hands"`
}
