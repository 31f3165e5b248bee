// Package ingest receives hand landmark frames from the external tracker and
// hands them to the engine. Frames are JSON documents; every transport
// carries exactly one frame per datagram, message or line.
package ingest

import (
	"bytes"
	"fmt"
	"handi/pkg/domain"
	"math"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrInvalidFrame is returned for documents that are not a frame.
var ErrInvalidFrame = errors.New("invalid frame")

// DecodeFrame parses a frame document:
//
//	{"camera":0,"seq":1,"width":640,"height":480,"ts":"2024-05-01T10:00:00.123Z",
//	 "hands":[{"handedness":"Right","score":0.98,"landmarks":[[0.5,0.5,0.0],...]}]}
//
// Landmarks may also be objects with x, y and z keys. ts may be an RFC 3339
// string or Unix seconds. Unknown keys are ignored.
func DecodeFrame(data []byte) (domain.Frame, error) {
	var f domain.Frame

	d := jx.DecodeBytes(bytes.TrimSpace(data))
	if d.Next() != jx.Object {
		return f, errors.Wrap(ErrInvalidFrame, "expected object")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "camera":
			f.Camera, err = d.Int()
		case "seq":
			f.Seq, err = d.UInt64()
		case "width":
			f.Width, err = d.Int()
		case "height":
			f.Height, err = d.Int()
		case "ts":
			f.Timestamp, err = decodeTime(d)
		case "hands":
			f.Hands, err = decodeHands(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %s", key)
		}

		return nil
	}); err != nil {
		return domain.Frame{}, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}

	if f.Width <= 0 || f.Height <= 0 {
		return domain.Frame{}, errors.Wrapf(ErrInvalidFrame, "size %dx%d", f.Width, f.Height)
	}

	return f, nil
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return time.Time{}, err
		}

		return time.Parse(time.RFC3339Nano, s)
	case jx.Number:
		sec, err := d.Float64()
		if err != nil {
			return time.Time{}, err
		}

		whole, frac := math.Modf(sec)

		return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC(), nil
	case jx.Null:
		return time.Time{}, d.Null()
	default:
		return time.Time{}, errors.New("expected string or number")
	}
}

func decodeHands(d *jx.Decoder) ([]domain.Hand, error) {
	var hands []domain.Hand
	err := d.Arr(func(d *jx.Decoder) error {
		var h domain.Hand
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			switch string(key) {
			case "handedness":
				s, err := d.Str()
				h.Handedness = domain.Handedness(s)

				return err
			case "score":
				v, err := d.Float64()
				h.Score = v

				return err
			case "landmarks":
				lms, err := decodeLandmarks(d)
				h.Landmarks = lms

				return err
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		hands = append(hands, h)

		return nil
	})

	return hands, err
}

func decodeLandmarks(d *jx.Decoder) ([]domain.Landmark, error) {
	lms := make([]domain.Landmark, 0, domain.LandmarkCount)
	err := d.Arr(func(d *jx.Decoder) error {
		var (
			lm  domain.Landmark
			err error
		)
		switch d.Next() {
		case jx.Array:
			lm, err = decodeLandmarkArray(d)
		case jx.Object:
			err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				var err error
				switch string(key) {
				case "x":
					lm.X, err = d.Float64()
				case "y":
					lm.Y, err = d.Float64()
				case "z":
					lm.Z, err = d.Float64()
				default:
					err = d.Skip()
				}

				return err
			})
		default:
			err = errors.New("landmark must be an array or an object")
		}
		if err != nil {
			return err
		}
		lms = append(lms, lm)

		return nil
	})

	return lms, err
}

func decodeLandmarkArray(d *jx.Decoder) (domain.Landmark, error) {
	var (
		lm     domain.Landmark
		coords = [3]*float64{&lm.X, &lm.Y, &lm.Z}
		i      int
	)
	err := d.Arr(func(d *jx.Decoder) error {
		if i >= len(coords) {
			return errors.New("landmark has more than 3 coordinates")
		}
		v, err := d.Float64()
		*coords[i] = v
		i++

		return err
	})
	if err == nil && i < 2 {
		err = errors.New("landmark needs at least 2 coordinates")
	}

	return lm, err
}

// EncodeFrame renders f in the compact array landmark form accepted by
// DecodeFrame.
func EncodeFrame(f domain.Frame) []byte {
	var e jx.Encoder

	e.ObjStart()
	e.FieldStart("camera")
	e.Int(f.Camera)
	e.FieldStart("seq")
	e.UInt64(f.Seq)
	e.FieldStart("width")
	e.Int(f.Width)
	e.FieldStart("height")
	e.Int(f.Height)
	if !f.Timestamp.IsZero() {
		e.FieldStart("ts")
		e.Str(f.Timestamp.UTC().Format(time.RFC3339Nano))
	}
	e.FieldStart("hands")
	e.ArrStart()
	for _, h := range f.Hands {
		e.ObjStart()
		e.FieldStart("handedness")
		e.Str(string(h.Handedness))
		e.FieldStart("score")
		e.Float64(h.Score)
		e.FieldStart("landmarks")
		e.ArrStart()
		for _, lm := range h.Landmarks {
			e.ArrStart()
			e.Float64(lm.X)
			e.Float64(lm.Y)
			e.Float64(lm.Z)
			e.ArrEnd()
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}
