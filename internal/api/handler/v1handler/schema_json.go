package v1handler

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// fieldDecoders decode the value of one object key each.
type fieldDecoders map[string]func(d *jx.Decoder) error

// decodeObject decodes an object and fails on keys without a decoder and on
// missing required keys.
func decodeObject(d *jx.Decoder, name string, fields fieldDecoders, required ...string) error {
	seen := make(map[string]bool, len(fields))
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		fn, ok := fields[string(key)]
		if !ok {
			return errors.Errorf("unexpected field %q", key)
		}
		if err := fn(d); err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}
		seen[string(key)] = true

		return nil
	}); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	for _, key := range required {
		if !seen[key] {
			return errors.Errorf("decode %s: missing field %q", name, key)
		}
	}

	return nil
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(time.RFC3339Nano, s)
}

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	s, err := d.Str()
	if err != nil {
		return uuid.UUID{}, err
	}

	return uuid.Parse(s)
}

// decodeMIDIByte decodes an integer in [0, 127].
func decodeMIDIByte(d *jx.Decoder) (uint8, error) {
	v, err := d.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 127 {
		return 0, errors.Errorf("%d out of range 0-127", v)
	}

	return uint8(v), nil
}

// decodeNullable decodes null as unset and anything else with fn.
func decodeNullable(d *jx.Decoder, fn func(d *jx.Decoder) error) error {
	if d.Next() == jx.Null {
		return d.Null()
	}

	return fn(d)
}

// Encode implements json encoding for ErrorBody.
func (s *ErrorBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("error")
	e.Str(s.Message)
	e.ObjEnd()
}

// Decode decodes ErrorBody from json.
func (s *ErrorBody) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Error", fieldDecoders{
		"code": func(d *jx.Decoder) (err error) {
			s.Code, err = d.Str()

			return err
		},
		"error": func(d *jx.Decoder) (err error) {
			s.Message, err = d.Str()

			return err
		},
	}, "code", "error")
}

// Encode implements json encoding for Port.
func (s *Port) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("number")
	e.Int(s.Number)
	e.FieldStart("name")
	e.Str(s.Name)
	e.ObjEnd()
}

// Decode decodes Port from json.
func (s *Port) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Port", fieldDecoders{
		"number": func(d *jx.Decoder) (err error) {
			s.Number, err = d.Int()

			return err
		},
		"name": func(d *jx.Decoder) (err error) {
			s.Name, err = d.Str()

			return err
		},
	}, "number", "name")
}

// Encode implements json encoding for PortList.
func (s *PortList) Encode(e *jx.Encoder) {
	e.ArrStart()
	for i := range *s {
		(*s)[i].Encode(e)
	}
	e.ArrEnd()
}

// Decode decodes PortList from json.
func (s *PortList) Decode(d *jx.Decoder) error {
	*s = PortList{}

	return d.Arr(func(d *jx.Decoder) error {
		var p Port
		if err := p.Decode(d); err != nil {
			return err
		}
		*s = append(*s, p)

		return nil
	})
}

// Encode implements json encoding for TrackerSettings.
func (s *TrackerSettings) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("camera")
	e.Int(s.Camera)
	e.FieldStart("minConfidence")
	e.Float64(s.MinConfidence)
	e.FieldStart("hand")
	e.Str(s.Hand)
	e.ObjEnd()
}

// Decode decodes TrackerSettings from json.
func (s *TrackerSettings) Decode(d *jx.Decoder) error {
	return decodeObject(d, "TrackerSettings", fieldDecoders{
		"camera": func(d *jx.Decoder) (err error) {
			s.Camera, err = d.Int()

			return err
		},
		"minConfidence": func(d *jx.Decoder) (err error) {
			s.MinConfidence, err = d.Float64()

			return err
		},
		"hand": func(d *jx.Decoder) (err error) {
			s.Hand, err = d.Str()

			return err
		},
	}, "camera", "minConfidence", "hand")
}

// Decode decodes TrackerUpdate from json.
func (s *TrackerUpdate) Decode(d *jx.Decoder) error {
	return decodeObject(d, "TrackerUpdate", fieldDecoders{
		"camera": func(d *jx.Decoder) error {
			v, err := d.Int()
			s.Camera = NewOpt(v)

			return err
		},
		"minConfidence": func(d *jx.Decoder) error {
			v, err := d.Float64()
			s.MinConfidence = NewOpt(v)

			return err
		},
		"hand": func(d *jx.Decoder) error {
			v, err := d.Str()
			s.Hand = NewOpt(v)

			return err
		},
	})
}

// Encode implements json encoding for HandStatus.
func (s *HandStatus) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("camera")
	e.Int(s.Camera)
	e.FieldStart("handedness")
	e.Str(s.Handedness)
	e.FieldStart("score")
	e.Float64(s.Score)
	e.FieldStart("seenAt")
	encodeTime(e, s.SeenAt)
	e.ObjEnd()
}

// Decode decodes HandStatus from json.
func (s *HandStatus) Decode(d *jx.Decoder) error {
	return decodeObject(d, "HandStatus", fieldDecoders{
		"camera": func(d *jx.Decoder) (err error) {
			s.Camera, err = d.Int()

			return err
		},
		"handedness": func(d *jx.Decoder) (err error) {
			s.Handedness, err = d.Str()

			return err
		},
		"score": func(d *jx.Decoder) (err error) {
			s.Score, err = d.Float64()

			return err
		},
		"seenAt": func(d *jx.Decoder) (err error) {
			s.SeenAt, err = decodeTime(d)

			return err
		},
	})
}

// Encode implements json encoding for Feedback.
func (s *Feedback) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("gesture")
	e.Str(s.Gesture)
	e.FieldStart("label")
	e.Str(s.Label)
	if v, ok := s.Value.Get(); ok {
		e.FieldStart("value")
		e.Float64(v)
	}
	e.FieldStart("held")
	e.Bool(s.Held)
	e.ObjEnd()
}

// Decode decodes Feedback from json.
func (s *Feedback) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Feedback", fieldDecoders{
		"gesture": func(d *jx.Decoder) (err error) {
			s.Gesture, err = d.Str()

			return err
		},
		"label": func(d *jx.Decoder) (err error) {
			s.Label, err = d.Str()

			return err
		},
		"value": func(d *jx.Decoder) error {
			v, err := d.Float64()
			s.Value = NewOpt(v)

			return err
		},
		"held": func(d *jx.Decoder) (err error) {
			s.Held, err = d.Bool()

			return err
		},
	}, "gesture", "label", "held")
}

// Encode implements json encoding for Status.
func (s *Status) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("fps")
	e.Float64(s.FPS)
	e.FieldStart("framesProcessed")
	e.UInt64(s.FramesProcessed)
	e.FieldStart("framesDropped")
	e.UInt64(s.FramesDropped)
	e.FieldStart("queued")
	e.Int(s.Queued)
	if v, ok := s.LastFrameAt.Get(); ok {
		e.FieldStart("lastFrameAt")
		encodeTime(e, v)
	}
	if s.Hand != nil {
		e.FieldStart("hand")
		s.Hand.Encode(e)
	}
	e.FieldStart("tracker")
	s.Tracker.Encode(e)
	e.FieldStart("port")
	e.Str(s.Port)
	e.FieldStart("running")
	e.Bool(s.Running)
	e.FieldStart("playingNotes")
	e.Int(s.PlayingNotes)
	e.FieldStart("feedback")
	e.ArrStart()
	for i := range s.Feedback {
		s.Feedback[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("activeProfile")
	if s.ActiveProfile != nil {
		s.ActiveProfile.Encode(e)
	} else {
		e.Null()
	}
	e.FieldStart("recording")
	if s.Recording != nil {
		s.Recording.Encode(e)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// Decode decodes Status from json.
func (s *Status) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Status", fieldDecoders{
		"fps": func(d *jx.Decoder) (err error) {
			s.FPS, err = d.Float64()

			return err
		},
		"framesProcessed": func(d *jx.Decoder) (err error) {
			s.FramesProcessed, err = d.UInt64()

			return err
		},
		"framesDropped": func(d *jx.Decoder) (err error) {
			s.FramesDropped, err = d.UInt64()

			return err
		},
		"queued": func(d *jx.Decoder) (err error) {
			s.Queued, err = d.Int()

			return err
		},
		"lastFrameAt": func(d *jx.Decoder) error {
			v, err := decodeTime(d)
			s.LastFrameAt = NewOpt(v)

			return err
		},
		"hand": func(d *jx.Decoder) error {
			s.Hand = &HandStatus{}

			return s.Hand.Decode(d)
		},
		"tracker": s.Tracker.Decode,
		"port": func(d *jx.Decoder) (err error) {
			s.Port, err = d.Str()

			return err
		},
		"running": func(d *jx.Decoder) (err error) {
			s.Running, err = d.Bool()

			return err
		},
		"playingNotes": func(d *jx.Decoder) (err error) {
			s.PlayingNotes, err = d.Int()

			return err
		},
		"feedback": func(d *jx.Decoder) error {
			s.Feedback = []Feedback{}

			return d.Arr(func(d *jx.Decoder) error {
				var f Feedback
				if err := f.Decode(d); err != nil {
					return err
				}
				s.Feedback = append(s.Feedback, f)

				return nil
			})
		},
		"activeProfile": func(d *jx.Decoder) error {
			return decodeNullable(d, func(d *jx.Decoder) error {
				s.ActiveProfile = &Profile{}

				return s.ActiveProfile.Decode(d)
			})
		},
		"recording": func(d *jx.Decoder) error {
			return decodeNullable(d, func(d *jx.Decoder) error {
				s.Recording = &Take{}

				return s.Recording.Decode(d)
			})
		},
	})
}

// Encode implements json encoding for Mapping.
func (s *Mapping) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("gesture")
	e.Str(s.Gesture)
	e.FieldStart("active")
	e.Bool(s.Active)
	e.FieldStart("channel")
	e.Int(int(s.Channel))
	if s.Param != "" {
		e.FieldStart("param")
		e.Str(s.Param)
	}
	if s.Controller != 0 {
		e.FieldStart("controller")
		e.Int(int(s.Controller))
	}
	if s.Smoothing != 0 {
		e.FieldStart("smoothing")
		e.Float64(s.Smoothing)
	}
	if s.Action != "" {
		e.FieldStart("action")
		e.Str(s.Action)
	}
	if s.Note != 0 {
		e.FieldStart("note")
		e.Int(int(s.Note))
	}
	if s.Velocity != 0 {
		e.FieldStart("velocity")
		e.Int(int(s.Velocity))
	}
	e.ObjEnd()
}

// Decode decodes Mapping from json.
func (s *Mapping) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Mapping", fieldDecoders{
		"gesture": func(d *jx.Decoder) (err error) {
			s.Gesture, err = d.Str()

			return err
		},
		"active": func(d *jx.Decoder) (err error) {
			s.Active, err = d.Bool()

			return err
		},
		"channel": func(d *jx.Decoder) (err error) {
			s.Channel, err = decodeMIDIByte(d)

			return err
		},
		"param": func(d *jx.Decoder) (err error) {
			s.Param, err = d.Str()

			return err
		},
		"controller": func(d *jx.Decoder) (err error) {
			s.Controller, err = decodeMIDIByte(d)

			return err
		},
		"smoothing": func(d *jx.Decoder) (err error) {
			s.Smoothing, err = d.Float64()

			return err
		},
		"action": func(d *jx.Decoder) (err error) {
			s.Action, err = d.Str()

			return err
		},
		"note": func(d *jx.Decoder) (err error) {
			s.Note, err = decodeMIDIByte(d)

			return err
		},
		"velocity": func(d *jx.Decoder) (err error) {
			s.Velocity, err = decodeMIDIByte(d)

			return err
		},
	}, "gesture", "active", "channel")
}

func encodeMappings(e *jx.Encoder, ms []Mapping) {
	e.ArrStart()
	for i := range ms {
		ms[i].Encode(e)
	}
	e.ArrEnd()
}

func decodeMappings(d *jx.Decoder) ([]Mapping, error) {
	ms := []Mapping{}
	err := d.Arr(func(d *jx.Decoder) error {
		var m Mapping
		if err := m.Decode(d); err != nil {
			return err
		}
		ms = append(ms, m)

		return nil
	})

	return ms, err
}

// Decode decodes ProfileInput from json.
func (s *ProfileInput) Decode(d *jx.Decoder) error {
	return decodeObject(d, "ProfileInput", fieldDecoders{
		"name": func(d *jx.Decoder) (err error) {
			s.Name, err = d.Str()

			return err
		},
		"description": func(d *jx.Decoder) (err error) {
			s.Description, err = d.Str()

			return err
		},
		"mappings": func(d *jx.Decoder) (err error) {
			s.Mappings, err = decodeMappings(d)

			return err
		},
	}, "name", "mappings")
}

// Decode decodes ProfileUpdate from json.
func (s *ProfileUpdate) Decode(d *jx.Decoder) error {
	return decodeObject(d, "ProfileUpdate", fieldDecoders{
		"name": func(d *jx.Decoder) error {
			v, err := d.Str()
			s.Name = NewOpt(v)

			return err
		},
		"description": func(d *jx.Decoder) error {
			v, err := d.Str()
			s.Description = NewOpt(v)

			return err
		},
		"mappings": func(d *jx.Decoder) error {
			v, err := decodeMappings(d)
			s.Mappings = NewOpt(v)

			return err
		},
	})
}

// Encode implements json encoding for Profile.
func (s *Profile) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("name")
	e.Str(s.Name)
	if s.Description != "" {
		e.FieldStart("description")
		e.Str(s.Description)
	}
	e.FieldStart("mappings")
	encodeMappings(e, s.Mappings)
	e.FieldStart("createdAt")
	encodeTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, s.UpdatedAt)
	e.ObjEnd()
}

// Decode decodes Profile from json.
func (s *Profile) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Profile", fieldDecoders{
		"id": func(d *jx.Decoder) (err error) {
			s.ID, err = decodeUUID(d)

			return err
		},
		"name": func(d *jx.Decoder) (err error) {
			s.Name, err = d.Str()

			return err
		},
		"description": func(d *jx.Decoder) (err error) {
			s.Description, err = d.Str()

			return err
		},
		"mappings": func(d *jx.Decoder) (err error) {
			s.Mappings, err = decodeMappings(d)

			return err
		},
		"createdAt": func(d *jx.Decoder) (err error) {
			s.CreatedAt, err = decodeTime(d)

			return err
		},
		"updatedAt": func(d *jx.Decoder) (err error) {
			s.UpdatedAt, err = decodeTime(d)

			return err
		},
	}, "id", "name", "mappings", "createdAt", "updatedAt")
}

func encodeNextCursor(e *jx.Encoder, next Opt[string]) {
	e.FieldStart("nextCursor")
	if v, ok := next.Get(); ok {
		e.Str(v)
	} else {
		e.Null()
	}
}

func decodeNextCursor(d *jx.Decoder, next *Opt[string]) error {
	return decodeNullable(d, func(d *jx.Decoder) error {
		v, err := d.Str()
		*next = NewOpt(v)

		return err
	})
}

// Encode implements json encoding for ProfileList.
func (s *ProfileList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range s.Items {
		s.Items[i].Encode(e)
	}
	e.ArrEnd()
	encodeNextCursor(e, s.NextCursor)
	e.ObjEnd()
}

// Decode decodes ProfileList from json.
func (s *ProfileList) Decode(d *jx.Decoder) error {
	return decodeObject(d, "ProfileList", fieldDecoders{
		"items": func(d *jx.Decoder) error {
			s.Items = []Profile{}

			return d.Arr(func(d *jx.Decoder) error {
				var p Profile
				if err := p.Decode(d); err != nil {
					return err
				}
				s.Items = append(s.Items, p)

				return nil
			})
		},
		"nextCursor": func(d *jx.Decoder) error {
			return decodeNextCursor(d, &s.NextCursor)
		},
	}, "items")
}

// Encode implements json encoding for Take.
func (s *Take) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	if v, ok := s.ProfileID.Get(); ok {
		e.FieldStart("profileId")
		e.Str(v.String())
	}
	e.FieldStart("status")
	e.Str(s.Status)
	e.FieldStart("eventCount")
	e.Int(s.EventCount)
	e.FieldStart("attempts")
	e.UInt64(uint64(s.Attempts))
	if v, ok := s.LastError.Get(); ok {
		e.FieldStart("lastError")
		e.Str(v)
	}
	e.FieldStart("startedAt")
	encodeTime(e, s.StartedAt)
	if v, ok := s.StoppedAt.Get(); ok {
		e.FieldStart("stoppedAt")
		encodeTime(e, v)
	}
	e.FieldStart("createdAt")
	encodeTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, s.UpdatedAt)
	e.ObjEnd()
}

// Decode decodes Take from json.
func (s *Take) Decode(d *jx.Decoder) error {
	return decodeObject(d, "Take", fieldDecoders{
		"id": func(d *jx.Decoder) (err error) {
			s.ID, err = decodeUUID(d)

			return err
		},
		"profileId": func(d *jx.Decoder) error {
			v, err := decodeUUID(d)
			s.ProfileID = NewOpt(v)

			return err
		},
		"status": func(d *jx.Decoder) (err error) {
			s.Status, err = d.Str()

			return err
		},
		"eventCount": func(d *jx.Decoder) (err error) {
			s.EventCount, err = d.Int()

			return err
		},
		"attempts": func(d *jx.Decoder) (err error) {
			s.Attempts, err = d.UInt()

			return err
		},
		"lastError": func(d *jx.Decoder) error {
			v, err := d.Str()
			s.LastError = NewOpt(v)

			return err
		},
		"startedAt": func(d *jx.Decoder) (err error) {
			s.StartedAt, err = decodeTime(d)

			return err
		},
		"stoppedAt": func(d *jx.Decoder) error {
			v, err := decodeTime(d)
			s.StoppedAt = NewOpt(v)

			return err
		},
		"createdAt": func(d *jx.Decoder) (err error) {
			s.CreatedAt, err = decodeTime(d)

			return err
		},
		"updatedAt": func(d *jx.Decoder) (err error) {
			s.UpdatedAt, err = decodeTime(d)

			return err
		},
	}, "id", "status", "eventCount", "attempts", "startedAt")
}

// Encode implements json encoding for TakeList.
func (s *TakeList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range s.Items {
		s.Items[i].Encode(e)
	}
	e.ArrEnd()
	encodeNextCursor(e, s.NextCursor)
	e.ObjEnd()
}

// Decode decodes TakeList from json.
func (s *TakeList) Decode(d *jx.Decoder) error {
	return decodeObject(d, "TakeList", fieldDecoders{
		"items": func(d *jx.Decoder) error {
			s.Items = []Take{}

			return d.Arr(func(d *jx.Decoder) error {
				var t Take
				if err := t.Decode(d); err != nil {
					return err
				}
				s.Items = append(s.Items, t)

				return nil
			})
		},
		"nextCursor": func(d *jx.Decoder) error {
			return decodeNextCursor(d, &s.NextCursor)
		},
	}, "items")
}
