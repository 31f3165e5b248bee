package midiout

import (
	"bytes"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/serrors"
	"math"

	"gitlab.com/gomidi/midi/v2/smf"
)

// RenderOptions control Standard MIDI File rendering.
type RenderOptions struct {
	// BPM is the tempo written to the file and used to convert offsets to ticks.
	BPM float64
	// TicksPerQuarter is the file resolution.
	TicksPerQuarter uint16
}

// ticks converts an offset to absolute ticks at the given tempo.
func (o RenderOptions) ticks(offsetSeconds float64) uint32 {
	return uint32(math.Round(offsetSeconds * o.BPM / 60 * float64(o.TicksPerQuarter)))
}

// RenderSMF renders recorded events as a single track Standard MIDI File.
// Realtime messages cannot be stored in a file and are skipped; events are
// expected in recording order.
func RenderSMF(events []domain.TakeEvent, opts RenderOptions) ([]byte, error) {
	if opts.BPM <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "bpm must be positive, got %v", opts.BPM)
	}
	if opts.TicksPerQuarter == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "ticks per quarter must be positive")
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var last uint32
	for _, ev := range events {
		if len(ev.Message) == 0 || ev.Message[0] >= 0xF8 {
			continue
		}

		abs := opts.ticks(ev.Offset.Seconds())
		if abs < last {
			abs = last
		}
		tr.Add(abs-last, ev.Message)
		last = abs
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)
	s.Add(tr)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not write smf: %w", err)
	}

	return buf.Bytes(), nil
}
