package ingest

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"handi/pkg/metrics"
	"io"
	"time"
)

// ReplayOptions configure Replay.
type ReplayOptions struct {
	// Realtime paces frames by the difference of their timestamps.
	Realtime bool
	// Speed scales realtime pacing; values <= 0 mean 1.
	Speed float64
	// SkipInvalid continues after lines that do not decode.
	SkipInvalid bool
}

// Replay submits frames read from a JSON lines recording, as written by
// FrameWriter. It returns the number of frames submitted.
func Replay(ctx context.Context, r io.Reader, sink Sink, m *metrics.Metrics, opts ReplayOptions) (int, error) {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	recv := newReceiver("replay", sink, m)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessage)

	var (
		submitted int
		line      int
		prev      time.Time
	)
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		frame, err := DecodeFrame(data)
		if err != nil {
			if opts.SkipInvalid {
				recv.reject(ctx, err)

				continue
			}

			return submitted, fmt.Errorf("line %d: %w", line, err)
		}

		if opts.Realtime && !prev.IsZero() && !frame.Timestamp.IsZero() {
			if wait := time.Duration(float64(frame.Timestamp.Sub(prev)) / opts.Speed); wait > 0 {
				if err := sleep(ctx, wait); err != nil {
					return submitted, err
				}
			}
		}
		if !frame.Timestamp.IsZero() {
			prev = frame.Timestamp
		}
		if err := ctx.Err(); err != nil {
			return submitted, err //nolint: wrapcheck
		}

		recv.submit(ctx, frame)
		submitted++
	}
	if err := scanner.Err(); err != nil {
		return submitted, fmt.Errorf("could not read recording: %w", err)
	}

	return submitted, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	case <-t.C:
		return nil
	}
}
