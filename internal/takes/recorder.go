package takes

import (
	"context"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// recorder collects the messages sent while a take records. Record is called
// with the transmitter lock held and must not block.
type recorder struct {
	ctx   context.Context //nolint: containedctx
	start time.Time
	max   int

	mu        sync.Mutex
	events    []domain.TakeEvent
	truncated bool
}

func newRecorder(ctx context.Context, start time.Time, maxEvents int) *recorder {
	return &recorder{
		ctx:   ctx,
		start: start,
		max:   maxEvents,
	}
}

func (r *recorder) Record(msg []byte) {
	offset := time.Since(r.start)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.max > 0 && len(r.events) >= r.max {
		if !r.truncated {
			r.truncated = true
			logger.Warn(r.ctx, "take reached the event limit, later messages are not recorded",
				zap.Int("maxEvents", r.max))
		}

		return
	}

	r.events = append(r.events, domain.TakeEvent{
		Offset:  offset,
		Message: append([]byte(nil), msg...),
	})
}

// take returns the recorded events; the recorder must be detached first.
func (r *recorder) take() []domain.TakeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.events
}
