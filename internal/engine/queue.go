package engine

import (
	"handi/pkg/domain"
	"sync"
)

// frameQueue is a bounded FIFO that drops its oldest frame when full, so a
// slow consumer always works on recent frames.
type frameQueue struct {
	mu     sync.Mutex
	frames []domain.Frame
	size   int
	// ready holds a token while frames are waiting.
	ready chan struct{}
}

func newFrameQueue(size int) *frameQueue {
	if size < 1 {
		size = 1
	}

	return &frameQueue{
		frames: make([]domain.Frame, 0, size),
		size:   size,
		ready:  make(chan struct{}, 1),
	}
}

// push enqueues f and reports whether an older frame was evicted.
func (q *frameQueue) push(f domain.Frame) bool {
	q.mu.Lock()
	evicted := false
	if len(q.frames) == q.size {
		copy(q.frames, q.frames[1:])
		q.frames = q.frames[:len(q.frames)-1]
		evicted = true
	}
	q.frames = append(q.frames, f)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}

	return evicted
}

func (q *frameQueue) pop() (domain.Frame, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.frames) == 0 {
		return domain.Frame{}, false
	}
	f := q.frames[0]
	copy(q.frames, q.frames[1:])
	q.frames = q.frames[:len(q.frames)-1]

	return f, true
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.frames)
}
