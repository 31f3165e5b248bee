package engine

import (
	"handi/pkg/domain"
	"time"
)

// HandStatus describes the last hand selected. It is kept while later frames
// carry no usable hand.
type HandStatus struct {
	Camera     int               `json:"camera"`
	Handedness domain.Handedness `json:"handedness"`
	Score      float64           `json:"score"`
	SeenAt     time.Time         `json:"seenAt"`
}

// Status is a snapshot of the engine.
type Status struct {
	FPS             float64         `json:"fps"`
	FramesProcessed uint64          `json:"framesProcessed"`
	FramesDropped   uint64          `json:"framesDropped"`
	Queued          int             `json:"queued"`
	LastFrameAt     *time.Time      `json:"lastFrameAt,omitempty"`
	Hand            *HandStatus     `json:"hand,omitempty"`
	Tracker         TrackerSettings `json:"tracker"`

	Port         string `json:"port"`
	Running      bool   `json:"running"`
	PlayingNotes int    `json:"playingNotes"`

	Feedback []Feedback `json:"feedback"`
}

// Status returns the current snapshot.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{
		FPS:             e.fps,
		FramesProcessed: e.processed.Load(),
		FramesDropped:   e.dropped.Load(),
		Queued:          e.queue.len(),
		Tracker:         e.tracker,
		Port:            e.tx.PortName(),
		Running:         e.tx.Running(),
		PlayingNotes:    e.tx.PlayingCount(),
		Feedback:        make([]Feedback, 0, len(e.bindings)),
	}
	if !e.lastFrame.IsZero() {
		t := e.lastFrame
		st.LastFrameAt = &t
	}
	if e.lastHand != nil {
		h := *e.lastHand
		st.Hand = &h
	}
	for _, b := range e.bindings {
		st.Feedback = append(st.Feedback, b.feedback())
	}

	return st
}
