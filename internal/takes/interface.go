package takes

import (
	"context"
	"handi/pkg/domain"
	"handi/pkg/midiout"
)

//go:generate mockgen -package mocktakes -source=interface.go -destination=mock/mocktakes.go *
type Takes interface {
	// Start begins recording the MIDI output. Only one take records at a time.
	Start(ctx context.Context) (*domain.Take, error)
	// Stop ends the recording and queues the take for rendering.
	Stop(ctx context.Context) (*domain.Take, error)
	// Recording returns the take being recorded, or nil.
	Recording() *domain.Take

	Get(ctx context.Context, id domain.TakeID) (*domain.Take, error)
	List(ctx context.Context, cursor string, limit uint) ([]domain.Take, string, error)
	Delete(ctx context.Context, id domain.TakeID) error
	// SMF returns the rendered Standard MIDI File of a take.
	SMF(ctx context.Context, id domain.TakeID) ([]byte, error)

	// Render writes the Standard MIDI File of a stopped take. final marks the
	// last attempt, after which a failing take is marked FAILED.
	Render(ctx context.Context, id domain.TakeID, final bool) error
	// Recover fails takes left recording by a previous run.
	Recover(ctx context.Context) error
}

// Tap is the MIDI output a take records from.
type Tap interface {
	SetRecorder(r midiout.Recorder)
}
