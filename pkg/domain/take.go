package domain

import (
	"time"

	"github.com/google/uuid"
)

// TakeID uniquely identifies a recorded take.
type TakeID uuid.UUID

// String returns the canonical UUID representation.
func (id TakeID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id TakeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID.
func (id *TakeID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// TakeStatus represents the lifecycle state of a take.
type TakeStatus string

const (
	// TakeStatusRecording indicates MIDI output is currently being captured.
	TakeStatusRecording TakeStatus = "RECORDING"
	// TakeStatusPending indicates recording stopped and rendering is queued.
	TakeStatusPending TakeStatus = "PENDING"
	// TakeStatusRendered indicates the Standard MIDI File is available.
	TakeStatusRendered TakeStatus = "RENDERED"
	// TakeStatusFailed indicates rendering gave up; see LastError.
	TakeStatusFailed TakeStatus = "FAILED"
)

// TakeEvent is one MIDI message sent while a take was recording.
type TakeEvent struct {
	// Offset is the time since the take started.
	Offset time.Duration `json:"offset"`
	// Message holds the raw MIDI bytes.
	Message []byte `json:"message"`
}

// Take is a recording of the MIDI output of a session.
type Take struct {
	// ID is the unique identifier of the take.
	ID TakeID `json:"id"`
	// ProfileID is the profile that was active when recording started, if any.
	ProfileID *ProfileID `json:"profileId,omitempty"`

	Status TakeStatus  `json:"status"`
	Events []TakeEvent `json:"-"`
	// EventCount is the number of recorded events. It is filled even when
	// Events is not loaded.
	EventCount int `json:"eventCount"`
	// SMF holds the rendered Standard MIDI File once Status is TakeStatusRendered.
	SMF []byte `json:"-"`

	// Attempts is the number of render attempts.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent render error, if any.
	LastError string `json:"lastError,omitempty"`

	StartedAt time.Time `json:"startedAt"`
	StoppedAt time.Time `json:"stoppedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Duration returns the recorded length of the take.
func (t Take) Duration() time.Duration {
	if t.StoppedAt.IsZero() {
		return 0
	}

	return t.StoppedAt.Sub(t.StartedAt)
}
