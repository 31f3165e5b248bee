package storage

import (
	"context"
	"handi/pkg/domain"
	"time"
)

// TakeUpdates describes a set of optional fields applied to a take. Only
// non-nil fields are updated.
type TakeUpdates struct {
	// Status is the new status; empty leaves it unchanged.
	Status domain.TakeStatus
	// Events replaces the recorded events and the event count.
	Events *[]domain.TakeEvent
	// SMF replaces the rendered file.
	SMF *[]byte
	// StoppedAt sets the stop time.
	StoppedAt *time.Time
	// LastError sets the last error text; an empty string clears it.
	LastError *string
	// IncrementAttempts adds one to the render attempt counter.
	IncrementAttempts bool
}

// TakePage groups a page of takes with the cursor of the next page. Takes in
// a page carry neither events nor the rendered file.
type TakePage struct {
	Takes      []domain.Take
	NextCursor *Cursor
}

// TakeStorage defines persistence of recorded takes.
type TakeStorage interface {
	// StoreTake inserts a take and returns it with generated fields.
	StoreTake(ctx context.Context, take domain.Take) (*domain.Take, error)
	// UpdateTake applies updates and returns the updated row, or nil when the
	// take does not exist.
	UpdateTake(ctx context.Context, id domain.TakeID, updates TakeUpdates) (*domain.Take, error)
	// TakeByID returns the take including events and rendered file, or nil.
	TakeByID(ctx context.Context, id domain.TakeID) (*domain.Take, error)
	// Takes returns takes after cursor, newest first.
	Takes(ctx context.Context, cursor Cursor, limit uint) (TakePage, error)
	// DeleteTake soft-deletes the take and returns it, or nil.
	DeleteTake(ctx context.Context, id domain.TakeID) (*domain.Take, error)
	// FailRecordingTakes marks takes still RECORDING as FAILED with lastError
	// and returns how many were changed. A take can only be left recording by
	// a process that exited without stopping it.
	FailRecordingTakes(ctx context.Context, lastError string) (int64, error)
}
