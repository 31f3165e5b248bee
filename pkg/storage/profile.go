package storage

import (
	"context"
	"handi/pkg/domain"
)

// ProfileUpdates describes the fields replaced by UpdateProfile. Nil fields
// are left unchanged.
type ProfileUpdates struct {
	Name        *string
	Description *string
	Mappings    *[]domain.Mapping
}

// ProfilePage groups a page of profiles with the cursor of the next page.
type ProfilePage struct {
	Profiles []domain.Profile
	// NextCursor is nil when there is no next page.
	NextCursor *Cursor
}

// ProfileStorage defines persistence of mapping profiles. Soft-deleted
// profiles are invisible to every read.
type ProfileStorage interface {
	// StoreProfile inserts a profile and returns it with generated fields.
	// A live profile with the same name yields ErrDuplicate.
	StoreProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	// UpdateProfile applies updates and returns the updated row, or nil when
	// the profile does not exist.
	UpdateProfile(ctx context.Context, id domain.ProfileID, updates ProfileUpdates) (*domain.Profile, error)
	// ProfileByID returns the profile or nil when it does not exist.
	ProfileByID(ctx context.Context, id domain.ProfileID) (*domain.Profile, error)
	// ProfileByName returns the profile or nil when it does not exist.
	ProfileByName(ctx context.Context, name string) (*domain.Profile, error)
	// Profiles returns profiles after cursor (zero for the first page),
	// newest first.
	Profiles(ctx context.Context, cursor Cursor, limit uint) (ProfilePage, error)
	// DeleteProfile soft-deletes the profile and returns it, or nil when it
	// does not exist.
	DeleteProfile(ctx context.Context, id domain.ProfileID) (*domain.Profile, error)

	// ActiveProfileID returns the profile applied to the engine, if any.
	ActiveProfileID(ctx context.Context) (*domain.ProfileID, error)
	// SetActiveProfileID records the applied profile; nil clears it.
	SetActiveProfileID(ctx context.Context, id *domain.ProfileID) error
}
