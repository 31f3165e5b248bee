package profiles

import (
	"context"
	"handi/pkg/domain"
	"io"
)

// Profiles manages mapping profiles and which one drives the engine.
//
//go:generate mockgen -package mockprofiles -source=interface.go -destination=mock/mockprofiles.go *
type Profiles interface {
	Create(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, id domain.ProfileID, update Update) (*domain.Profile, error)
	Get(ctx context.Context, id domain.ProfileID) (*domain.Profile, error)
	List(ctx context.Context, cursor string, limit uint) ([]domain.Profile, string, error)
	Delete(ctx context.Context, id domain.ProfileID) error

	// Apply compiles the profile into the engine and remembers it as active.
	Apply(ctx context.Context, id domain.ProfileID) (*domain.Profile, error)
	// Active returns the applied profile, or a not-found error.
	Active(ctx context.Context) (*domain.Profile, error)
	// Restore applies the remembered active profile, if any.
	Restore(ctx context.Context) (*domain.Profile, error)

	// Import reads YAML profile documents and creates them, replacing
	// profiles of the same name.
	Import(ctx context.Context, r io.Reader) ([]domain.Profile, error)
	// Export writes the named profiles as YAML documents; no names exports all.
	Export(ctx context.Context, w io.Writer, names ...string) error
}

// Applier receives the mappings of the active profile.
type Applier interface {
	Apply(ctx context.Context, mappings []domain.Mapping) error
}
