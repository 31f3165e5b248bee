package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileID uniquely identifies a mapping profile.
type ProfileID uuid.UUID

// String returns the canonical UUID representation.
func (id ProfileID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id ProfileID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID.
func (id *ProfileID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Profile is a named, user-defined set of gesture mappings.
type Profile struct {
	ID          ProfileID `json:"id"          yaml:"-"`
	Name        string    `json:"name"        yaml:"name"`
	Description string    `json:"description" yaml:"description,omitempty"`
	Mappings    []Mapping `json:"mappings"    yaml:"mappings"`

	CreatedAt time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
	// DeletedAt marks when the profile was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-" yaml:"-"`
}

// ActiveMappings returns the mappings that are switched on.
func (p Profile) ActiveMappings() []Mapping {
	out := make([]Mapping, 0, len(p.Mappings))
	for _, m := range p.Mappings {
		if m.Active {
			out = append(out, m)
		}
	}

	return out
}
