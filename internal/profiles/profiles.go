// Package profiles implements storage and activation of gesture mapping
// profiles.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/serrors"
	"handi/pkg/storage"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxMappings          = 64
	exportPageSize       = 100
)

// Update holds the profile fields to replace. Nil fields are kept.
type Update struct {
	Name        *string
	Description *string
	Mappings    *[]domain.Mapping
}

type profiles struct {
	storage storage.Storage
	applier Applier
	policy  *bluemonday.Policy
}

// New returns a Profiles backed by storage that applies profiles to applier.
func New(storage storage.Storage, applier Applier) Profiles {
	return &profiles{
		storage: storage,
		applier: applier,
		policy:  bluemonday.StrictPolicy(),
	}
}

// sanitize strips markup from user text; profile names end up in logs, the
// status feed and browser based UIs.
func (p *profiles) sanitize(s string) string {
	return strings.TrimSpace(p.policy.Sanitize(s))
}

func (p *profiles) normalize(profile *domain.Profile) error {
	profile.Name = p.sanitize(profile.Name)
	profile.Description = p.sanitize(profile.Description)

	if profile.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "profile name is required")
	}
	if utf8.RuneCountInString(profile.Name) > maxNameLength {
		return serrors.With(serrors.ErrBadRequest, "profile name longer than %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(profile.Description) > maxDescriptionLength {
		return serrors.With(serrors.ErrBadRequest, "description longer than %d characters", maxDescriptionLength)
	}

	return validateMappings(profile.Mappings)
}

func validateMappings(mappings []domain.Mapping) error {
	if len(mappings) > maxMappings {
		return serrors.With(serrors.ErrBadRequest, "more than %d mappings", maxMappings)
	}
	for i, m := range mappings {
		if err := m.Validate(); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "mapping %d", i)
		}
	}

	return nil
}

func storageErr(err error, msg string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return serrors.Wrap(serrors.ErrConflict, err, "profile name already used")
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func (p *profiles) Create(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	if err := p.normalize(&profile); err != nil {
		return nil, err
	}

	created, err := p.storage.StoreProfile(ctx, profile)
	if err != nil {
		return nil, storageErr(err, "could not store profile")
	}

	return created, nil
}

// Update replaces fields of a profile. When the profile is active the new
// mappings are applied to the engine right away.
func (p *profiles) Update(ctx context.Context, id domain.ProfileID, update Update) (*domain.Profile, error) {
	if update.Name != nil {
		name := p.sanitize(*update.Name)
		if name == "" || utf8.RuneCountInString(name) > maxNameLength {
			return nil, serrors.With(serrors.ErrBadRequest, "profile name must have 1 to %d characters", maxNameLength)
		}
		update.Name = &name
	}
	if update.Description != nil {
		desc := p.sanitize(*update.Description)
		if utf8.RuneCountInString(desc) > maxDescriptionLength {
			return nil, serrors.With(serrors.ErrBadRequest, "description longer than %d characters", maxDescriptionLength)
		}
		update.Description = &desc
	}
	if update.Mappings != nil {
		if err := validateMappings(*update.Mappings); err != nil {
			return nil, err
		}
	}

	updated, err := p.storage.UpdateProfile(ctx, id, storage.ProfileUpdates{
		Name:        update.Name,
		Description: update.Description,
		Mappings:    update.Mappings,
	})
	if err != nil {
		return nil, storageErr(err, "could not update profile")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	if update.Mappings != nil {
		active, err := p.storage.ActiveProfileID(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get active profile: %w", err)
		}
		if active != nil && *active == id {
			if err := p.applier.Apply(ctx, updated.Mappings); err != nil {
				return nil, fmt.Errorf("could not re-apply profile: %w", err)
			}
		}
	}

	return updated, nil
}

func (p *profiles) Get(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	profile, err := p.storage.ProfileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return profile, nil
}

// List returns a page of profiles, newest first. The cursor is the one
// returned with the previous page.
func (p *profiles) List(ctx context.Context, cursor string, limit uint) ([]domain.Profile, string, error) {
	var c storage.Cursor
	if cursor != "" {
		parsed, err := storage.ParseCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		c = parsed
	}

	page, err := p.storage.Profiles(ctx, c, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list profiles: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Profiles, next, nil
}

// Delete removes a profile. Deleting the active profile clears the engine.
func (p *profiles) Delete(ctx context.Context, id domain.ProfileID) error {
	active, err := p.storage.ActiveProfileID(ctx)
	if err != nil {
		return fmt.Errorf("could not get active profile: %w", err)
	}

	deleted, err := p.storage.DeleteProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete profile: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "profile not found")
	}

	if active != nil && *active == id {
		if err := p.applier.Apply(ctx, nil); err != nil {
			return fmt.Errorf("could not clear mappings: %w", err)
		}
		logger.Info(ctx, "active profile deleted", zap.Stringer("profile", id))
	}

	return nil
}

func (p *profiles) Apply(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	profile, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.applier.Apply(ctx, profile.Mappings); err != nil {
		return nil, fmt.Errorf("could not apply profile: %w", err)
	}
	if err := p.storage.SetActiveProfileID(ctx, &profile.ID); err != nil {
		return nil, fmt.Errorf("could not store active profile: %w", err)
	}
	logger.Info(ctx, "profile applied", zap.Stringer("profile", id), zap.String("name", profile.Name))

	return profile, nil
}

func (p *profiles) Active(ctx context.Context) (*domain.Profile, error) {
	id, err := p.storage.ActiveProfileID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get active profile: %w", err)
	}
	if id == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no active profile")
	}

	return p.Get(ctx, *id)
}

func (p *profiles) Restore(ctx context.Context) (*domain.Profile, error) {
	id, err := p.storage.ActiveProfileID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get active profile: %w", err)
	}
	if id == nil {
		return nil, nil
	}

	return p.Apply(ctx, *id)
}
