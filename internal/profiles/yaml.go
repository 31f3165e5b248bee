package profiles

import (
	"context"
	"errors"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/serrors"
	"handi/pkg/storage"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Import creates every profile document read from r in one transaction. A
// live profile with the same name is overwritten.
func (p *profiles) Import(ctx context.Context, r io.Reader) ([]domain.Profile, error) {
	var docs []domain.Profile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for {
		var doc domain.Profile
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid profile document %d", len(docs)+1)
		}
		if err := p.normalize(&doc); err != nil {
			return nil, fmt.Errorf("profile %q: %w", doc.Name, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no profiles to import")
	}

	imported := make([]domain.Profile, 0, len(docs))
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, doc := range docs {
			existing, err := tx.ProfileByName(ctx, doc.Name)
			if err != nil {
				return fmt.Errorf("could not get profile %q: %w", doc.Name, err)
			}

			var saved *domain.Profile
			if existing != nil {
				saved, err = tx.UpdateProfile(ctx, existing.ID, storage.ProfileUpdates{
					Description: &doc.Description,
					Mappings:    &doc.Mappings,
				})
			} else {
				saved, err = tx.StoreProfile(ctx, doc)
			}
			if err != nil {
				return storageErr(err, fmt.Sprintf("could not import profile %q", doc.Name))
			}
			imported = append(imported, *saved)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if err := p.reapplyImported(ctx, imported); err != nil {
		return nil, err
	}

	return imported, nil
}

// reapplyImported applies the imported mappings when the import replaced the
// active profile.
func (p *profiles) reapplyImported(ctx context.Context, imported []domain.Profile) error {
	active, err := p.storage.ActiveProfileID(ctx)
	if err != nil {
		return fmt.Errorf("could not get active profile: %w", err)
	}
	if active == nil {
		return nil
	}

	for _, profile := range imported {
		if profile.ID != *active {
			continue
		}
		if err := p.applier.Apply(ctx, profile.Mappings); err != nil {
			return fmt.Errorf("could not re-apply profile: %w", err)
		}
		logger.Info(ctx, "active profile re-applied after import", zap.Stringer("profile", profile.ID))
	}

	return nil
}

// Export writes profiles as a stream of YAML documents.
func (p *profiles) Export(ctx context.Context, w io.Writer, names ...string) error {
	var list []domain.Profile
	if len(names) == 0 {
		var cursor storage.Cursor
		for {
			page, err := p.storage.Profiles(ctx, cursor, exportPageSize)
			if err != nil {
				return fmt.Errorf("could not list profiles: %w", err)
			}
			list = append(list, page.Profiles...)
			if page.NextCursor == nil {
				break
			}
			cursor = *page.NextCursor
		}
	}
	for _, name := range names {
		profile, err := p.storage.ProfileByName(ctx, name)
		if err != nil {
			return fmt.Errorf("could not get profile %q: %w", name, err)
		}
		if profile == nil {
			return serrors.With(serrors.ErrNotFound, "profile %q not found", name)
		}
		list = append(list, *profile)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, profile := range list {
		if err := enc.Encode(profile); err != nil {
			return fmt.Errorf("could not encode profile %q: %w", profile.Name, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not flush profiles: %w", err)
	}

	return nil
}
