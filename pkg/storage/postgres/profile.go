package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "profiles"
	settingsTable = "settings"

	activeProfileKey = "active_profile_id"
)

func (p *PgSQL) StoreProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var row PgProfile
	if err := row.FromDomain(profile); err != nil {
		return nil, err
	}

	var result PgProfile
	if _, err := p.Builder.Insert(profilesTable).
		Rows(row).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("profile %q: %w", profile.Name, storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store profile into pg: %w", err)
	}

	return result.ToDomain()
}

// UpdateProfile sets only the non-nil fields of updates and bumps updated_at.
func (p *PgSQL) UpdateProfile(ctx context.Context,
	id domain.ProfileID,
	updates storage.ProfileUpdates) (*domain.Profile, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Mappings != nil {
		mappings := *updates.Mappings
		if mappings == nil {
			mappings = []domain.Mapping{}
		}
		raw, err := json.Marshal(mappings)
		if err != nil {
			return nil, fmt.Errorf("could not marshal mappings: %w", err)
		}
		rec["mappings"] = raw
	}

	var row PgProfile
	found, err := p.Builder.Update(profilesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("profile name: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not update profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ProfileByID(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	return p.profileWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ProfileByName(ctx context.Context, name string) (*domain.Profile, error) {
	return p.profileWhere(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) profileWhere(ctx context.Context, cond goqu.Expression) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(cond, goqu.I("deleted_at").IsNull()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Profiles pages through live profiles ordered by created_at DESC, id DESC.
func (p *PgSQL) Profiles(ctx context.Context, cursor storage.Cursor, limit uint) (storage.ProfilePage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, afterCursor(cursor))
	}

	// one extra row tells whether a next page exists
	var rows []PgProfile
	if err := p.Builder.From(profilesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ProfilePage{}, fmt.Errorf("could not fetch profiles from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}

	profiles, err := pgProfilesToDomain(rows)
	if err != nil {
		return storage.ProfilePage{}, err
	}

	return storage.ProfilePage{
		Profiles:   profiles,
		NextCursor: nextCursor,
	}, nil
}

// DeleteProfile soft-deletes the profile. If it was the active profile the
// active setting is cleared as well.
func (p *PgSQL) DeleteProfile(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.Update(profilesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	if _, err := p.Builder.Delete(settingsTable).
		Where(
			goqu.I("key").Eq(activeProfileKey),
			goqu.I("value").Eq(uuid.UUID(id).String()),
		).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not clear active profile in pg: %w", err)
	}

	return row.ToDomain()
}

func (p *PgSQL) ActiveProfileID(ctx context.Context) (*domain.ProfileID, error) {
	var value string
	found, err := p.Builder.From(settingsTable).
		Select("value").
		Where(goqu.I("key").Eq(activeProfileKey)).
		Executor().ScanValContext(ctx, &value)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active profile from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("could not parse active profile id %q: %w", value, err)
	}
	profileID := domain.ProfileID(id)

	return &profileID, nil
}

func (p *PgSQL) SetActiveProfileID(ctx context.Context, id *domain.ProfileID) error {
	if id == nil {
		if _, err := p.Builder.Delete(settingsTable).
			Where(goqu.I("key").Eq(activeProfileKey)).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not clear active profile in pg: %w", err)
		}

		return nil
	}

	value := uuid.UUID(*id).String()
	if _, err := p.Builder.Insert(settingsTable).
		Rows(goqu.Record{"key": activeProfileKey, "value": value}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      value,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not set active profile in pg: %w", err)
	}

	return nil
}
