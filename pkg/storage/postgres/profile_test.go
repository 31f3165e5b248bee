package postgres_test

import (
	"context"
	"handi/pkg/domain"
	"handi/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func volumePinch() domain.Mapping {
	return domain.Mapping{
		Gesture:   domain.GesturePinch,
		Active:    true,
		Param:     domain.ParamVolume,
		Smoothing: 2,
	}
}

func TestPgSQL_StoreProfile(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProfile(ctx, domain.Profile{
		Name:        "live set",
		Description: "pinch volume",
		Mappings:    []domain.Mapping{volumePinch()},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, []domain.Mapping{volumePinch()}, stored.Mappings)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := pgSQL.StoreProfile(ctx, domain.Profile{Name: "live set"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("name reusable after delete", func(t *testing.T) {
		deleted, err := pgSQL.DeleteProfile(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		_, err = pgSQL.StoreProfile(ctx, domain.Profile{Name: "live set"})
		require.NoError(t, err)
	})
}

func TestPgSQL_UpdateProfile(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProfile(ctx, domain.Profile{Name: "a", Description: "first"})
	require.NoError(t, err)

	name := "b"
	mappings := []domain.Mapping{volumePinch()}
	updated, err := pgSQL.UpdateProfile(ctx, stored.ID, storage.ProfileUpdates{
		Name:     &name,
		Mappings: &mappings,
	})
	require.NoError(t, err)
	require.Equal(t, "b", updated.Name)
	require.Equal(t, "first", updated.Description)
	require.Len(t, updated.Mappings, 1)
	require.False(t, updated.UpdatedAt.IsZero())

	t.Run("missing", func(t *testing.T) {
		got, err := pgSQL.UpdateProfile(ctx, domain.ProfileID(uuid.New()), storage.ProfileUpdates{Name: &name})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_Profiles_Pagination(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		_, err := pgSQL.StoreProfile(ctx, domain.Profile{Name: name})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := pgSQL.Profiles(ctx, storage.Cursor{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Profiles, 2)
	require.Equal(t, "three", page.Profiles[0].Name)
	require.NotNil(t, page.NextCursor)

	page, err = pgSQL.Profiles(ctx, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Profiles, 1)
	require.Equal(t, "one", page.Profiles[0].Name)
	require.Nil(t, page.NextCursor)
}

func TestPgSQL_Profiles_SameCreatedAt(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// created_at is the transaction start time, shared by all three rows
	require.NoError(t, pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, name := range []string{"a", "b", "c"} {
			if _, err := tx.StoreProfile(ctx, domain.Profile{Name: name}); err != nil {
				return err
			}
		}

		return nil
	}))

	var (
		cursor storage.Cursor
		names  []string
	)
	for range 4 {
		page, err := pgSQL.Profiles(ctx, cursor, 1)
		require.NoError(t, err)
		for _, p := range page.Profiles {
			names = append(names, p.Name)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}

	require.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestPgSQL_ActiveProfile(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	active, err := pgSQL.ActiveProfileID(ctx)
	require.NoError(t, err)
	require.Nil(t, active)

	first, err := pgSQL.StoreProfile(ctx, domain.Profile{Name: "first"})
	require.NoError(t, err)
	second, err := pgSQL.StoreProfile(ctx, domain.Profile{Name: "second"})
	require.NoError(t, err)

	require.NoError(t, pgSQL.SetActiveProfileID(ctx, &first.ID))
	require.NoError(t, pgSQL.SetActiveProfileID(ctx, &second.ID))

	active, err = pgSQL.ActiveProfileID(ctx)
	require.NoError(t, err)
	require.Equal(t, second.ID, *active)

	t.Run("deleting the active profile clears it", func(t *testing.T) {
		_, err := pgSQL.DeleteProfile(ctx, second.ID)
		require.NoError(t, err)

		active, err := pgSQL.ActiveProfileID(ctx)
		require.NoError(t, err)
		require.Nil(t, active)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, pgSQL.SetActiveProfileID(ctx, &first.ID))
		require.NoError(t, pgSQL.SetActiveProfileID(ctx, nil))

		active, err := pgSQL.ActiveProfileID(ctx)
		require.NoError(t, err)
		require.Nil(t, active)
	})
}
