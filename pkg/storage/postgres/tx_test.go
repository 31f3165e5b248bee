package postgres_test

import (
	"context"
	"errors"
	"testing"

	"handi/pkg/domain"
	"handi/pkg/storage"
	"handi/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_NestedTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.(*postgres.PgSQL).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Tx_Visibility(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commit persists", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)

		stored, err := tx.StoreProfile(ctx, domain.Profile{Name: "committed"})
		require.NoError(t, err)

		// invisible outside the tx until commit
		got, err := pg.ProfileByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		require.NoError(t, tx.Commit())

		got, err = pg.ProfileByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("rollback discards", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)

		stored, err := tx.StoreProfile(ctx, domain.Profile{Name: "rolled back"})
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		got, err := pg.ProfileByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreProfile(ctx, domain.Profile{Name: "ok"})

		return e
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreProfile(ctx, domain.Profile{Name: "failed"})
		require.NoError(t, e)

		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := pg.ProfileByName(ctx, "ok")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = pg.ProfileByName(ctx, "failed")
	require.NoError(t, err)
	require.Nil(t, got)
}
