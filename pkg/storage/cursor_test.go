package storage_test

import (
	"handi/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor_String(t *testing.T) {
	c := storage.Cursor{
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 123456000, time.FixedZone("CET", 3600)),
		ID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
	}

	s := c.String()
	require.Equal(t, "2026-03-01T11:00:00.123456Z_11111111-2222-3333-4444-555555555555", s)

	parsed, err := storage.ParseCursor(s)
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(parsed.CreatedAt))
	require.Equal(t, c.ID, parsed.ID)
	require.False(t, parsed.IsZero())
	require.True(t, storage.Cursor{}.IsZero())
}

func TestParseCursor_Invalid(t *testing.T) {
	for _, s := range []string{
		"yesterday",
		"2026-03-01T11:00:00Z",
		"2026-03-01T11:00:00Z_not-a-uuid",
		"noon_11111111-2222-3333-4444-555555555555",
	} {
		_, err := storage.ParseCursor(s)
		require.ErrorIs(t, err, storage.ErrInvalidCursor, s)
	}
}
