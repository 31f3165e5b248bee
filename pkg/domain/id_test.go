package domain_test

import (
	"handi/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDs_Text(t *testing.T) {
	raw := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	text, err := domain.ProfileID(raw).MarshalText()
	require.NoError(t, err)
	require.Equal(t, raw.String(), string(text))

	var profileID domain.ProfileID
	require.NoError(t, profileID.UnmarshalText(text))
	require.Equal(t, domain.ProfileID(raw), profileID)

	text, err = domain.TakeID(raw).MarshalText()
	require.NoError(t, err)
	require.Equal(t, raw.String(), string(text))

	var takeID domain.TakeID
	require.NoError(t, takeID.UnmarshalText(text))
	require.Equal(t, domain.TakeID(raw), takeID)

	require.Error(t, takeID.UnmarshalText([]byte("not-a-uuid")))
}
