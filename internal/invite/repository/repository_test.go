package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inviteModel "github.com/festy23/league_admission/internal/invite/model"
	"github.com/festy23/league_admission/internal/testutil"
)

func newInvite(leagueID int64, token string) *inviteModel.Invite {
	return &inviteModel.Invite{LeagueID: leagueID, Token: token, CreatedBy: 1, CreatedAt: testutil.Epoch}
}

func TestRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("first invite is inserted", func(t *testing.T) {
		db := testutil.NewDB(t)
		repo := New(db)

		created, err := repo.CreateIfAbsent(ctx, newInvite(1, "AAAAAAAAAA"))

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("second invite for the same league is absorbed", func(t *testing.T) {
		db := testutil.NewDB(t)
		repo := New(db)
		_, err := repo.CreateIfAbsent(ctx, newInvite(1, "AAAAAAAAAA"))
		require.NoError(t, err)

		created, err := repo.CreateIfAbsent(ctx, newInvite(1, "BBBBBBBBBB"))

		require.NoError(t, err)
		assert.False(t, created)

		stored, err := repo.GetByLeague(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "AAAAAAAAAA", stored.Token)
	})

	t.Run("token used by another league", func(t *testing.T) {
		db := testutil.NewDB(t)
		repo := New(db)
		_, err := repo.CreateIfAbsent(ctx, newInvite(1, "AAAAAAAAAA"))
		require.NoError(t, err)

		created, err := repo.CreateIfAbsent(ctx, newInvite(2, "AAAAAAAAAA"))

		assert.False(t, created)
		assert.ErrorIs(t, err, ErrTokenTaken)
	})
}

func TestRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db)
	_, err := repo.CreateIfAbsent(ctx, newInvite(7, "Xy23456789"))
	require.NoError(t, err)

	inv, err := repo.GetByToken(ctx, "Xy23456789")
	require.NoError(t, err)
	assert.Equal(t, int64(7), inv.LeagueID)

	_, err = repo.GetByToken(ctx, "xy23456789")
	assert.ErrorIs(t, err, inviteModel.ErrInvalidInviteToken, "lookup is case-sensitive")

	_, err = repo.GetByLeague(ctx, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := repo.TokenExists(ctx, "Xy23456789")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.TokenExists(ctx, "Zz23456789")
	require.NoError(t, err)
	assert.False(t, exists)
}
