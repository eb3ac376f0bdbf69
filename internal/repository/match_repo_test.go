package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/repository"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func TestLike_NormalizedSingleRow(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewMatchRepository(database)

	created, err := repo.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created, "reciprocal like hits the existing pair")

	created, err = repo.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, created)

	var rows []db.Match
	require.NoError(t, database.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(1), rows[0].UserID1)
	assert.Equal(t, uint64(2), rows[0].UserID2)
	assert.Equal(t, db.MatchStatusLiked, rows[0].Status)
}

func TestLike_KeepsExistingStatus(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewMatchRepository(database)

	_, err := repo.Like(ctx, 1, 2)
	require.NoError(t, err)
	rows, err := repo.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, rows[0].ID, db.MatchStatusBlocked))

	_, err = repo.Like(ctx, 2, 1)
	require.NoError(t, err)

	m, err := repo.GetByID(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, db.MatchStatusBlocked, m.Status)
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewMatchRepository(database)

	for _, pair := range [][2]uint64{{1, 2}, {3, 1}, {2, 3}} {
		_, err := repo.Like(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	got, err := repo.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.True(t, m.HasUser(1))
	}

	none, err := repo.ListForUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)

	missing, err := repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
