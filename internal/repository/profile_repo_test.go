package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/repository"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func TestGetOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewProfileRepository(database)
	user := testutil.CreateUser(t, database, "u1", "")

	first, err := repo.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	second, err := repo.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 0, first.Verified)
	assert.Nil(t, first.Bio)
}

func TestUpdate_AutoCreatesRow(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewProfileRepository(database)

	bio, age := "hi", 30
	p, err := repo.Update(ctx, 5, repository.ProfileUpdate{Bio: &bio, Age: &age})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, uint64(5), p.UserID)
	assert.Equal(t, "hi", *p.Bio)
	assert.Equal(t, 30, *p.Age)
}

func TestUpdate_EmptyPatchReturnsProfile(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewProfileRepository(database)

	p, err := repo.Update(ctx, 7, repository.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), p.UserID)
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewProfileRepository(database)

	caller := testutil.CreateUser(t, database, "caller", db.GenderMale)
	for i := 0; i < 30; i++ {
		gender := db.GenderFemale
		if i%3 == 0 {
			gender = db.GenderMale
		}
		testutil.CreateUser(t, database, fmt.Sprintf("u-%d", i), gender)
	}

	got, err := repo.Browse(ctx, caller.ID, db.LookingForFemale, 20)
	require.NoError(t, err)
	assert.Len(t, got, 20)
	for _, p := range got {
		assert.NotEqual(t, caller.ID, p.UserID)
		assert.Equal(t, db.GenderFemale, *p.Gender)
	}

	other := testutil.CreateUser(t, database, "other", db.GenderOther)
	unset := testutil.CreateUser(t, database, "unset", "")
	require.NoError(t, database.Create(&db.Profile{UserID: unset.ID}).Error)

	both, err := repo.Browse(ctx, caller.ID, db.LookingForBoth, 100)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, other.ID, both[0].UserID)

	males, err := repo.Browse(ctx, caller.ID, db.LookingForMale, 100)
	require.NoError(t, err)
	assert.Len(t, males, 11) // 10 male candidates plus "other"
	for _, p := range males {
		require.NotNil(t, p.Gender)
		assert.NotEqual(t, unset.ID, p.UserID)
	}
}
