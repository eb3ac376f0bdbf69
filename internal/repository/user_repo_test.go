package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/repository"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestUpsert_RepeatedKeepsIdentityAndAdvancesSignIn(t *testing.T) {
	ctx := context.Background()
	database, clock := testutil.OpenDB(t)
	repo := repository.NewUserRepository(database, "")

	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "open-1"}))
	first, err := repo.GetByOpenID(ctx, "open-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	clock.Advance(time.Minute)
	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "open-1"}))
	second, err := repo.GetByOpenID(ctx, "open-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OpenID, second.OpenID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt), "creation time unchanged")
	assert.True(t, second.LastSignedIn.After(first.LastSignedIn), "last sign-in advanced")

	var count int64
	database.Model(&db.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsert_RefreshesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewUserRepository(database, "")

	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{
		OpenID: "open-1", Name: strPtr("Alice"), Email: strPtr("a@example.com"),
	}))
	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "open-1", Name: strPtr("Alicia")}))

	u, err := repo.GetByOpenID(ctx, "open-1")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", *u.Name)
	assert.Equal(t, "a@example.com", *u.Email, "email untouched when not supplied")
	assert.Equal(t, db.RoleUser, u.Role)
}

func TestUpsert_OwnerPolicy(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewUserRepository(database, "owner")

	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "owner"}))
	owner, err := repo.GetByOpenID(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, db.RoleAdmin, owner.Role)

	// an explicit role wins over the owner policy
	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "owner", Role: strPtr(db.RoleUser)}))
	owner, err = repo.GetByOpenID(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, db.RoleUser, owner.Role)

	require.NoError(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "someone"}))
	other, err := repo.GetByOpenID(ctx, "someone")
	require.NoError(t, err)
	assert.Equal(t, db.RoleUser, other.Role)
}

func TestUpsert_Validation(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.OpenDB(t)
	repo := repository.NewUserRepository(database, "")

	assert.ErrorIs(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: ""}), svcErr.ErrValidation)
	assert.ErrorIs(t, repo.Upsert(ctx, repository.UpsertUserInput{OpenID: "x", Role: strPtr("root")}), svcErr.ErrValidation)

	// validation runs even without a store
	nilRepo := repository.NewUserRepository(nil, "")
	assert.ErrorIs(t, nilRepo.Upsert(ctx, repository.UpsertUserInput{}), svcErr.ErrValidation)
}

func TestNoStore_Degrades(t *testing.T) {
	ctx := context.Background()

	users := repository.NewUserRepository(nil, "")
	assert.NoError(t, users.Upsert(ctx, repository.UpsertUserInput{OpenID: "x"}))
	u, err := users.GetByOpenID(ctx, "x")
	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.False(t, users.Available())

	profiles := repository.NewProfileRepository(nil)
	p, err := profiles.GetOrCreate(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, p)
	list, err := profiles.Browse(ctx, 1, db.LookingForBoth, 10)
	assert.NoError(t, err)
	assert.Empty(t, list)

	matches := repository.NewMatchRepository(nil)
	created, err := matches.Like(ctx, 1, 2)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, matches.UpdateStatus(ctx, 1, db.MatchStatusBlocked))

	msgs := repository.NewMessageRepository(nil)
	m, err := msgs.Send(ctx, 1, 1, 2, "hi")
	assert.NoError(t, err)
	assert.Nil(t, m)
	conv, err := msgs.GetConversation(ctx, 1, 2, 10)
	assert.NoError(t, err)
	assert.Empty(t, conv)
}
