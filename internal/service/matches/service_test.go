package matches_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/repository"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
	"github.com/oggyb/muzz-dating/internal/service/matches"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func setupService(t *testing.T) (*matches.Service, *gorm.DB) {
	t.Helper()
	database, _ := testutil.OpenDB(t)
	return matches.NewMatchesService(testutil.NewAppContext(t, database)), database
}

func like(t *testing.T, database *gorm.DB, actor, target uint64) {
	t.Helper()
	_, err := repository.NewMatchRepository(database).Like(context.Background(), actor, target)
	require.NoError(t, err)
}

func TestList_BothParticipantsSeeThePair(t *testing.T) {
	svc, database := setupService(t)
	a := testutil.CreateUser(t, database, "a", db.GenderMale)
	b := testutil.CreateUser(t, database, "b", db.GenderFemale)
	like(t, database, a.ID, b.ID)

	for _, u := range []db.User{a, b} {
		resp, err := svc.List(testutil.AsUser(u), &emptypb.Empty{})
		require.NoError(t, err)
		require.Len(t, resp.Matches, 1)
		assert.Equal(t, a.ID, resp.Matches[0].UserId1)
		assert.Equal(t, b.ID, resp.Matches[0].UserId2)
		assert.Equal(t, db.MatchStatusLiked, resp.Matches[0].Status)
	}
}

func TestList_Empty(t *testing.T) {
	svc, database := setupService(t)
	resp, err := svc.List(testutil.AsUser(testutil.CreateUser(t, database, "a", "")), &emptypb.Empty{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Matches)
	assert.Empty(t, resp.Matches)
}

func TestUpdateStatus(t *testing.T) {
	svc, database := setupService(t)
	a := testutil.CreateUser(t, database, "a", db.GenderMale)
	b := testutil.CreateUser(t, database, "b", db.GenderFemale)
	outsider := testutil.CreateUser(t, database, "c", db.GenderFemale)
	like(t, database, a.ID, b.ID)

	var m db.Match
	require.NoError(t, database.Take(&m).Error)

	_, err := svc.UpdateStatus(testutil.AsUser(outsider), &pb.UpdateMatchStatusRequest{MatchId: m.ID, Status: db.MatchStatusBlocked})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.UpdateStatus(testutil.AsUser(b), &pb.UpdateMatchStatusRequest{MatchId: m.ID, Status: "friends"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.UpdateStatus(testutil.AsUser(b), &pb.UpdateMatchStatusRequest{MatchId: m.ID + 100, Status: db.MatchStatusMatched})
	assert.Equal(t, codes.NotFound, status.Code(err))

	resp, err := svc.UpdateStatus(testutil.AsUser(b), &pb.UpdateMatchStatusRequest{MatchId: m.ID, Status: db.MatchStatusMatched})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())

	require.NoError(t, database.Take(&m, m.ID).Error)
	assert.Equal(t, db.MatchStatusMatched, m.Status)
}
