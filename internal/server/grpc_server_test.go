package server_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
	"github.com/oggyb/muzz-dating/internal/server"
	"github.com/oggyb/muzz-dating/internal/service"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

// startServer runs the full gRPC stack on an in-memory listener.
func startServer(t *testing.T) (*grpc.ClientConn, *app.AppContext) {
	t.Helper()
	database, _ := testutil.OpenDB(t)
	appCtx := testutil.NewAppContext(t, database)

	srv := server.NewGRPCServer(appCtx, service.New(appCtx).Registrars()...)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, appCtx
}

func login(t *testing.T, appCtx *app.AppContext, openID string) context.Context {
	t.Helper()
	token, err := appCtx.Auth.Establish(context.Background(), auth.Identity{OpenID: openID})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestGRPC_AnonymousAndProtected(t *testing.T) {
	conn, _ := startServer(t)
	ctx := context.Background()

	me, err := pb.NewAuthServiceClient(conn).Me(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Nil(t, me.GetUser())

	_, err = pb.NewProfileServiceClient(conn).Get(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	health, err := pb.NewSystemServiceClient(conn).Health(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestGRPC_LikeAndMessageFlow(t *testing.T) {
	conn, appCtx := startServer(t)
	aCtx := login(t, appCtx, "a")
	bCtx := login(t, appCtx, "b")

	authClient := pb.NewAuthServiceClient(conn)
	a, err := authClient.Me(aCtx, &emptypb.Empty{})
	require.NoError(t, err)
	require.NotNil(t, a.GetUser())
	b, err := authClient.Me(bCtx, &emptypb.Empty{})
	require.NoError(t, err)
	require.NotNil(t, b.GetUser())

	liked, err := pb.NewDiscoverServiceClient(conn).Like(bCtx, &pb.LikeRequest{TargetUserId: a.GetUser().Id})
	require.NoError(t, err)
	assert.True(t, liked.GetSuccess())

	list, err := pb.NewMatchesServiceClient(conn).List(aCtx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Matches, 1)
	match := list.Matches[0]
	assert.Equal(t, a.GetUser().Id, match.UserId1)
	assert.Equal(t, "liked", match.Status)

	msgClient := pb.NewMessagesServiceClient(conn)
	_, err = msgClient.Send(aCtx, &pb.SendMessageRequest{MatchId: match.Id, ReceiverId: b.GetUser().Id, Content: "hey"})
	require.NoError(t, err)

	unread, err := msgClient.UnreadCount(bCtx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), unread.Count)

	conv, err := msgClient.GetConversation(bCtx, &pb.GetConversationRequest{MatchId: match.Id})
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "hey", conv.Messages[0].Content)
	assert.Equal(t, int32(1), conv.Messages[0].Read)
}

func TestGRPC_LogoutClearsCookie(t *testing.T) {
	conn, appCtx := startServer(t)
	ctx := login(t, appCtx, "a")
	client := pb.NewAuthServiceClient(conn)

	var header metadata.MD
	resp, err := client.Logout(ctx, &emptypb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	require.NotEmpty(t, header.Get("set-cookie"))
	assert.Contains(t, header.Get("set-cookie")[0], "Max-Age=0")

	me, err := client.Me(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Nil(t, me.GetUser(), "revoked token resolves to anonymous")
}
