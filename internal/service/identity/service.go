package identity

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

// Service implements the auth.* procedures.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedAuthServiceServer
}

// NewAuthService creates the auth service with dependencies from AppContext.
func NewAuthService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// Me returns the current user, or a null user for anonymous callers.
func (s *Service) Me(ctx context.Context, _ *emptypb.Empty) (*pb.MeResponse, error) {
	user := auth.UserFrom(ctx)
	s.appCtx.Logger.Debug("Me called", "authenticated", user != nil)
	return &pb.MeResponse{User: pb.UserFromModel(user)}, nil
}

// Logout ends the current session.
//
// Behavior:
//   - Revokes the session id in Redis until the token would expire.
//   - Always instructs the client to drop the session cookie, even when
//     the caller was anonymous.
//   - Revocation failures are logged, logout still succeeds.
func (s *Service) Logout(ctx context.Context, _ *emptypb.Empty) (*pb.SuccessResponse, error) {
	if sess, ok := auth.SessionFrom(ctx); ok {
		s.appCtx.Logger.Debug("Logout called", "user_id", sess.User.ID)
		if err := s.appCtx.Auth.Revoke(ctx, sess.Claims); err != nil {
			s.appCtx.Logger.Warn("session revoke failed", "user_id", sess.User.ID, "err", err)
		}
	}

	// outside a gRPC call (HTTP gateway) there is no stream; the gateway clears the cookie itself
	_ = grpc.SetHeader(ctx, metadata.Pairs("set-cookie", auth.ExpiredCookie(s.appCtx.Config.Auth.CookieName)))

	return &pb.SuccessResponse{Success: true}, nil
}
