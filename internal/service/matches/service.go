package matches

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/repository"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

// Service implements the matches.* procedures.
type Service struct {
	appCtx    *app.AppContext
	matchRepo *repository.MatchRepository

	pb.UnimplementedMatchesServiceServer
}

// NewMatchesService creates a new Matches service with dependencies from AppContext.
func NewMatchesService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

// List returns every match the caller takes part in, whatever its status.
func (s *Service) List(ctx context.Context, _ *emptypb.Empty) (*pb.ListMatchesResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("ListMatches called", "user_id", user.ID)

	rows, err := s.matchRepo.ListForUser(ctx, user.ID)
	if err != nil {
		s.appCtx.Logger.Error("ListForUser failed", "user_id", user.ID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(rows))}
	for i := range rows {
		resp.Matches = append(resp.Matches, pb.MatchFromModel(&rows[i]))
	}
	return resp, nil
}

// UpdateStatus sets a match's status.
//
// Behavior:
//   - status must be liked|matched|blocked.
//   - Unknown match -> NotFound; caller not a participant -> PermissionDenied.
//
// Example:
//
//	svc.UpdateStatus(ctx, &pb.UpdateMatchStatusRequest{MatchId: 3, Status: "blocked"})
func (s *Service) UpdateStatus(ctx context.Context, req *pb.UpdateMatchStatusRequest) (*pb.SuccessResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("UpdateMatchStatus called", "user_id", user.ID, "match_id", req.GetMatchId(), "status", req.GetStatus())

	if req.GetMatchId() == 0 {
		return nil, svcErr.InvalidArgument("matchId is required")
	}
	if !db.ValidMatchStatus(req.GetStatus()) {
		return nil, svcErr.InvalidArgument("status must be one of liked, matched, blocked")
	}

	m, err := s.matchRepo.GetByID(ctx, req.GetMatchId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if m == nil {
		return nil, svcErr.NotFound("match not found")
	}
	if !m.HasUser(user.ID) {
		return nil, svcErr.PermissionDenied("not a participant of this match")
	}

	if err := s.matchRepo.UpdateStatus(ctx, m.ID, req.GetStatus()); err != nil {
		s.appCtx.Logger.Error("UpdateStatus failed", "match_id", m.ID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}
