package discover

import (
	"context"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/repository"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

const (
	DefaultBrowseLimit = 20
	MaxBrowseLimit     = 100
)

// Service implements the discover.* procedures.
type Service struct {
	appCtx      *app.AppContext
	profileRepo *repository.ProfileRepository
	matchRepo   *repository.MatchRepository

	pb.UnimplementedDiscoverServiceServer
}

// NewDiscoverService creates a new Discover service with dependencies from AppContext.
func NewDiscoverService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		profileRepo: repository.NewProfileRepository(appCtx.DB),
		matchRepo:   repository.NewMatchRepository(appCtx.DB),
	}
}

// Browse returns candidate profiles for the caller.
//
// Behavior:
//   - lookingFor is required: male|female|both.
//   - limit defaults to 20 and is capped at 100; negative is rejected.
//   - Empty when the caller has no profile yet.
//
// Example:
//
//	svc.Browse(ctx, &pb.BrowseRequest{LookingFor: "female", Limit: 10})
func (s *Service) Browse(ctx context.Context, req *pb.BrowseRequest) (*pb.BrowseResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Browse called", "user_id", user.ID, "looking_for", req.GetLookingFor(), "limit", req.GetLimit())

	if !db.ValidLookingFor(req.GetLookingFor()) {
		return nil, svcErr.InvalidArgument("lookingFor must be one of male, female, both")
	}
	limit := int(req.GetLimit())
	switch {
	case limit < 0:
		return nil, svcErr.InvalidArgument("limit must not be negative")
	case limit == 0:
		limit = DefaultBrowseLimit
	case limit > MaxBrowseLimit:
		limit = MaxBrowseLimit
	}

	profiles, err := s.profileRepo.Browse(ctx, user.ID, req.GetLookingFor(), limit)
	if err != nil {
		s.appCtx.Logger.Error("Browse failed", "user_id", user.ID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.BrowseResponse{Profiles: make([]*pb.Profile, 0, len(profiles))}
	for i := range profiles {
		resp.Profiles = append(resp.Profiles, pb.ProfileFromModel(&profiles[i]))
	}

	s.appCtx.Logger.Debug("Browse result", "user_id", user.ID, "count", len(resp.Profiles))
	return resp, nil
}

// Like records that the caller likes the target user.
//
// Behavior:
//   - Liking yourself is rejected.
//   - Idempotent: repeated or reciprocal likes keep the single pair row
//     with its current status. There is no automatic promotion to matched.
func (s *Service) Like(ctx context.Context, req *pb.LikeRequest) (*pb.SuccessResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Like called", "actor", user.ID, "target", req.GetTargetUserId())

	target := req.GetTargetUserId()
	if target == 0 {
		return nil, svcErr.InvalidArgument("targetUserId is required")
	}
	if target == user.ID {
		return nil, svcErr.InvalidArgument("cannot like yourself")
	}

	created, err := s.matchRepo.Like(ctx, user.ID, target)
	if err != nil {
		s.appCtx.Logger.Error("Like failed", "actor", user.ID, "target", target, "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Debug("Like stored", "actor", user.ID, "target", target, "new_pair", created)
	return &pb.SuccessResponse{Success: true}, nil
}
