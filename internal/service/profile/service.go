package profile

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

// Service implements the profile.* procedures.
type Service struct {
	appCtx      *app.AppContext
	profileRepo *repository.ProfileRepository

	pb.UnimplementedProfileServiceServer
}

// NewProfileService creates a new Profile service with dependencies from AppContext.
func NewProfileService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		profileRepo: repository.NewProfileRepository(appCtx.DB),
	}
}

// Get returns the caller's profile, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, _ *emptypb.Empty) (*pb.ProfileResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("GetProfile called", "user_id", user.ID)

	p, err := s.profileRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		s.appCtx.Logger.Error("GetOrCreate profile failed", "user_id", user.ID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.ProfileResponse{Profile: pb.ProfileFromModel(p)}, nil
}

// Update applies the supplied fields to the caller's profile.
//
// Behavior:
//   - gender must be male|female|other, lookingFor male|female|both.
//   - age must not be negative.
//   - interests replaces the whole list; an empty list clears it.
//   - The profile row is created first when missing.
//
// Example:
//
//	svc.Update(ctx, &pb.UpdateProfileRequest{Bio: ptr("hi"), Age: ptr(int32(30))})
func (s *Service) Update(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("UpdateProfile called", "user_id", user.ID)

	if g := req.GetGender(); g != nil && !db.ValidGender(*g) {
		return nil, svcErr.InvalidArgument("gender must be one of male, female, other")
	}
	if l := req.GetLookingFor(); l != nil && !db.ValidLookingFor(*l) {
		return nil, svcErr.InvalidArgument("lookingFor must be one of male, female, both")
	}
	if a := req.GetAge(); a != nil && *a < 0 {
		return nil, svcErr.InvalidArgument("age must not be negative")
	}

	p, err := s.profileRepo.Update(ctx, user.ID, toUpdate(req))
	if err != nil {
		s.appCtx.Logger.Error("Update profile failed", "user_id", user.ID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.ProfileResponse{Profile: pb.ProfileFromModel(p)}, nil
}

func toUpdate(req *pb.UpdateProfileRequest) repository.ProfileUpdate {
	if req == nil {
		return repository.ProfileUpdate{}
	}
	u := repository.ProfileUpdate{
		Bio:        req.Bio,
		Gender:     req.Gender,
		LookingFor: req.LookingFor,
		Location:   req.Location,
		PhotoURL:   req.PhotoUrl,
	}
	if req.Age != nil {
		age := int(*req.Age)
		u.Age = &age
	}
	if req.Interests != nil {
		joined := db.JoinInterests(req.Interests)
		u.Interests = &joined
	}
	return u
}
