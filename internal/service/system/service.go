package system

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	DependencyUp       = "up"
	DependencyDown     = "down"
	DependencyDisabled = "disabled"
)

const probeTimeout = 2 * time.Second

// Service implements system.health.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedSystemServiceServer
}

func NewSystemService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// Health reports store and cache availability. A missing or unreachable
// dependency degrades the status, it never fails the call.
func (s *Service) Health(ctx context.Context, _ *emptypb.Empty) (*pb.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp := &pb.HealthResponse{
		Status:   StatusOK,
		Database: s.database(ctx),
		Cache:    s.cache(ctx),
	}
	if resp.Database != DependencyUp || resp.Cache == DependencyDown {
		resp.Status = StatusDegraded
	}
	return resp, nil
}

func (s *Service) database(ctx context.Context) string {
	if s.appCtx.DB == nil {
		return DependencyDisabled
	}
	sqlDB, err := s.appCtx.DB.DB()
	if err != nil {
		return DependencyDown
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		s.appCtx.Logger.Warn("[Database] health probe failed", "err", err)
		return DependencyDown
	}
	return DependencyUp
}

func (s *Service) cache(ctx context.Context) string {
	if !s.appCtx.RedisCache.Enabled() {
		return DependencyDisabled
	}
	if err := s.appCtx.RedisCache.Ping(ctx); err != nil {
		s.appCtx.Logger.Warn("[Cache] health probe failed", "err", err)
		return DependencyDown
	}
	return DependencyUp
}
