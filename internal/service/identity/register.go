package identity

import (
	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/app"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

// Registrar ties the auth service into the gRPC server
type Registrar struct {
	service *Service
}

// NewRegistrar creates a new Registrar for the auth service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{service: NewAuthService(appCtx)}
}

// Service exposes the implementation for other transports.
func (r *Registrar) Service() *Service { return r.service }

// Register attaches the auth service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterAuthServiceServer(s, r.service)
}
