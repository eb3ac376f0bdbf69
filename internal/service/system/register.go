package system

import (
	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/app"
	pb "github.com/oggyb/muzz-dating/internal/rpc"
)

// Registrar ties the System service into the gRPC server
type Registrar struct {
	service *Service
}

// NewRegistrar creates a new Registrar for the System service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{service: NewSystemService(appCtx)}
}

// Service exposes the implementation for other transports.
func (r *Registrar) Service() *Service { return r.service }

// Register attaches the System service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterSystemServiceServer(s, r.service)
}
